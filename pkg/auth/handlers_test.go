package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelpress/panelpress/pkg/binder"
	"github.com/panelpress/panelpress/pkg/errcodes"
	"github.com/panelpress/panelpress/pkg/models"
)

func newTestContext(t *testing.T, payload, method, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == CookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestHandler_Signup(t *testing.T) {
	svc := newTestService()
	h := &handler{authService: svc}

	payload := `{"email":"ada@example.com","password":"password123","name":"Ada"}`
	c, rr := newTestContext(t, payload, http.MethodPost, "/auth/signup")

	require.NoError(t, h.signup(c))
	assert.Equal(t, http.StatusCreated, rr.Code)

	user := models.User{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "ada@example.com", user.Email)

	cookie := sessionCookie(t, rr)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	claims, err := svc.ValidateToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestHandler_Signup_RejectsShortPasswords(t *testing.T) {
	svc := newTestService()
	h := &handler{authService: svc}

	payload := `{"email":"ada@example.com","password":"short","name":"Ada"}`
	c, _ := newTestContext(t, payload, http.MethodPost, "/auth/signup")

	err := h.signup(c)
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, errResp.HTTPCode)
}

func TestHandler_Login(t *testing.T) {
	svc := newTestService()
	h := &handler{authService: svc}

	payload := `{"email":"demo@example.com","password":"anything"}`
	c, rr := newTestContext(t, payload, http.MethodPost, "/auth/login")

	require.NoError(t, h.login(c))
	assert.Equal(t, http.StatusOK, rr.Code)
	sessionCookie(t, rr)
}

func TestHandler_Me(t *testing.T) {
	svc := newTestService()
	h := &handler{authService: svc}

	// Sign in first to get a cookie.
	c, rr := newTestContext(t, `{"email":"demo@example.com","password":"anything"}`, http.MethodPost, "/auth/login")
	require.NoError(t, h.login(c))
	cookie := sessionCookie(t, rr)

	c, rr = newTestContext(t, "", http.MethodGet, "/auth/me")
	c.Request().AddCookie(cookie)

	require.NoError(t, h.me(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	user := models.User{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "demo@example.com", user.Email)
}

func TestHandler_Me_WithoutSession(t *testing.T) {
	svc := newTestService()
	h := &handler{authService: svc}

	c, rr := newTestContext(t, "", http.MethodGet, "/auth/me")

	require.NoError(t, h.me(c))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandler_Logout(t *testing.T) {
	svc := newTestService()
	h := &handler{authService: svc}

	c, rr := newTestContext(t, `{"email":"demo@example.com","password":"anything"}`, http.MethodPost, "/auth/login")
	require.NoError(t, h.login(c))
	cookie := sessionCookie(t, rr)

	c, rr = newTestContext(t, "", http.MethodPost, "/auth/logout")
	require.NoError(t, h.logout(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	// The cookie is cleared and the token no longer resolves a user.
	cleared := sessionCookie(t, rr)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	c, rr = newTestContext(t, "", http.MethodGet, "/auth/me")
	c.Request().AddCookie(cookie)
	require.NoError(t, h.me(c))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
