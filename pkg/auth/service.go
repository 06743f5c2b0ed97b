package auth

import (
	"context"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/panelpress/panelpress/pkg/errcodes"
	"github.com/panelpress/panelpress/pkg/models"
	"github.com/panelpress/panelpress/pkg/storage"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing.
	BcryptCost = 12
	// TokenExpiry is how long JWT tokens are valid.
	TokenExpiry = 7 * 24 * time.Hour // 7 days
)

// JWTClaims represents the claims in a JWT token.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service handles the mocked identity flow. There is one signed-in user per
// device: the user record lives under its own storage key, written on
// login/signup and removed on logout. Credentials are only checked when a
// signup previously stored one for the email; any other login is accepted
// with a minted demo identity, standing in for a real provider.
type Service struct {
	storage   storage.Storage
	jwtSecret []byte
}

// NewService creates a new auth service.
func NewService(st storage.Storage, jwtSecret string) *Service {
	return &Service{
		storage:   st,
		jwtSecret: []byte(jwtSecret),
	}
}

// credentialSet maps email to bcrypt hash for accounts created via signup.
type credentialSet map[string]string

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name)
}

// Signup creates the device's user record and stores a credential for the
// email.
func (s *Service) Signup(ctx context.Context, email, password, name string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	credentials := credentialSet{}
	if _, err := s.storage.Load(ctx, storage.KeyCredentials, &credentials); err != nil {
		return nil, errors.WithStack(err)
	}
	credentials[email] = string(hash)
	if err := s.storage.Save(ctx, storage.KeyCredentials, credentials); err != nil {
		return nil, errors.WithStack(err)
	}

	photo := avatarURL(name)
	user := &models.User{
		ID:       models.NewID(),
		Email:    email,
		Name:     &name,
		PhotoURL: &photo,
	}
	if err := s.storage.Save(ctx, storage.KeyUser, user); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Login signs the user in. When a signup previously stored a credential for
// the email the password must match it; otherwise any credentials are
// accepted and a demo identity is minted.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	credentials := credentialSet{}
	if _, err := s.storage.Load(ctx, storage.KeyCredentials, &credentials); err != nil {
		return nil, errors.WithStack(err)
	}

	if hash, ok := credentials[email]; ok {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			return nil, errcodes.Unauthorized("Invalid email or password")
		}
	}

	// Reuse the stored record when the same account signs back in, so the
	// user keeps their id (and with it their comics).
	stored := &models.User{}
	found, err := s.storage.Load(ctx, storage.KeyUser, stored)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if found && stored.Email == email {
		return stored, nil
	}

	name := "Demo User"
	photo := avatarURL(name)
	user := &models.User{
		ID:       models.NewID(),
		Email:    email,
		Name:     &name,
		PhotoURL: &photo,
	}
	if err := s.storage.Save(ctx, storage.KeyUser, user); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Logout removes the stored user record.
func (s *Service) Logout(ctx context.Context) error {
	return errors.WithStack(s.storage.Delete(ctx, storage.KeyUser))
}

// GetUserByID retrieves the signed-in user if the id matches.
func (s *Service) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	found, err := s.storage.Load(ctx, storage.KeyUser, user)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !found || user.ID != id {
		return nil, errcodes.Unauthorized("User not found")
	}
	return user, nil
}

// GenerateToken creates a new JWT token for the user.
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signedToken, nil
}

// ValidateToken validates a JWT token and returns the claims.
func (s *Service) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
