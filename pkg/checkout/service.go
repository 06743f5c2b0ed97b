package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/panelpress/panelpress/pkg/models"
)

// sessionTTL is how long a checkout session stays available for order
// status lookups.
const sessionTTL = 24 * time.Hour

// Session is what a checkout call produces: an opaque session id, the URL
// the buyer should be redirected to, and the order recorded for it.
type Session struct {
	ID    string        `json:"id"`
	URL   string        `json:"url"`
	Order *models.Order `json:"order"`
}

// CreateSessionOptions are the options for Service.CreateSession. Amount is
// in minor units of the currency.
type CreateSessionOptions struct {
	ComicID  string
	UserID   string
	Amount   int64
	Shipping *models.ShippingDetails
}

// Service is the payment collaborator. It stands in for a hosted checkout
// provider: sessions are minted locally with an artificial delay and held in
// a TTL cache so their orders can be looked up by session id.
type Service struct {
	delay       time.Duration
	frontendURL string
	sessions    *cache.Cache
}

func NewService(delay time.Duration, frontendURL string) *Service {
	return &Service{
		delay:       delay,
		frontendURL: frontendURL,
		sessions:    cache.New(sessionTTL, time.Hour),
	}
}

// CreateSession mints a checkout session for the given comic and records an
// order against it. The returned URL points at the frontend's success page,
// the way the provider's redirect would.
func (s *Service) CreateSession(ctx context.Context, opts CreateSessionOptions) (*Session, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		}
	}

	id := "mock-session-" + uuid.NewString()
	sess := &Session{
		ID:  id,
		URL: fmt.Sprintf("%s/checkout/success?session_id=%s", s.frontendURL, id),
		Order: &models.Order{
			ID:              uuid.NewString(),
			UserID:          opts.UserID,
			ComicID:         opts.ComicID,
			Amount:          opts.Amount,
			Currency:        "usd",
			Status:          models.OrderStatusProcessing,
			ShippingDetails: opts.Shipping,
			CreatedAt:       time.Now().UTC(),
		},
	}
	s.sessions.Set(id, sess, cache.DefaultExpiration)

	return sess, nil
}

// Order returns the order recorded for a session, or false if the session
// id is unknown or has expired.
func (s *Service) Order(sessionID string) (*models.Order, bool) {
	v, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, false
	}
	return v.(*Session).Order, true
}
