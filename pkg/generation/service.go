package generation

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// resultTTL is how long a finished generation stays available for status
// lookups.
const resultTTL = 30 * time.Minute

// placeholderImages is the pool the mock generator draws from. A real
// generation backend would replace this with provider responses.
var placeholderImages = []string{
	"https://images.unsplash.com/photo-1581092795360-fd1ca04f0952",
	"https://images.unsplash.com/photo-1581091226825-a6a2a5aee158",
	"https://images.unsplash.com/photo-1582562124811-c09040d0a901",
	"https://images.unsplash.com/photo-1618160702438-9b02ab6515c9",
}

// Result is what a generation call produces: an ordered list of image URLs
// and an opaque id that can be used to look the result up again.
type Result struct {
	Images []string `json:"images"`
	ID     string   `json:"id"`
}

// GenerateOptions are the options for Service.Generate.
type GenerateOptions struct {
	Prompt    string
	NumImages int
}

// Service is the image generation collaborator. It stands in for a hosted
// model API: requests are rate limited and artificially delayed, and results
// are held in a TTL cache so they can be polled by id.
type Service struct {
	delay   time.Duration
	limiter *rate.Limiter
	results *cache.Cache
}

func NewService(delay time.Duration, ratePerSecond float64) *Service {
	return &Service{
		delay:   delay,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), 2),
		results: cache.New(resultTTL, time.Hour),
	}
}

// Generate produces NumImages image URLs for the given prompt. Counts
// outside 1..len(pool) are clamped. Each image is produced on its own
// goroutine behind the shared rate limiter, the way a real per-image
// provider call would be fanned out.
func (s *Service) Generate(ctx context.Context, opts GenerateOptions) (*Result, error) {
	n := opts.NumImages
	if n < 1 {
		n = 1
	}
	if n > len(placeholderImages) {
		n = len(placeholderImages)
	}

	pool := make([]string, len(placeholderImages))
	copy(pool, placeholderImages)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	images := make([]string, n)
	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := s.limiter.Wait(egCtx); err != nil {
				return errors.WithStack(err)
			}
			if s.delay > 0 {
				select {
				case <-time.After(s.delay):
				case <-egCtx.Done():
					return errors.WithStack(egCtx.Err())
				}
			}
			images[i] = pool[i]
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Images: images,
		ID:     "mock-generation-" + uuid.NewString(),
	}
	s.results.Set(res.ID, res, cache.DefaultExpiration)

	return res, nil
}

// Status returns the result of a previous generation, or false if the id is
// unknown or the result has expired.
func (s *Service) Status(id string) (*Result, bool) {
	v, ok := s.results.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Result), true
}

// Cancel discards a generation result. It reports true even for unknown
// ids, matching the tolerant contract of the upstream it mocks.
func (s *Service) Cancel(id string) bool {
	s.results.Delete(id)
	return true
}
