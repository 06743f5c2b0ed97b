package comics

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/panelpress/panelpress/pkg/models"
	"github.com/panelpress/panelpress/pkg/storage"
)

// Store is the single source of truth for the comic collection in a session.
// All mutation goes through its operations; every mutation stamps the
// affected comic's UpdatedAt and writes the full collection back through the
// storage port. The current comic is tracked by id and resolved on read, so
// there is no second copy to fall out of sync.
//
// Operations given an id that doesn't resolve perform no mutation and signal
// nothing: callers are expected to act on ids from prior reads, and the
// handlers translate absent ids to 404 before reaching a mutation.
//
// There is one logical writer (the active client), but echo serves requests
// concurrently, so a mutex guards the tree.
type Store struct {
	mu      sync.Mutex
	storage storage.Storage

	comics    []*models.Comic
	currentID string
}

// NewStore builds a store rehydrated from the storage port. A missing or
// corrupt snapshot yields an empty collection. On a hard storage read error
// the returned store is still usable (empty) alongside the error, so the
// caller can log and continue.
func NewStore(ctx context.Context, st storage.Storage) (*Store, error) {
	s := &Store{storage: st, comics: []*models.Comic{}}

	_, err := st.Load(ctx, storage.KeyComics, &s.comics)
	if err != nil {
		s.comics = []*models.Comic{}
		return s, errors.WithStack(err)
	}
	if s.comics == nil {
		s.comics = []*models.Comic{}
	}
	return s, nil
}

// persist writes the whole collection back. Called with the lock held.
//
// An emptied collection is deliberately not written: the previous snapshot
// stays in storage, so deleting the last comic never wipes the stored data.
// The flip side is that the emptied state is not visible after a reload.
// Carried over as-is from the legacy client.
func (s *Store) persist(ctx context.Context) error {
	if len(s.comics) == 0 {
		return nil
	}
	return errors.WithStack(s.storage.Save(ctx, storage.KeyComics, s.comics))
}

func (s *Store) find(id string) *models.Comic {
	for _, c := range s.comics {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// mutate applies fn to the comic with the given id, stamps UpdatedAt, and
// persists. If the id doesn't resolve or fn reports no change, nothing
// happens.
func (s *Store) mutate(ctx context.Context, comicID string, fn func(*models.Comic) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(comicID)
	if c == nil {
		return nil
	}
	if !fn(c) {
		return nil
	}
	c.UpdatedAt = time.Now()
	return s.persist(ctx)
}

// mutatePanel is mutate scoped one level down.
func (s *Store) mutatePanel(ctx context.Context, comicID, panelID string, fn func(*models.ComicPanel) bool) error {
	return s.mutate(ctx, comicID, func(c *models.Comic) bool {
		for _, p := range c.Panels {
			if p.ID == panelID {
				return fn(p)
			}
		}
		return false
	})
}

// Comics returns the collection in creation order.
func (s *Store) Comics() []*models.Comic {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Comic, len(s.comics))
	for i, c := range s.comics {
		out[i] = c.Clone()
	}
	return out
}

// Comic returns the comic with the given id.
func (s *Store) Comic(id string) (*models.Comic, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(id)
	if c == nil {
		return nil, false
	}
	return c.Clone(), true
}

// CurrentComic resolves the comic being edited, if any.
func (s *Store) CurrentComic() (*models.Comic, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(s.currentID)
	if c == nil {
		return nil, false
	}
	return c.Clone(), true
}

// SetCurrentComic marks the comic with the given id as the one being edited.
// Reports whether the id resolved.
func (s *Store) SetCurrentComic(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(id) == nil {
		return false
	}
	s.currentID = id
	return true
}

// CreateComic appends a new empty comic, makes it current, and returns it.
func (s *Store) CreateComic(ctx context.Context, title, userID string) (*models.Comic, error) {
	now := time.Now()
	c := &models.Comic{
		ID:          models.NewID(),
		UserID:      userID,
		Title:       title,
		Panels:      []*models.ComicPanel{},
		CreatedAt:   now,
		UpdatedAt:   now,
		IsPublished: false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.comics = append(s.comics, c)
	s.currentID = c.ID
	return c.Clone(), s.persist(ctx)
}

// UpdateComic replaces the comic matching the given value's id wholesale.
func (s *Store) UpdateComic(ctx context.Context, comic *models.Comic) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.comics {
		if c.ID == comic.ID {
			replacement := comic.Clone()
			replacement.UpdatedAt = time.Now()
			s.comics[i] = replacement
			return s.persist(ctx)
		}
	}
	return nil
}

// DeleteComic removes the comic and everything it owns. If it was current,
// there is no current comic afterwards.
func (s *Store) DeleteComic(ctx context.Context, comicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.comics[:0]
	removed := false
	for _, c := range s.comics {
		if c.ID == comicID {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return nil
	}

	s.comics = kept
	if s.currentID == comicID {
		s.currentID = ""
	}
	return s.persist(ctx)
}

// AddPanel appends a panel with the given image to the comic.
func (s *Store) AddPanel(ctx context.Context, comicID, imageURL string, prompt *string) (*models.ComicPanel, error) {
	p := &models.ComicPanel{
		ID:               models.NewID(),
		ImageURL:         imageURL,
		TextBubbles:      []*models.TextBubble{},
		Captions:         []*models.Caption{},
		GenerationPrompt: prompt,
	}

	err := s.mutate(ctx, comicID, func(c *models.Comic) bool {
		c.Panels = append(c.Panels, p)
		return true
	})
	return p.Clone(), err
}

// UpdatePanel replaces the panel matching the given value's id wholesale.
func (s *Store) UpdatePanel(ctx context.Context, comicID string, panel *models.ComicPanel) error {
	return s.mutate(ctx, comicID, func(c *models.Comic) bool {
		for i, p := range c.Panels {
			if p.ID == panel.ID {
				c.Panels[i] = panel.Clone()
				return true
			}
		}
		return false
	})
}

// RemovePanel removes the panel and its annotations.
func (s *Store) RemovePanel(ctx context.Context, comicID, panelID string) error {
	return s.mutate(ctx, comicID, func(c *models.Comic) bool {
		for i, p := range c.Panels {
			if p.ID == panelID {
				c.Panels = append(c.Panels[:i], c.Panels[i+1:]...)
				return true
			}
		}
		return false
	})
}

// AddTextBubble appends a bubble centered in the panel. Bubbles always start
// at (50,50); a drag moves them afterwards via UpdateTextBubble.
func (s *Store) AddTextBubble(ctx context.Context, comicID, panelID, text, style string) (*models.TextBubble, error) {
	b := &models.TextBubble{
		ID:       models.NewID(),
		Text:     text,
		Position: models.Position{X: 50, Y: 50},
		Style:    style,
	}

	err := s.mutatePanel(ctx, comicID, panelID, func(p *models.ComicPanel) bool {
		p.TextBubbles = append(p.TextBubbles, b)
		return true
	})
	bubble := *b
	return &bubble, err
}

// UpdateTextBubble replaces the bubble matching the given value's id. This
// covers both text edits and position moves; positions are stored as given,
// without clamping to the panel's bounds.
func (s *Store) UpdateTextBubble(ctx context.Context, comicID, panelID string, bubble *models.TextBubble) error {
	return s.mutatePanel(ctx, comicID, panelID, func(p *models.ComicPanel) bool {
		for i, b := range p.TextBubbles {
			if b.ID == bubble.ID {
				replacement := *bubble
				p.TextBubbles[i] = &replacement
				return true
			}
		}
		return false
	})
}

// RemoveTextBubble removes the bubble with the given id.
func (s *Store) RemoveTextBubble(ctx context.Context, comicID, panelID, bubbleID string) error {
	return s.mutatePanel(ctx, comicID, panelID, func(p *models.ComicPanel) bool {
		for i, b := range p.TextBubbles {
			if b.ID == bubbleID {
				p.TextBubbles = append(p.TextBubbles[:i], p.TextBubbles[i+1:]...)
				return true
			}
		}
		return false
	})
}

// AddCaption appends a caption anchored at the given position.
func (s *Store) AddCaption(ctx context.Context, comicID, panelID, text, position string) (*models.Caption, error) {
	cap := &models.Caption{
		ID:       models.NewID(),
		Text:     text,
		Position: position,
	}

	err := s.mutatePanel(ctx, comicID, panelID, func(p *models.ComicPanel) bool {
		p.Captions = append(p.Captions, cap)
		return true
	})
	caption := *cap
	return &caption, err
}

// UpdateCaption replaces the caption matching the given value's id.
func (s *Store) UpdateCaption(ctx context.Context, comicID, panelID string, caption *models.Caption) error {
	return s.mutatePanel(ctx, comicID, panelID, func(p *models.ComicPanel) bool {
		for i, cap := range p.Captions {
			if cap.ID == caption.ID {
				replacement := *caption
				p.Captions[i] = &replacement
				return true
			}
		}
		return false
	})
}

// RemoveCaption removes the caption with the given id.
func (s *Store) RemoveCaption(ctx context.Context, comicID, panelID, captionID string) error {
	return s.mutatePanel(ctx, comicID, panelID, func(p *models.ComicPanel) bool {
		for i, cap := range p.Captions {
			if cap.ID == captionID {
				p.Captions = append(p.Captions[:i], p.Captions[i+1:]...)
				return true
			}
		}
		return false
	})
}

// PublishComic marks the comic published. The transition is one-way; calling
// it again on a published comic still stamps UpdatedAt and persists.
func (s *Store) PublishComic(ctx context.Context, comicID string) error {
	return s.mutate(ctx, comicID, func(c *models.Comic) bool {
		c.IsPublished = true
		return true
	})
}
