package models

import "time"

// Text bubble styles.
const (
	BubbleStyleSpeech  = "speech"
	BubbleStyleThought = "thought"
)

// Caption anchor positions.
const (
	CaptionPositionTop    = "top"
	CaptionPositionBottom = "bottom"
)

// Comic is the top-level user-owned artifact: a titled, ordered sequence of
// panels. JSON field names follow the persisted snapshot layout, so a
// collection serialized by an earlier client rehydrates unchanged.
type Comic struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Title       string        `json:"title"`
	Panels      []*ComicPanel `json:"panels"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	IsPublished bool          `json:"isPublished"`
}

// ComicPanel is one image-backed cell of a comic. A panel always has an
// image URL; the generation prompt is absent for regenerated or placeholder
// images.
type ComicPanel struct {
	ID               string        `json:"id"`
	ImageURL         string        `json:"imageUrl"`
	TextBubbles      []*TextBubble `json:"textBubbles"`
	Captions         []*Caption    `json:"captions"`
	GenerationPrompt *string       `json:"generationPrompt,omitempty"`
}

// Position is a point expressed as percentages of the panel's rendered
// bounding box on both axes. Values are not clamped to [0,100]; a bubble
// dragged outside its panel keeps its out-of-range coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextBubble is a freely positioned text annotation over a panel. Style is
// fixed at creation.
type TextBubble struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Position Position `json:"position"`
	Style    string   `json:"style"`
}

// Caption is a top- or bottom-anchored text annotation over a panel.
// Position is fixed at creation.
type Caption struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Position string `json:"position"`
}

// Clone returns a deep copy of the comic so readers can't mutate store
// state through a returned pointer.
func (c *Comic) Clone() *Comic {
	if c == nil {
		return nil
	}
	out := *c
	out.Panels = make([]*ComicPanel, len(c.Panels))
	for i, p := range c.Panels {
		out.Panels[i] = p.Clone()
	}
	return &out
}

// Clone returns a deep copy of the panel.
func (p *ComicPanel) Clone() *ComicPanel {
	if p == nil {
		return nil
	}
	out := *p
	out.TextBubbles = make([]*TextBubble, len(p.TextBubbles))
	for i, b := range p.TextBubbles {
		bubble := *b
		out.TextBubbles[i] = &bubble
	}
	out.Captions = make([]*Caption, len(p.Captions))
	for i, cap := range p.Captions {
		caption := *cap
		out.Captions[i] = &caption
	}
	if p.GenerationPrompt != nil {
		prompt := *p.GenerationPrompt
		out.GenerationPrompt = &prompt
	}
	return &out
}
