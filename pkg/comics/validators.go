package comics

import "github.com/panelpress/panelpress/pkg/models"

// Payloads for comic endpoints. JSON names follow the entity layout
// (camelCase) so request and response shapes line up.

type CreateComicPayload struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

type UpdateComicPayload struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

type AddPanelPayload struct {
	ImageURL         string  `json:"imageUrl" validate:"required,imageurl"`
	GenerationPrompt *string `json:"generationPrompt,omitempty" validate:"omitempty,max=2000"`
}

// UpdatePanelPayload replaces the panel's image. An absent generationPrompt
// clears the stored prompt: a regenerated image no longer matches it.
type UpdatePanelPayload struct {
	ImageURL         string  `json:"imageUrl" validate:"required,imageurl"`
	GenerationPrompt *string `json:"generationPrompt,omitempty" validate:"omitempty,max=2000"`
}

type AddTextBubblePayload struct {
	Text  string `json:"text" validate:"required,max=500"`
	Style string `json:"style" validate:"required,oneof=speech thought"`
}

// UpdateTextBubblePayload carries text and position only; a bubble's style
// is fixed at creation. Position values are accepted as-is, including
// coordinates outside [0,100] from a drag that left the panel.
type UpdateTextBubblePayload struct {
	Text     string          `json:"text" validate:"required,max=500"`
	Position models.Position `json:"position"`
}

type AddCaptionPayload struct {
	Text     string `json:"text" validate:"required,max=500"`
	Position string `json:"position" validate:"required,oneof=top bottom"`
}

// UpdateCaptionPayload carries text only; a caption's anchor is fixed at
// creation.
type UpdateCaptionPayload struct {
	Text string `json:"text" validate:"required,max=500"`
}
