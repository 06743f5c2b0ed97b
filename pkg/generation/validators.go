package generation

type GeneratePayload struct {
	Prompt    string `json:"prompt" validate:"required,max=2000"`
	NumImages int    `json:"numImages" default:"1" validate:"min=1,max=8"`
}
