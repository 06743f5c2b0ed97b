package checkout

import "github.com/panelpress/panelpress/pkg/models"

type CreateSessionPayload struct {
	ComicID         string                  `json:"comicId" validate:"required"`
	Amount          int64                   `json:"amount" validate:"required,min=1"`
	ShippingDetails *models.ShippingDetails `json:"shippingDetails,omitempty"`
}
