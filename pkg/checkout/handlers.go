package checkout

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/panelpress/panelpress/pkg/errcodes"
	"github.com/panelpress/panelpress/pkg/models"
)

type handler struct {
	svc *Service
}

func (h *handler) createSession(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateSessionPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, ok := c.Get("user").(*models.User)
	if !ok {
		return errcodes.Unauthorized("Authentication required")
	}

	sess, err := h.svc.CreateSession(ctx, CreateSessionOptions{
		ComicID:  params.ComicID,
		UserID:   user.ID,
		Amount:   params.Amount,
		Shipping: params.ShippingDetails,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, sess))
}

func (h *handler) orderStatus(c echo.Context) error {
	order, ok := h.svc.Order(c.Param("sessionId"))
	if !ok {
		return errcodes.NotFound("Order")
	}
	return errors.WithStack(c.JSON(http.StatusOK, order))
}
