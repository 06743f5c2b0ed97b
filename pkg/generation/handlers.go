package generation

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/panelpress/panelpress/pkg/errcodes"
)

type handler struct {
	svc *Service
}

func (h *handler) generate(c echo.Context) error {
	ctx := c.Request().Context()

	params := GeneratePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	res, err := h.svc.Generate(ctx, GenerateOptions{
		Prompt:    params.Prompt,
		NumImages: params.NumImages,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, res))
}

func (h *handler) status(c echo.Context) error {
	res, ok := h.svc.Status(c.Param("id"))
	if !ok {
		return errcodes.NotFound("Generation")
	}
	return errors.WithStack(c.JSON(http.StatusOK, res))
}

func (h *handler) cancel(c echo.Context) error {
	canceled := h.svc.Cancel(c.Param("id"))
	return errors.WithStack(c.JSON(http.StatusOK, echo.Map{
		"canceled": canceled,
	}))
}
