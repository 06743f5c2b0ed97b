package comics

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"

	"github.com/panelpress/panelpress/pkg/errcodes"
	"github.com/panelpress/panelpress/pkg/models"
)

// warningHeader is set when an edit succeeded in memory but the snapshot
// write failed. The edit survives for the session; a reload may lose it.
const warningHeader = "X-Panelpress-Warning"

type handler struct {
	store *Store
}

// reportPersistError logs a failed snapshot write and flags the response.
// The in-memory state is authoritative for the session, so the edit itself
// still succeeds.
func reportPersistError(c echo.Context, err error) {
	if err == nil {
		return
	}
	logger.FromEchoContext(c).Err(err).Warn("comic snapshot write failed")
	c.Response().Header().Set(warningHeader, "changes were not persisted")
}

// owned resolves the comic and enforces that the caller owns it.
func (h *handler) owned(c echo.Context, comicID string) (*models.Comic, error) {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return nil, errcodes.Unauthorized("Authentication required")
	}

	comic, ok := h.store.Comic(comicID)
	if !ok || comic.UserID != user.ID {
		return nil, errcodes.NotFound("Comic")
	}
	return comic, nil
}

func findPanel(comic *models.Comic, panelID string) (*models.ComicPanel, error) {
	for _, p := range comic.Panels {
		if p.ID == panelID {
			return p, nil
		}
	}
	return nil, errcodes.NotFound("Panel")
}

func (h *handler) list(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return errcodes.Unauthorized("Authentication required")
	}

	owned := []*models.Comic{}
	for _, comic := range h.store.Comics() {
		if comic.UserID == user.ID {
			owned = append(owned, comic)
		}
	}

	return errors.WithStack(c.JSON(http.StatusOK, echo.Map{
		"comics": owned,
		"total":  len(owned),
	}))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateComicPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, ok := c.Get("user").(*models.User)
	if !ok {
		return errcodes.Unauthorized("Authentication required")
	}

	comic, err := h.store.CreateComic(ctx, params.Title, user.ID)
	reportPersistError(c, err)

	return errors.WithStack(c.JSON(http.StatusCreated, comic))
}

func (h *handler) retrieve(c echo.Context) error {
	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}
	return errors.WithStack(c.JSON(http.StatusOK, comic))
}

func (h *handler) current(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return errcodes.Unauthorized("Authentication required")
	}

	comic, ok := h.store.CurrentComic()
	if !ok || comic.UserID != user.ID {
		return errcodes.NotFound("Current comic")
	}
	return errors.WithStack(c.JSON(http.StatusOK, comic))
}

func (h *handler) setCurrent(c echo.Context) error {
	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}

	h.store.SetCurrentComic(comic.ID)
	return errors.WithStack(c.JSON(http.StatusOK, comic))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	params := UpdateComicPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}

	comic.Title = params.Title
	reportPersistError(c, h.store.UpdateComic(ctx, comic))

	comic, _ = h.store.Comic(comic.ID)
	return errors.WithStack(c.JSON(http.StatusOK, comic))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}

	reportPersistError(c, h.store.DeleteComic(ctx, comic.ID))
	return c.NoContent(http.StatusNoContent)
}

func (h *handler) publish(c echo.Context) error {
	ctx := c.Request().Context()

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}

	reportPersistError(c, h.store.PublishComic(ctx, comic.ID))

	comic, _ = h.store.Comic(comic.ID)
	return errors.WithStack(c.JSON(http.StatusOK, comic))
}

// Panel handlers

func (h *handler) addPanel(c echo.Context) error {
	ctx := c.Request().Context()

	params := AddPanelPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}

	panel, err := h.store.AddPanel(ctx, comic.ID, params.ImageURL, params.GenerationPrompt)
	reportPersistError(c, err)

	return errors.WithStack(c.JSON(http.StatusCreated, panel))
}

func (h *handler) updatePanel(c echo.Context) error {
	ctx := c.Request().Context()

	params := UpdatePanelPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}
	panel, err := findPanel(comic, c.Param("panelId"))
	if err != nil {
		return err
	}

	panel.ImageURL = params.ImageURL
	panel.GenerationPrompt = params.GenerationPrompt
	reportPersistError(c, h.store.UpdatePanel(ctx, comic.ID, panel))

	return errors.WithStack(c.JSON(http.StatusOK, panel))
}

func (h *handler) removePanel(c echo.Context) error {
	ctx := c.Request().Context()

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}
	if _, err := findPanel(comic, c.Param("panelId")); err != nil {
		return err
	}

	reportPersistError(c, h.store.RemovePanel(ctx, comic.ID, c.Param("panelId")))
	return c.NoContent(http.StatusNoContent)
}

// Text bubble handlers

func (h *handler) addTextBubble(c echo.Context) error {
	ctx := c.Request().Context()

	params := AddTextBubblePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}
	if _, err := findPanel(comic, c.Param("panelId")); err != nil {
		return err
	}

	bubble, err := h.store.AddTextBubble(ctx, comic.ID, c.Param("panelId"), params.Text, params.Style)
	reportPersistError(c, err)

	return errors.WithStack(c.JSON(http.StatusCreated, bubble))
}

func (h *handler) updateTextBubble(c echo.Context) error {
	ctx := c.Request().Context()

	params := UpdateTextBubblePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}
	panel, err := findPanel(comic, c.Param("panelId"))
	if err != nil {
		return err
	}

	var bubble *models.TextBubble
	for _, b := range panel.TextBubbles {
		if b.ID == c.Param("bubbleId") {
			bubble = b
			break
		}
	}
	if bubble == nil {
		return errcodes.NotFound("Text bubble")
	}

	bubble.Text = params.Text
	bubble.Position = params.Position
	reportPersistError(c, h.store.UpdateTextBubble(ctx, comic.ID, panel.ID, bubble))

	return errors.WithStack(c.JSON(http.StatusOK, bubble))
}

func (h *handler) removeTextBubble(c echo.Context) error {
	ctx := c.Request().Context()

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}
	panel, err := findPanel(comic, c.Param("panelId"))
	if err != nil {
		return err
	}

	found := false
	for _, b := range panel.TextBubbles {
		if b.ID == c.Param("bubbleId") {
			found = true
			break
		}
	}
	if !found {
		return errcodes.NotFound("Text bubble")
	}

	reportPersistError(c, h.store.RemoveTextBubble(ctx, comic.ID, panel.ID, c.Param("bubbleId")))
	return c.NoContent(http.StatusNoContent)
}

// Caption handlers

func (h *handler) addCaption(c echo.Context) error {
	ctx := c.Request().Context()

	params := AddCaptionPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}
	if _, err := findPanel(comic, c.Param("panelId")); err != nil {
		return err
	}

	caption, err := h.store.AddCaption(ctx, comic.ID, c.Param("panelId"), params.Text, params.Position)
	reportPersistError(c, err)

	return errors.WithStack(c.JSON(http.StatusCreated, caption))
}

func (h *handler) updateCaption(c echo.Context) error {
	ctx := c.Request().Context()

	params := UpdateCaptionPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}
	panel, err := findPanel(comic, c.Param("panelId"))
	if err != nil {
		return err
	}

	var caption *models.Caption
	for _, cap := range panel.Captions {
		if cap.ID == c.Param("captionId") {
			caption = cap
			break
		}
	}
	if caption == nil {
		return errcodes.NotFound("Caption")
	}

	caption.Text = params.Text
	reportPersistError(c, h.store.UpdateCaption(ctx, comic.ID, panel.ID, caption))

	return errors.WithStack(c.JSON(http.StatusOK, caption))
}

func (h *handler) removeCaption(c echo.Context) error {
	ctx := c.Request().Context()

	comic, err := h.owned(c, c.Param("id"))
	if err != nil {
		return err
	}
	panel, err := findPanel(comic, c.Param("panelId"))
	if err != nil {
		return err
	}

	found := false
	for _, cap := range panel.Captions {
		if cap.ID == c.Param("captionId") {
			found = true
			break
		}
	}
	if !found {
		return errcodes.NotFound("Caption")
	}

	reportPersistError(c, h.store.RemoveCaption(ctx, comic.ID, panel.ID, c.Param("captionId")))
	return c.NoContent(http.StatusNoContent)
}
