package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quicknote/notes-api/internal/core/domain"
	"github.com/quicknote/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. All routes sit
// behind the Auth middleware; the owner identity comes from the context, so
// a caller can only ever address their own notes.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List handles GET /api/notes.
//
// @Summary      List all notes for the authenticated user
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Note
// @Failure      401  {object}  errorResponse
// @Router       /api/notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notes, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

// Create handles POST /api/notes.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string       false  "Idempotency key to make retries safe"
// @Param        body             body      noteRequest  true   "Note title and text"
// @Success      200  {object}  domain.Note
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidNote
	}

	note, err := h.service.Create(c.Request().Context(), ports.CreateNoteInput{
		OwnerID: ownerID,
		Title:   req.Title,
		Text:    req.Text,
		IdemKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// Update handles PUT /api/notes/:id.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Note id"
// @Param        body  body      noteRequest  true  "New title and text"
// @Success      200  {object}  domain.Note
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidNote
	}

	note, err := h.service.Update(c.Request().Context(), ports.UpdateNoteInput{
		OwnerID: ownerID,
		NoteID:  c.Param("id"),
		Title:   req.Title,
		Text:    req.Text,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// Delete handles DELETE /api/notes/:id.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Note id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ownerID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "note deleted"})
}

// Search handles GET /api/notes/search?title=...
//
// @Summary      Search notes by title
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        title  query     string  true  "Case-insensitive substring to match against titles"
// @Success      200  {array}   domain.Note
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/notes/search [get]
func (h *NoteHandler) Search(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notes, err := h.service.Search(c.Request().Context(), ownerID, c.QueryParam("title"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}
