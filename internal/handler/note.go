package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readingnest/server/internal/store"
	"github.com/readingnest/server/internal/validation"
)

// CreateNote godoc
// @Summary      Add a reading note
// @Description  Notes start blank and are edited in place; content is optional
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id       path      string             true   "Book ID"
// @Param        payload  body      CreateNoteRequest  false  "Note content"
// @Success      201      {object}  NoteResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Router       /books/{id}/notes [post]
func (h *BookHandler) CreateNote(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "INVALID_BOOK_ID")
	if !ok {
		return
	}

	var req CreateNoteRequest
	if c.Request.ContentLength > 0 {
		if !validation.BindAndValidateJSON(c, &req) {
			return
		}
	}

	_, note, err := h.lib.AddNote(c.Request.Context(), id, req.Content, req.Page)
	if err != nil {
		writeError(c, http.StatusNotFound,
			"BOOK_NOT_FOUND",
			"book not found",
		)
		return
	}

	c.JSON(http.StatusCreated, NoteResponse{Data: note})
}

// UpdateNote godoc
// @Summary      Edit a reading note
// @Description  Replaces the note's content and page reference; id and date are immutable
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Book ID"
// @Param        noteId   path      string             true  "Note ID"
// @Param        payload  body      UpdateNoteRequest  true  "Fields to change"
// @Success      200      {object}  NoteResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Book or note not found"
// @Router       /books/{id}/notes/{noteId} [patch]
func (h *BookHandler) UpdateNote(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id", "INVALID_BOOK_ID")
	if !ok {
		return
	}
	noteID, ok := parseIDParam(c, "noteId", "INVALID_NOTE_ID")
	if !ok {
		return
	}

	book, err := h.lib.Get(bookID)
	if err != nil {
		writeError(c, http.StatusNotFound,
			"BOOK_NOT_FOUND",
			"book not found",
		)
		return
	}

	i := book.FindNote(noteID)
	if i < 0 {
		writeError(c, http.StatusNotFound,
			"NOTE_NOT_FOUND",
			"note not found",
		)
		return
	}

	var req UpdateNoteRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	content := book.Notes[i].Content
	if req.Content != nil {
		content = *req.Content
	}
	page := book.Notes[i].Page
	if req.Page != nil {
		page = req.Page
	}

	updated, err := h.lib.UpdateNote(c.Request.Context(), bookID, noteID, content, page)
	if err != nil {
		writeError(c, http.StatusNotFound,
			"NOTE_NOT_FOUND",
			"note not found",
		)
		return
	}

	c.JSON(http.StatusOK, NoteResponse{Data: updated.Notes[updated.FindNote(noteID)]})
}

// DeleteNote godoc
// @Summary      Delete a reading note
// @Tags         notes
// @Produce      json
// @Param        id      path      string  true  "Book ID"
// @Param        noteId  path      string  true  "Note ID"
// @Success      204     {string}  string  "No content"
// @Failure      400     {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404     {object}  validation.ErrorResponse  "Book or note not found"
// @Router       /books/{id}/notes/{noteId} [delete]
func (h *BookHandler) DeleteNote(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id", "INVALID_BOOK_ID")
	if !ok {
		return
	}
	noteID, ok := parseIDParam(c, "noteId", "INVALID_NOTE_ID")
	if !ok {
		return
	}

	if _, err := h.lib.RemoveNote(c.Request.Context(), bookID, noteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"NOTE_NOT_FOUND",
				"book or note not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"NOTE_DELETE_FAILED",
			"failed to delete note",
		)
		return
	}

	c.Status(http.StatusNoContent)
}
