package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readingnest/server/internal/model"
	"github.com/readingnest/server/internal/store"
	"github.com/readingnest/server/internal/validation"
)

type BookHandler struct {
	lib *store.Library
}

func NewBookHandler(lib *store.Library) *BookHandler {
	return &BookHandler{lib: lib}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)
		books.GET("/:id", h.GetBookByID)
		books.PATCH("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)

		books.POST("/:id/notes", h.CreateNote)
		books.PATCH("/:id/notes/:noteId", h.UpdateNote)
		books.DELETE("/:id/notes/:noteId", h.DeleteNote)
	}
}

// CreateBook godoc
// @Summary      Add a book to the library
// @Description  Add a book with title and author; missing fields get defaults
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to add"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	draft := model.Book{
		Title:       req.Title,
		Author:      req.Author,
		CoverURL:    req.CoverURL,
		Status:      req.Status,
		Category:    req.Category,
		Rating:      req.Rating,
		Summary:     req.Summary,
		CurrentPage: req.CurrentPage,
		TotalPage:   req.TotalPage,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	book, err := h.lib.Add(c.Request.Context(), draft)
	if err != nil {
		if errors.Is(err, store.ErrInvalidDraft) {
			writeError(c, http.StatusBadRequest,
				"BOOK_INVALID",
				"title and author are required",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_CREATE_FAILED",
			"failed to add book",
		)
		return
	}

	c.JSON(http.StatusCreated, BookResponse{Data: book})
}

// ListBooks godoc
// @Summary      List books
// @Description  Books in insertion order, optionally filtered
// @Tags         books
// @Produce      json
// @Param        q       query     string  false  "Title/author substring filter"
// @Param        status  query     string  false  "Reading status filter" Enums(WANT_TO_READ,READING,COMPLETED,ON_HOLD)
// @Success      200  {object}  ListBooksResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid status"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	status := model.ReadingStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		writeError(c, http.StatusBadRequest,
			"INVALID_STATUS",
			"status must be one of WANT_TO_READ, READING, COMPLETED, ON_HOLD",
		)
		return
	}

	books := h.lib.List(c.Query("q"), status)

	c.JSON(http.StatusOK, ListBooksResponse{Data: books, Total: len(books)})
}

// GetBookByID godoc
// @Summary      Get a book
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "INVALID_BOOK_ID")
	if !ok {
		return
	}

	book, err := h.lib.Get(id)
	if err != nil {
		writeError(c, http.StatusNotFound,
			"BOOK_NOT_FOUND",
			"book not found",
		)
		return
	}

	c.JSON(http.StatusOK, BookResponse{Data: book})
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Builds the complete updated record and replaces the stored one
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Book ID"
// @Param        payload  body      UpdateBookRequest  true  "Fields to change"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Router       /books/{id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "INVALID_BOOK_ID")
	if !ok {
		return
	}

	book, err := h.lib.Get(id)
	if err != nil {
		writeError(c, http.StatusNotFound,
			"BOOK_NOT_FOUND",
			"book not found",
		)
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.CoverURL != nil {
		book.CoverURL = *req.CoverURL
	}
	if req.Status != nil {
		book.Status = *req.Status
	}
	if req.Category != nil {
		book.Category = *req.Category
	}
	if req.Rating != nil {
		book.Rating = *req.Rating
	}
	if req.Summary != nil {
		book.Summary = *req.Summary
	}
	if req.CurrentPage != nil {
		book.CurrentPage = *req.CurrentPage
	}
	if req.TotalPage != nil {
		book.TotalPage = *req.TotalPage
	}
	if req.StartDate != nil {
		if req.StartDate.IsZero() {
			book.StartDate = nil
		} else {
			book.StartDate = req.StartDate
		}
	}
	if req.EndDate != nil {
		if req.EndDate.IsZero() {
			book.EndDate = nil
		} else {
			book.EndDate = req.EndDate
		}
	}

	updated, err := h.lib.Update(c.Request.Context(), book)
	if err != nil {
		writeError(c, http.StatusNotFound,
			"BOOK_NOT_FOUND",
			"book not found",
		)
		return
	}

	c.JSON(http.StatusOK, BookResponse{Data: updated})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "INVALID_BOOK_ID")
	if !ok {
		return
	}

	if err := h.lib.Remove(c.Request.Context(), id); err != nil {
		writeError(c, http.StatusNotFound,
			"BOOK_NOT_FOUND",
			"book not found",
		)
		return
	}

	c.Status(http.StatusNoContent)
}
