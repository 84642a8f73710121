package handler

import (
	"github.com/readingnest/server/internal/model"
)

type CreateBookRequest struct {
	Title       string              `json:"title" binding:"required"`
	Author      string              `json:"author" binding:"required"`
	CoverURL    string              `json:"coverUrl"`
	Status      model.ReadingStatus `json:"status" binding:"omitempty,oneof=WANT_TO_READ READING COMPLETED ON_HOLD"`
	Category    string              `json:"category"`
	Rating      int                 `json:"rating" binding:"omitempty,min=0,max=5"`
	Summary     string              `json:"summary"`
	CurrentPage int                 `json:"currentPage" binding:"omitempty,min=0"`
	TotalPage   int                 `json:"totalPage" binding:"omitempty,min=0"`
	StartDate   *model.Date         `json:"startDate" swaggertype:"string" example:"2025-11-24"`
	EndDate     *model.Date         `json:"endDate" swaggertype:"string" example:"2025-11-24"`
}

type UpdateBookRequest struct {
	Title       *string              `json:"title" binding:"omitempty,min=1"`
	Author      *string              `json:"author" binding:"omitempty,min=1"`
	CoverURL    *string              `json:"coverUrl"`
	Status      *model.ReadingStatus `json:"status" binding:"omitempty,oneof=WANT_TO_READ READING COMPLETED ON_HOLD"`
	Category    *string              `json:"category" binding:"omitempty,min=1"`
	Rating      *int                 `json:"rating" binding:"omitempty,min=0,max=5"`
	Summary     *string              `json:"summary"`
	CurrentPage *int                 `json:"currentPage" binding:"omitempty,min=0"`
	TotalPage   *int                 `json:"totalPage" binding:"omitempty,min=0"`
	StartDate   *model.Date          `json:"startDate" swaggertype:"string" example:"2025-11-24"`
	EndDate     *model.Date          `json:"endDate" swaggertype:"string" example:"2025-11-24"`
}

type BookResponse struct {
	Data model.Book `json:"data"`
}

type ListBooksResponse struct {
	Data  []model.Book `json:"data"`
	Total int          `json:"total"`
}

type CreateNoteRequest struct {
	Content string `json:"content"`
	Page    *int   `json:"page" binding:"omitempty,min=0"`
}

type UpdateNoteRequest struct {
	Content *string `json:"content"`
	Page    *int    `json:"page" binding:"omitempty,min=0"`
}

type NoteResponse struct {
	Data model.BookNote `json:"data"`
}
