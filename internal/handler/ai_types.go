package handler

import (
	"github.com/readingnest/server/internal/ai"
)

type LookupRequest struct {
	Title string `json:"title" binding:"required"`
}

type LookupResponse struct {
	Data ai.BookInfo `json:"data"`
}

type RecommendationsResponse struct {
	Data []ai.Recommendation `json:"data"`
}

type ReflectRequest struct {
	Content   string `json:"content" binding:"required"`
	BookTitle string `json:"bookTitle"`
}

type Reflection struct {
	Reflection string `json:"reflection"`
}

type ReflectResponse struct {
	Data Reflection `json:"data"`
}
