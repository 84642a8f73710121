// Package ai translates domain intents into calls against a hosted
// generative-language service. All three operations are one-shot
// request/response: no retries, no streaming, no caching.
package ai

import (
	"context"
	"fmt"
)

// BookInfo is the structured result of a metadata lookup, shaped to
// pre-fill the add-book form.
type BookInfo struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Summary   string `json:"summary"`
	TotalPage int    `json:"totalPage"`
}

// Recommendation is one suggested book, in the service's ranking order.
type Recommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Reason string `json:"reason"`
}

// Gateway is the boundary the handlers program against.
type Gateway interface {
	// LookupBookInfo fetches structured metadata for a title.
	LookupBookInfo(ctx context.Context, title string) (*BookInfo, error)

	// Recommend returns three suggestions based on the reader's genres and
	// recently added titles.
	Recommend(ctx context.Context, genres, recentTitles []string) ([]Recommendation, error)

	// Reflect returns a brief free-text reflection on a reading note.
	// Callers must not pass empty note content.
	Reflect(ctx context.Context, noteContent, bookTitle string) (string, error)
}

// LookupError wraps any failure of LookupBookInfo: the caller tells the
// user to fall back to manual entry.
type LookupError struct {
	Err error
}

func (e *LookupError) Error() string { return fmt.Sprintf("book lookup failed: %v", e.Err) }
func (e *LookupError) Unwrap() error { return e.Err }

// RecommendationError wraps any failure of Recommend. Callers log it and
// show nothing; recommendations are best effort.
type RecommendationError struct {
	Err error
}

func (e *RecommendationError) Error() string {
	return fmt.Sprintf("recommendation failed: %v", e.Err)
}
func (e *RecommendationError) Unwrap() error { return e.Err }

// ReflectionError wraps any failure of Reflect.
type ReflectionError struct {
	Err error
}

func (e *ReflectionError) Error() string { return fmt.Sprintf("note reflection failed: %v", e.Err) }
func (e *ReflectionError) Unwrap() error { return e.Err }
