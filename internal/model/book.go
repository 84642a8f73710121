package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultCategory is the bucket for books added without a category.
	DefaultCategory = "other"

	// DefaultTotalPages is assumed when a book is added without a page count.
	DefaultTotalPages = 300
)

// Book is one catalog entry. The JSON field names are the wire shape clients
// persist and exchange, so they stay camelCase.
type Book struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	CoverURL    string        `json:"coverUrl"`
	Status      ReadingStatus `json:"status"`
	Category    string        `json:"category"`
	Rating      int           `json:"rating"`
	Summary     string        `json:"summary,omitempty"`
	StartDate   *Date         `json:"startDate,omitempty"`
	EndDate     *Date         `json:"endDate,omitempty"`
	CurrentPage int           `json:"currentPage"`
	TotalPage   int           `json:"totalPage"`
	Notes       []BookNote    `json:"notes"`
}

// BookNote is a reading note attached to a book. Notes have no existence
// outside their owning book; Date is set at creation and never changes.
type BookNote struct {
	ID      uuid.UUID `json:"id"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
	Page    *int      `json:"page,omitempty"`
}

// NewID returns a time-ordered unique id for books and notes.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.New()
	}
	return id
}

// PlaceholderCoverURL derives a stable cover image for books added without one.
func PlaceholderCoverURL(seed uuid.UUID) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/600", seed)
}

// Progress reports the reading fraction in [0,1]. A book with no page count
// has zero progress.
func (b Book) Progress() float64 {
	if b.TotalPage <= 0 {
		return 0
	}
	return float64(b.CurrentPage) / float64(b.TotalPage)
}

// FindNote returns the index of the note with the given id, or -1.
func (b Book) FindNote(id uuid.UUID) int {
	for i, n := range b.Notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy, so the store can hand out books without
// aliasing its note slices.
func (b Book) Clone() Book {
	out := b
	if b.StartDate != nil {
		d := *b.StartDate
		out.StartDate = &d
	}
	if b.EndDate != nil {
		d := *b.EndDate
		out.EndDate = &d
	}
	out.Notes = make([]BookNote, len(b.Notes))
	for i, n := range b.Notes {
		out.Notes[i] = n
		if n.Page != nil {
			p := *n.Page
			out.Notes[i].Page = &p
		}
	}
	return out
}
