// Package store holds the authoritative in-memory book collection for the
// running session. Every mutation goes through a single update path and
// writes the full collection back to storage; persistence failures are
// logged and never surfaced to the caller.
package store

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/readingnest/server/internal/model"
	"github.com/readingnest/server/internal/storage"
)

var (
	// ErrNotFound is returned when no book (or note) matches the given id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidDraft is returned by Add when title or author is empty.
	ErrInvalidDraft = errors.New("title and author are required")
)

// Library owns the book collection. It is safe for concurrent use by the
// HTTP handlers; storage writes happen inside the mutation's critical
// section so the persisted snapshot always converges with memory.
type Library struct {
	mu    sync.Mutex
	books []model.Book
	snap  storage.Snapshot
}

func New(snap storage.Snapshot) *Library {
	return &Library{snap: snap}
}

// Load populates the collection from storage. An absent or malformed
// snapshot simply means an empty library.
func (l *Library) Load(ctx context.Context) error {
	books, err := l.snap.Read(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.books = books
	return nil
}

// Add validates the draft, fills in defaults and appends the new book.
// Title and author are required; everything else has a sensible default.
func (l *Library) Add(ctx context.Context, draft model.Book) (model.Book, error) {
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Author) == "" {
		return model.Book{}, ErrInvalidDraft
	}

	book := draft.Clone()
	book.ID = model.NewID()
	book.Notes = []model.BookNote{}
	if book.CoverURL == "" {
		book.CoverURL = model.PlaceholderCoverURL(book.ID)
	}
	if !book.Status.Valid() {
		book.Status = model.StatusWantToRead
	}
	if strings.TrimSpace(book.Category) == "" {
		book.Category = model.DefaultCategory
	}
	if book.TotalPage == 0 {
		book.TotalPage = model.DefaultTotalPages
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.books = append(l.books, book)
	l.persist(ctx)
	return book.Clone(), nil
}

// Update replaces the stored book with a matching id wholesale. There is no
// partial-field update: callers construct the complete new value.
func (l *Library) Update(ctx context.Context, book model.Book) (model.Book, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.books {
		if l.books[i].ID == book.ID {
			l.books[i] = book.Clone()
			l.persist(ctx)
			return l.books[i].Clone(), nil
		}
	}
	return model.Book{}, ErrNotFound
}

// Remove deletes the book with the given id.
func (l *Library) Remove(ctx context.Context, id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.books {
		if l.books[i].ID == id {
			l.books = append(l.books[:i], l.books[i+1:]...)
			l.persist(ctx)
			return nil
		}
	}
	return ErrNotFound
}

// Get returns a copy of the book with the given id.
func (l *Library) Get(id uuid.UUID) (model.Book, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.books {
		if l.books[i].ID == id {
			return l.books[i].Clone(), nil
		}
	}
	return model.Book{}, ErrNotFound
}

// List returns the books in insertion order, optionally filtered by a
// case-insensitive title/author substring and a reading status.
func (l *Library) List(query string, status model.ReadingStatus) []model.Book {
	l.mu.Lock()
	defer l.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Book, 0, len(l.books))
	for i := range l.books {
		b := &l.books[i]
		if status != "" && b.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.Author), q) {
			continue
		}
		out = append(out, b.Clone())
	}
	return out
}

// Len reports the collection size.
func (l *Library) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.books)
}

// RecentTitles returns the titles of the most recently added books, newest
// last, up to n. Feeds the recommendation prompt.
func (l *Library) RecentTitles(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := len(l.books) - n
	if start < 0 {
		start = 0
	}
	titles := make([]string, 0, n)
	for _, b := range l.books[start:] {
		titles = append(titles, b.Title)
	}
	return titles
}

// Categories returns the distinct categories in first-seen order. Feeds the
// recommendation prompt as the reader's favorite genres.
func (l *Library) Categories() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]bool, len(l.books))
	out := make([]string, 0, len(l.books))
	for i := range l.books {
		c := l.books[i].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// persist writes the full collection snapshot. Callers hold l.mu. Failures
// are logged only: a lost write never interrupts the user's action.
func (l *Library) persist(ctx context.Context) {
	snapshot := make([]model.Book, len(l.books))
	for i := range l.books {
		snapshot[i] = l.books[i].Clone()
	}
	if err := l.snap.Write(ctx, snapshot); err != nil {
		log.Printf("store: snapshot write failed: %v", err)
	}
}
