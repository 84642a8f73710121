package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/readingnest/server/internal/model"
)

// Note mutations rebuild the owning book and route it through Update, so a
// note change is persisted exactly like any other book change.

// AddNote appends a note to the book. Content may be empty; notes start
// blank and are filled in as the reader writes.
func (l *Library) AddNote(ctx context.Context, bookID uuid.UUID, content string, page *int) (model.Book, model.BookNote, error) {
	book, err := l.Get(bookID)
	if err != nil {
		return model.Book{}, model.BookNote{}, err
	}

	note := model.BookNote{
		ID:      model.NewID(),
		Date:    time.Now().UTC(),
		Content: content,
		Page:    page,
	}
	book.Notes = append(book.Notes, note)

	updated, err := l.Update(ctx, book)
	if err != nil {
		return model.Book{}, model.BookNote{}, err
	}
	return updated, note, nil
}

// UpdateNote replaces a note's content and page reference. The note's id
// and creation date never change.
func (l *Library) UpdateNote(ctx context.Context, bookID, noteID uuid.UUID, content string, page *int) (model.Book, error) {
	book, err := l.Get(bookID)
	if err != nil {
		return model.Book{}, err
	}

	i := book.FindNote(noteID)
	if i < 0 {
		return model.Book{}, ErrNotFound
	}
	book.Notes[i].Content = content
	book.Notes[i].Page = page

	return l.Update(ctx, book)
}

// RemoveNote deletes a note from the book. The surviving notes keep their
// ids, contents and relative order.
func (l *Library) RemoveNote(ctx context.Context, bookID, noteID uuid.UUID) (model.Book, error) {
	book, err := l.Get(bookID)
	if err != nil {
		return model.Book{}, err
	}

	i := book.FindNote(noteID)
	if i < 0 {
		return model.Book{}, ErrNotFound
	}
	book.Notes = append(book.Notes[:i], book.Notes[i+1:]...)

	return l.Update(ctx, book)
}
