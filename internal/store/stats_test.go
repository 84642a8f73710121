package store

import (
	"context"
	"testing"
	"time"

	"github.com/readingnest/server/internal/model"
)

func TestStats(t *testing.T) {
	lib, _ := newTestLibrary(t)

	seed := []model.Book{
		{Title: "Dune", Author: "A", Category: "sci-fi", Status: model.StatusCompleted, TotalPage: 412,
			EndDate: &model.Date{Time: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)}},
		{Title: "Hyperion", Author: "B", Category: "sci-fi", Status: model.StatusReading, CurrentPage: 150, TotalPage: 480},
		{Title: "Emma", Author: "C", Category: "classics", Status: model.StatusWantToRead},
		{Title: "Ficciones", Author: "D", Category: "classics", Status: model.StatusOnHold, CurrentPage: 30, TotalPage: 200},
		{Title: "Solaris", Author: "E", Category: "sci-fi", Status: model.StatusCompleted, TotalPage: 210,
			EndDate: &model.Date{Time: time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC)}},
	}
	for _, b := range seed {
		if _, err := lib.Add(context.Background(), b); err != nil {
			t.Fatalf("failed to seed %q: %v", b.Title, err)
		}
	}

	s := lib.Stats()

	if s.TotalBooks != 5 {
		t.Errorf("expected 5 books, got %d", s.TotalBooks)
	}
	if s.Completed != 2 || s.Reading != 1 || s.WantToRead != 1 || s.OnHold != 1 {
		t.Errorf("unexpected status counts: %+v", s)
	}

	wantPages := 412 + 150 + 30 + 210
	if s.PagesRead != wantPages {
		t.Errorf("expected %d pages read, got %d", wantPages, s.PagesRead)
	}

	if len(s.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(s.Categories))
	}
	if s.Categories[0].Name != "sci-fi" || s.Categories[0].Count != 3 {
		t.Errorf("expected sci-fi first with 3, got %+v", s.Categories[0])
	}
	if s.Categories[1].Name != "classics" || s.Categories[1].Count != 2 {
		t.Errorf("expected classics with 2, got %+v", s.Categories[1])
	}

	if len(s.CompletedByMonth) != 1 {
		t.Fatalf("expected 1 completion month, got %d", len(s.CompletedByMonth))
	}
	if s.CompletedByMonth[0].Month != "2026-03" || s.CompletedByMonth[0].Count != 2 {
		t.Errorf("expected 2026-03 with 2 completions, got %+v", s.CompletedByMonth[0])
	}
}

func TestStats_EmptyLibrary(t *testing.T) {
	lib, _ := newTestLibrary(t)

	s := lib.Stats()
	if s.TotalBooks != 0 || s.PagesRead != 0 {
		t.Errorf("expected zeroed stats, got %+v", s)
	}
	if len(s.Categories) != 0 {
		t.Errorf("expected no categories, got %v", s.Categories)
	}
}
