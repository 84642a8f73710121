package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/readingnest/server/internal/model"
	"github.com/readingnest/server/internal/validation"
)

func TestCreateBook_Success(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	body := CreateBookRequest{
		Title:  "Dune",
		Author: "Frank Herbert",
	}

	w := doJSON(t, router, http.MethodPost, "/books", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp BookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Data.ID == uuid.Nil {
		t.Errorf("expected non-empty ID")
	}
	if resp.Data.Title != "Dune" {
		t.Errorf("expected title %q, got %q", "Dune", resp.Data.Title)
	}
	if resp.Data.Status != model.StatusWantToRead {
		t.Errorf("expected default status, got %q", resp.Data.Status)
	}
	if resp.Data.TotalPage != model.DefaultTotalPages {
		t.Errorf("expected default totalPage, got %d", resp.Data.TotalPage)
	}

	if _, err := lib.Get(resp.Data.ID); err != nil {
		t.Errorf("expected book in library, got %v", err)
	}
}

func TestCreateBook_MissingFields(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"no title", map[string]any{"author": "Frank Herbert"}},
		{"no author", map[string]any{"title": "Dune"}},
		{"empty body", map[string]any{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/books", tc.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
			}
			if lib.Len() != 0 {
				t.Errorf("expected collection unchanged, got %d books", lib.Len())
			}
		})
	}
}

func TestCreateBook_RatingOutOfRange(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	w := doJSON(t, router, http.MethodPost, "/books", map[string]any{
		"title":  "Dune",
		"author": "Frank Herbert",
		"rating": 9,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v", err)
	}
	if len(resp.Errors) == 0 || resp.Errors[0].Field != "rating" {
		t.Errorf("expected a rating field error, got %+v", resp.Errors)
	}
}

func TestListBooks(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	seedBook(t, lib, "Dune", "Frank Herbert")
	seedBook(t, lib, "Emma", "Jane Austen")

	w := doJSON(t, router, http.MethodGet, "/books", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp ListBooksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Fatalf("expected 2 books, got total=%d len=%d", resp.Total, len(resp.Data))
	}
	// Insertion order.
	if resp.Data[0].Title != "Dune" || resp.Data[1].Title != "Emma" {
		t.Errorf("expected insertion order, got %q then %q", resp.Data[0].Title, resp.Data[1].Title)
	}
}

func TestListBooks_QueryFilter(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	seedBook(t, lib, "Dune", "Frank Herbert")
	seedBook(t, lib, "Emma", "Jane Austen")

	w := doJSON(t, router, http.MethodGet, "/books?q=austen", nil)

	var resp ListBooksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Total != 1 || resp.Data[0].Title != "Emma" {
		t.Errorf("expected only Emma, got %+v", resp.Data)
	}
}

func TestListBooks_InvalidStatus(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	w := doJSON(t, router, http.MethodGet, "/books?status=PAUSED", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetBookByID(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	book := seedBook(t, lib, "Dune", "Frank Herbert")

	w := doJSON(t, router, http.MethodGet, "/books/"+book.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp BookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.ID != book.ID {
		t.Errorf("expected id %s, got %s", book.ID, resp.Data.ID)
	}
}

func TestGetBookByID_NotFound(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	w := doJSON(t, router, http.MethodGet, "/books/"+uuid.NewString(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestGetBookByID_InvalidID(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	w := doJSON(t, router, http.MethodGet, "/books/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestUpdateBook_Progress(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	book := seedBook(t, lib, "Dune", "Frank Herbert")

	w := doJSON(t, router, http.MethodPatch, "/books/"+book.ID.String(), map[string]any{
		"status":      "READING",
		"currentPage": 150,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp BookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Status != model.StatusReading {
		t.Errorf("expected status READING, got %q", resp.Data.Status)
	}
	if resp.Data.CurrentPage != 150 {
		t.Errorf("expected currentPage 150, got %d", resp.Data.CurrentPage)
	}
	// Untouched fields survive the replace.
	if resp.Data.Title != "Dune" {
		t.Errorf("expected title unchanged, got %q", resp.Data.Title)
	}
	if got := resp.Data.Progress(); got != 0.5 {
		t.Errorf("expected progress 0.5, got %v", got)
	}
}

func TestUpdateBook_Dates(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	book := seedBook(t, lib, "Dune", "Frank Herbert")

	w := doJSON(t, router, http.MethodPatch, "/books/"+book.ID.String(), map[string]any{
		"status":  "COMPLETED",
		"endDate": "2026-08-30",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp BookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.EndDate == nil {
		t.Fatalf("expected endDate to be set")
	}
	if got := resp.Data.EndDate.Format("2006-01-02"); got != "2026-08-30" {
		t.Errorf("expected endDate 2026-08-30, got %s", got)
	}
}

func TestUpdateBook_NotFound(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	w := doJSON(t, router, http.MethodPatch, "/books/"+uuid.NewString(), map[string]any{
		"rating": 3,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteBook(t *testing.T) {
	lib := setupTestLibrary(t)
	router := setupRouter(lib, nil)

	book := seedBook(t, lib, "Dune", "Frank Herbert")

	w := doJSON(t, router, http.MethodDelete, "/books/"+book.ID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
	if lib.Len() != 0 {
		t.Errorf("expected empty library, got %d books", lib.Len())
	}

	w = doJSON(t, router, http.MethodDelete, "/books/"+book.ID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on second delete, got %d", w.Code)
	}
}
