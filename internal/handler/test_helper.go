package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/readingnest/server/internal/ai"
	"github.com/readingnest/server/internal/model"
	"github.com/readingnest/server/internal/storage"
	"github.com/readingnest/server/internal/store"
)

type fakeGateway struct {
	LookupFn    func(ctx context.Context, title string) (*ai.BookInfo, error)
	RecommendFn func(ctx context.Context, genres, recent []string) ([]ai.Recommendation, error)
	ReflectFn   func(ctx context.Context, note, title string) (string, error)
}

func (f *fakeGateway) LookupBookInfo(ctx context.Context, title string) (*ai.BookInfo, error) {
	if f.LookupFn != nil {
		return f.LookupFn(ctx, title)
	}
	return &ai.BookInfo{}, nil
}

func (f *fakeGateway) Recommend(ctx context.Context, genres, recent []string) ([]ai.Recommendation, error) {
	if f.RecommendFn != nil {
		return f.RecommendFn(ctx, genres, recent)
	}
	return []ai.Recommendation{}, nil
}

func (f *fakeGateway) Reflect(ctx context.Context, note, title string) (string, error) {
	if f.ReflectFn != nil {
		return f.ReflectFn(ctx, note, title)
	}
	return "", nil
}

func setupTestLibrary(t *testing.T) *store.Library {
	t.Helper()

	snap := storage.NewFileSnapshot(filepath.Join(t.TempDir(), "library.json"))
	lib := store.New(snap)
	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("failed to load library: %v", err)
	}
	return lib
}

func setupRouter(lib *store.Library, gw ai.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	api := r.Group("")

	bh := NewBookHandler(lib)
	bh.RegisterRoutes(api)

	if gw != nil {
		ah := NewAIHandler(gw, lib)
		ah.RegisterRoutes(api)
	}

	sh := NewStatsHandler(lib)
	sh.RegisterRoutes(api)

	return r
}

func seedBook(t *testing.T, lib *store.Library, title, author string) model.Book {
	t.Helper()

	book, err := lib.Add(context.Background(), model.Book{Title: title, Author: author})
	if err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	return book
}

func seedNote(t *testing.T, lib *store.Library, book model.Book, content string) model.BookNote {
	t.Helper()

	_, note, err := lib.AddNote(context.Background(), book.ID, content, nil)
	if err != nil {
		t.Fatalf("failed to seed note on %q: %v", book.Title, err)
	}
	return note
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
