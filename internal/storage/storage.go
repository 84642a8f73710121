// Package storage persists the full book collection as a single snapshot.
//
// The contract is deliberately blunt: Write serializes the whole collection
// under one fixed key, overwriting whatever was there, and Read returns the
// last written collection. Reads fail soft — an absent or unparseable
// snapshot yields an empty collection, never an error. There is no schema
// versioning and no partial write.
package storage

import (
	"context"

	"github.com/readingnest/server/internal/model"
)

// SnapshotKey is the single key every backend stores the collection under.
const SnapshotKey = "readingnest.books"

// Snapshot is the persistence boundary for the library.
type Snapshot interface {
	// Read returns the stored collection. Absent or malformed data yields
	// an empty slice and a nil error.
	Read(ctx context.Context) ([]model.Book, error)

	// Write replaces the stored collection with the given one.
	Write(ctx context.Context, books []model.Book) error

	// Ping reports whether the backing medium is reachable.
	Ping(ctx context.Context) error
}
