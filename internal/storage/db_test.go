package storage

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newDBSnapshotForTest(t *testing.T) *DBSnapshot {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	snap, err := NewDBSnapshot(db)
	if err != nil {
		t.Fatalf("failed to migrate snapshot table: %v", err)
	}
	return snap
}

func TestDBSnapshot_RoundTrip(t *testing.T) {
	snap := newDBSnapshotForTest(t)
	ctx := context.Background()

	books := sampleBooks()
	if err := snap.Write(ctx, books); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}

	got, err := snap.Read(ctx)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if !reflect.DeepEqual(got, books) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, books)
	}
}

func TestDBSnapshot_EmptyTableReadsEmpty(t *testing.T) {
	snap := newDBSnapshotForTest(t)

	got, err := snap.Read(context.Background())
	if err != nil {
		t.Fatalf("expected soft failure, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil collection, got %v", got)
	}
}

func TestDBSnapshot_MalformedRowReadsEmpty(t *testing.T) {
	snap := newDBSnapshotForTest(t)

	row := snapshotRow{Key: SnapshotKey, Data: []byte("{not json"), UpdatedAt: time.Now()}
	if err := snap.db.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed malformed row: %v", err)
	}

	got, err := snap.Read(context.Background())
	if err != nil {
		t.Fatalf("expected soft failure, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d books", len(got))
	}
}

func TestDBSnapshot_WriteOverwritesSingleRow(t *testing.T) {
	snap := newDBSnapshotForTest(t)
	ctx := context.Background()

	if err := snap.Write(ctx, sampleBooks()); err != nil {
		t.Fatalf("failed to write first snapshot: %v", err)
	}
	if err := snap.Write(ctx, sampleBooks()[:1]); err != nil {
		t.Fatalf("failed to overwrite snapshot: %v", err)
	}

	var count int64
	if err := snap.db.Model(&snapshotRow{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 snapshot row, got %d", count)
	}

	got, _ := snap.Read(ctx)
	if len(got) != 1 {
		t.Errorf("expected 1 book after overwrite, got %d", len(got))
	}
}

func TestDBSnapshot_Ping(t *testing.T) {
	snap := newDBSnapshotForTest(t)
	if err := snap.Ping(context.Background()); err != nil {
		t.Errorf("expected ping to succeed, got %v", err)
	}
}
