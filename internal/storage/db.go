package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/readingnest/server/internal/model"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

// snapshotRow is the single-row table a DBSnapshot writes the serialized
// collection into. Key is always SnapshotKey.
type snapshotRow struct {
	Key       string `gorm:"primaryKey;column:key"`
	Data      []byte `gorm:"column:data"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "library_snapshots" }

// DBSnapshot keeps the snapshot in a relational database. The table still
// behaves as a key-value slot: one row, whole collection, overwrite on write.
type DBSnapshot struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) a sqlite-backed snapshot at path.
func OpenSQLite(path string) (*DBSnapshot, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewDBSnapshot(db)
}

// OpenPostgres connects to postgres with retries, matching how the service
// is started next to a database container that may not be up yet.
func OpenPostgres(dsn string) (*DBSnapshot, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					return NewDBSnapshot(db)
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Printf("db not ready (attempt %d/%d): %v", attempt, defaultMaxAttempts, err)
		time.Sleep(defaultDelayBetweenTry)
	}

	return nil, err
}

// NewDBSnapshot wraps an already-open gorm connection, migrating the
// snapshot table if needed.
func NewDBSnapshot(db *gorm.DB) (*DBSnapshot, error) {
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, err
	}
	return &DBSnapshot{db: db}, nil
}

func (s *DBSnapshot) Read(ctx context.Context) ([]model.Book, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", SnapshotKey).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("storage: snapshot read failed, starting empty: %v", err)
		}
		return []model.Book{}, nil
	}

	var books []model.Book
	if err := json.Unmarshal(row.Data, &books); err != nil {
		log.Printf("storage: malformed snapshot discarded: %v", err)
		return []model.Book{}, nil
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (s *DBSnapshot) Write(ctx context.Context, books []model.Book) error {
	if books == nil {
		books = []model.Book{}
	}

	data, err := json.Marshal(books)
	if err != nil {
		return err
	}

	row := snapshotRow{Key: SnapshotKey, Data: data, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

func (s *DBSnapshot) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
