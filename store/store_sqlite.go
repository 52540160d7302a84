package store

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/pkg/errors"
)

// Open creates or opens the cache database and applies the idempotent schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open cache database")
	}

	if err := db.AutoMigrate(
		&Child{},
		&Attendance{},
		&Activity{},
		&Announcement{},
		&Event{},
		&PendingAction{},
		&SyncMetadata{},
	).Error; err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to migrate cache schema")
	}

	return db, nil
}
