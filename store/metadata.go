package store

import (
	"time"

	"github.com/pkg/errors"
)

const lastSyncKeyPrefix = "last_sync_"

func (s *Store) SetLastSync(kind string, at time.Time) error {
	row := SyncMetadata{
		Key:       lastSyncKeyPrefix + kind,
		Value:     at.UTC().Format(time.RFC3339),
		UpdatedAt: s.Clock.Now(),
	}

	existing := SyncMetadata{}
	query := s.Db.Where("key = ?", row.Key).First(&existing)
	if query.RecordNotFound() {
		return errors.Wrap(s.Db.Create(&row).Error, "failed to record last sync")
	}
	if err := query.Error; err != nil {
		return errors.Wrap(err, "failed to record last sync")
	}
	return errors.Wrap(s.Db.Save(&row).Error, "failed to record last sync")
}

func (s *Store) LastSync(kind string) (time.Time, bool, error) {
	row := SyncMetadata{}
	query := s.Db.Where("key = ?", lastSyncKeyPrefix+kind).First(&row)
	if query.RecordNotFound() {
		return time.Time{}, false, nil
	}
	if err := query.Error; err != nil {
		return time.Time{}, false, errors.Wrap(err, "failed to read last sync")
	}

	at, err := time.Parse(time.RFC3339, row.Value)
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "corrupt last sync value")
	}
	return at, true, nil
}
