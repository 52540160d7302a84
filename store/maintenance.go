package store

import (
	"github.com/pkg/errors"
)

// ClearOldCache prunes attendance and activity rows whose cached_at fell out
// of the retention window. Singleton collections are wholesale-replaced on
// every sync, so only the accumulating tables need pruning.
func (s *Store) ClearOldCache(retentionDays int) error {
	cutoff := s.Clock.Now().AddDate(0, 0, -retentionDays)

	if err := s.Db.Where("cached_at < ?", cutoff).Delete(&Attendance{}).Error; err != nil {
		return errors.Wrap(err, "failed to prune cached attendance")
	}
	if err := s.Db.Where("cached_at < ?", cutoff).Delete(&Activity{}).Error; err != nil {
		return errors.Wrap(err, "failed to prune cached activities")
	}
	return nil
}

// ClearAllCache wipes every table; invoked on logout.
func (s *Store) ClearAllCache() error {
	tx := s.Tx()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to clear cache")
	}

	for _, model := range []interface{}{
		&Child{},
		&Attendance{},
		&Activity{},
		&Announcement{},
		&Event{},
		&PendingAction{},
		&SyncMetadata{},
	} {
		if err := tx.Delete(model).Error; err != nil {
			tx.Rollback()
			return errors.Wrap(err, "failed to clear cache")
		}
	}

	return errors.Wrap(tx.Commit().Error, "failed to clear cache")
}
