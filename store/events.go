package store

import (
	"github.com/Sproutly/SPROUT-MOBILE/api"

	"github.com/pkg/errors"
)

func (s *Store) CacheEvents(events []api.EventTransport) error {
	tx := s.Tx()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to cache events")
	}

	if err := tx.Delete(Event{}).Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "failed to clear cached events")
	}

	now := s.Clock.Now()
	for _, event := range events {
		row := Event{
			EventId:     event.Id,
			Title:       event.Title,
			Description: event.Description,
			EventDate:   event.EventDate,
			EventTime:   event.EventTime,
			EventType:   event.EventType,
			CachedAt:    now,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return errors.Wrap(err, "failed to cache event")
		}
	}

	return errors.Wrap(tx.Commit().Error, "failed to commit cached events")
}

func (s *Store) CachedEvents() ([]api.EventTransport, error) {
	rows := []Event{}
	if err := s.Db.Order("event_date asc").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read cached events")
	}

	events := make([]api.EventTransport, 0, len(rows))
	for _, row := range rows {
		events = append(events, api.EventTransport{
			Id:          row.EventId,
			Title:       row.Title,
			Description: row.Description,
			EventDate:   row.EventDate,
			EventTime:   row.EventTime,
			EventType:   row.EventType,
		})
	}
	return events, nil
}
