package store

import (
	"github.com/Sproutly/SPROUT-MOBILE/api"

	"github.com/pkg/errors"
)

func (s *Store) CacheAnnouncements(announcements []api.AnnouncementTransport) error {
	tx := s.Tx()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to cache announcements")
	}

	if err := tx.Delete(Announcement{}).Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "failed to clear cached announcements")
	}

	now := s.Clock.Now()
	for _, announcement := range announcements {
		row := Announcement{
			AnnouncementId: announcement.Id,
			Title:          announcement.Title,
			Content:        announcement.Content,
			Priority:       announcement.Priority,
			PublishedAt:    announcement.PublishedAt,
			CachedAt:       now,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return errors.Wrap(err, "failed to cache announcement")
		}
	}

	return errors.Wrap(tx.Commit().Error, "failed to commit cached announcements")
}

func (s *Store) CachedAnnouncements() ([]api.AnnouncementTransport, error) {
	rows := []Announcement{}
	if err := s.Db.Order("published_at desc").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read cached announcements")
	}

	announcements := make([]api.AnnouncementTransport, 0, len(rows))
	for _, row := range rows {
		announcements = append(announcements, api.AnnouncementTransport{
			Id:          row.AnnouncementId,
			Title:       row.Title,
			Content:     row.Content,
			Priority:    row.Priority,
			PublishedAt: row.PublishedAt,
		})
	}
	return announcements, nil
}
