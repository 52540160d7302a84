package store

import (
	"encoding/json"

	"github.com/Sproutly/SPROUT-MOBILE/api"

	"github.com/pkg/errors"
)

// CacheActivities upserts by server id; activities are append-only upstream
// so an existing row only ever gets its media/content refreshed.
func (s *Store) CacheActivities(childId string, updates []api.DailyUpdateTransport) error {
	now := s.Clock.Now()

	for _, update := range updates {
		media, err := json.Marshal(update.MediaUrls)
		if err != nil {
			return errors.Wrap(err, "failed to encode media urls")
		}

		row := Activity{
			ActivityId:   update.Id,
			ChildId:      childId,
			Title:        update.Title,
			Content:      update.Content,
			MediaUrls:    string(media),
			ActivityType: update.ActivityType,
			Mood:         update.Mood,
			TeacherName:  update.TeacherName,
			PostedAt:     update.PostedAt,
			CachedAt:     now,
		}

		existing := Activity{}
		query := s.Db.Where("activity_id = ?", update.Id).First(&existing)
		if query.RecordNotFound() {
			if err := s.Db.Create(&row).Error; err != nil {
				return errors.Wrap(err, "failed to cache activity")
			}
			continue
		}
		if err := query.Error; err != nil {
			return errors.Wrap(err, "failed to cache activity")
		}
		if err := s.Db.Save(&row).Error; err != nil {
			return errors.Wrap(err, "failed to update cached activity")
		}
	}

	return nil
}

func (s *Store) CachedActivities(childId string, limit int) ([]api.DailyUpdateTransport, error) {
	rows := []Activity{}
	err := s.Db.
		Where("child_id = ?", childId).
		Order("posted_at desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cached activities")
	}

	updates := make([]api.DailyUpdateTransport, 0, len(rows))
	for _, row := range rows {
		mediaUrls := []string{}
		if row.MediaUrls != "" {
			if err := json.Unmarshal([]byte(row.MediaUrls), &mediaUrls); err != nil {
				return nil, errors.Wrap(err, "corrupt media urls in cached activity")
			}
		}
		updates = append(updates, api.DailyUpdateTransport{
			Id:           row.ActivityId,
			ChildId:      row.ChildId,
			Title:        row.Title,
			Content:      row.Content,
			MediaUrls:    mediaUrls,
			ActivityType: row.ActivityType,
			Mood:         row.Mood,
			TeacherName:  row.TeacherName,
			PostedAt:     row.PostedAt,
		})
	}
	return updates, nil
}
