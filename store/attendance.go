package store

import (
	"github.com/Sproutly/SPROUT-MOBILE/api"

	"github.com/pkg/errors"
)

// CacheAttendance upserts by (child, date): one row per child per day
// regardless of how many syncs replayed the same window.
func (s *Store) CacheAttendance(childId string, records []api.AttendanceTransport) error {
	now := s.Clock.Now()

	for _, record := range records {
		existing := Attendance{}
		query := s.Db.Where("child_id = ? AND date = ?", childId, record.Date).First(&existing)
		if query.RecordNotFound() {
			row := Attendance{
				AttendanceId: record.Id,
				ChildId:      childId,
				Date:         record.Date,
				Status:       record.Status,
				CheckInTime:  record.CheckInTime,
				CheckOutTime: record.CheckOutTime,
				CachedAt:     now,
			}
			if err := s.Db.Create(&row).Error; err != nil {
				return errors.Wrap(err, "failed to cache attendance")
			}
			continue
		}
		if err := query.Error; err != nil {
			return errors.Wrap(err, "failed to cache attendance")
		}

		existing.AttendanceId = record.Id
		existing.Status = record.Status
		existing.CheckInTime = record.CheckInTime
		existing.CheckOutTime = record.CheckOutTime
		existing.CachedAt = now
		if err := s.Db.Save(&existing).Error; err != nil {
			return errors.Wrap(err, "failed to update cached attendance")
		}
	}

	return nil
}

func (s *Store) CachedAttendance(childId string, days int) ([]api.AttendanceTransport, error) {
	cutoff := s.Clock.Now().AddDate(0, 0, -days).Format("2006-01-02")

	rows := []Attendance{}
	err := s.Db.
		Where("child_id = ? AND date >= ?", childId, cutoff).
		Order("date desc").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cached attendance")
	}

	records := make([]api.AttendanceTransport, 0, len(rows))
	for _, row := range rows {
		records = append(records, api.AttendanceTransport{
			Id:           row.AttendanceId,
			ChildId:      row.ChildId,
			Date:         row.Date,
			Status:       row.Status,
			CheckInTime:  row.CheckInTime,
			CheckOutTime: row.CheckOutTime,
		})
	}
	return records, nil
}
