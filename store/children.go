package store

import (
	"github.com/Sproutly/SPROUT-MOBILE/api"

	"github.com/pkg/errors"
)

// CacheChildren wholesale-replaces the mirrored collection, so repeated syncs
// never accumulate duplicate rows.
func (s *Store) CacheChildren(children []api.ChildTransport) error {
	tx := s.Tx()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to cache children")
	}

	if err := tx.Delete(Child{}).Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "failed to clear cached children")
	}

	now := s.Clock.Now()
	for _, child := range children {
		row := Child{
			ChildId:     child.Id,
			Name:        child.Name,
			ClassName:   child.ClassName,
			Email:       child.Email,
			ParentName:  child.ParentName,
			ParentPhone: child.ParentPhone,
			Status:      child.Status,
			CachedAt:    now,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return errors.Wrap(err, "failed to cache child")
		}
	}

	return errors.Wrap(tx.Commit().Error, "failed to commit cached children")
}

func (s *Store) CachedChildren() ([]api.ChildTransport, error) {
	rows := []Child{}
	if err := s.Db.Order("name asc").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read cached children")
	}

	children := make([]api.ChildTransport, 0, len(rows))
	for _, row := range rows {
		children = append(children, api.ChildTransport{
			Id:          row.ChildId,
			Name:        row.Name,
			ClassName:   row.ClassName,
			Email:       row.Email,
			ParentName:  row.ParentName,
			ParentPhone: row.ParentPhone,
			Status:      row.Status,
		})
	}
	return children, nil
}
