package store

import (
	"encoding/json"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var ErrActionNotFound = errors.New("pending action not found")

// QueueAction appends a deferred write to the outbox. The action keeps its
// creation order and a zero retry count; an idempotency key is stamped here
// so the server can deduplicate an at-least-once replay.
func (s *Store) QueueAction(actionType string, payload interface{}) (PendingAction, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return PendingAction{}, errors.Wrap(err, "failed to encode action payload")
	}

	action := PendingAction{
		ActionId:   s.StringGenerator.GenerateUuid(),
		ActionType: actionType,
		Payload:    string(b),
		RetryCount: 0,
		CreatedAt:  s.Clock.Now(),
	}
	if err := s.Db.Create(&action).Error; err != nil {
		return PendingAction{}, errors.Wrap(err, "failed to queue action")
	}
	return action, nil
}

// PendingActions returns the outbox in FIFO order by creation time.
func (s *Store) PendingActions() ([]PendingAction, error) {
	actions := []PendingAction{}
	if err := s.Db.Order("created_at asc, id asc").Find(&actions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read pending actions")
	}
	return actions, nil
}

// RemovePendingAction deletes an outbox entry; called only after the
// corresponding server write succeeded, or when the action is dropped as
// poisoned.
func (s *Store) RemovePendingAction(id uint) error {
	res := s.Db.Where("id = ?", id).Delete(&PendingAction{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to remove pending action")
	}
	if res.RowsAffected == 0 {
		return ErrActionNotFound
	}
	return nil
}

func (s *Store) BumpRetry(id uint) error {
	res := s.Db.Model(&PendingAction{}).
		Where("id = ?", id).
		UpdateColumn("retry_count", gorm.Expr("retry_count + 1"))
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to bump retry count")
	}
	if res.RowsAffected == 0 {
		return ErrActionNotFound
	}
	return nil
}
