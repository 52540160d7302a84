package syncer

import (
	"context"
	"encoding/json"

	"github.com/Sproutly/SPROUT-MOBILE/api"
	"github.com/Sproutly/SPROUT-MOBILE/shared"
	"github.com/Sproutly/SPROUT-MOBILE/store"

	"github.com/pkg/errors"
)

const (
	ActionMarkAttendance = "mark_attendance"
	ActionPostActivity   = "post_activity"
	ActionUpdateLocation = "update_location"
)

var ErrUnknownActionType = errors.New("unknown pending action type")

// Replayer drains the outbox against the server, at-least-once, in FIFO
// order by creation time. An entry is removed only after its server write
// succeeds; a retryable failure stops the pass so later writes never jump
// ahead of an earlier one.
type Replayer struct {
	Client api.Client `inject:""`
	Outbox interface {
		PendingActions() ([]store.PendingAction, error)
		RemovePendingAction(id uint) error
		BumpRetry(id uint) error
	} `inject:""`
	Config *shared.AppConfig `inject:""`
	Logger *shared.Logger    `inject:""`
}

func (r *Replayer) Replay(ctx context.Context) error {
	actions, err := r.Outbox.PendingActions()
	if err != nil {
		return errors.Wrap(err, "failed to load outbox")
	}

	for _, action := range actions {
		if err := r.dispatch(ctx, action); err != nil {
			if action.RetryCount+1 >= r.Config.SyncMaxRetries {
				// Poisoned: dropping it is the only way to keep the queue
				// from wedging behind an action the server will never take.
				r.Logger.Err(ctx, "dropping pending action after repeated failures",
					"actionId", action.ActionId, "actionType", action.ActionType, "err", err.Error())
				if err := r.Outbox.RemovePendingAction(action.ID); err != nil {
					return errors.Wrap(err, "failed to drop poisoned action")
				}
				continue
			}

			if err := r.Outbox.BumpRetry(action.ID); err != nil {
				return errors.Wrap(err, "failed to bump retry count")
			}
			return errors.Wrapf(err, "replay interrupted at action %s", action.ActionId)
		}

		if err := r.Outbox.RemovePendingAction(action.ID); err != nil {
			return errors.Wrap(err, "failed to remove replayed action")
		}
		r.Logger.Info(ctx, "replayed pending action", "actionId", action.ActionId, "actionType", action.ActionType)
	}

	return nil
}

func (r *Replayer) dispatch(ctx context.Context, action store.PendingAction) error {
	switch action.ActionType {
	case ActionMarkAttendance:
		records := []api.AttendanceMarkTransport{}
		if err := json.Unmarshal([]byte(action.Payload), &records); err != nil {
			return errors.Wrap(err, "corrupt attendance payload")
		}
		return r.Client.MarkAttendanceBulk(ctx, records)

	case ActionPostActivity:
		post := api.ActivityPostTransport{}
		if err := json.Unmarshal([]byte(action.Payload), &post); err != nil {
			return errors.Wrap(err, "corrupt activity payload")
		}
		_, err := r.Client.PostActivity(ctx, post)
		return err

	case ActionUpdateLocation:
		ping := api.LocationPingTransport{}
		if err := json.Unmarshal([]byte(action.Payload), &ping); err != nil {
			return errors.Wrap(err, "corrupt location payload")
		}
		return r.Client.UpdateBusLocation(ctx, ping)
	}

	return errors.Wrapf(ErrUnknownActionType, "%q", action.ActionType)
}
