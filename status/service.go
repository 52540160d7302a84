package status

import (
	"context"
	"time"

	"github.com/Sproutly/SPROUT-MOBILE/session"
	"github.com/Sproutly/SPROUT-MOBILE/store"

	"github.com/pkg/errors"
)

type StatusTransport struct {
	PendingActions int               `json:"pendingActions"`
	LastSync       map[string]string `json:"lastSync"`
	TokenExpiresAt string            `json:"tokenExpiresAt,omitempty"`
}

type Service interface {
	Status(ctx context.Context) (StatusTransport, error)
}

var syncKinds = []string{"children", "attendance", "activities", "announcements", "events"}

// StatusService reports the agent's sync health: outbox depth, last mirror
// refresh per entity kind, and how long the current access token has left.
type StatusService struct {
	Cache interface {
		PendingActions() ([]store.PendingAction, error)
		LastSync(kind string) (time.Time, bool, error)
	} `inject:""`
	Session session.Store `inject:""`
}

func (s *StatusService) Status(ctx context.Context) (StatusTransport, error) {
	actions, err := s.Cache.PendingActions()
	if err != nil {
		return StatusTransport{}, errors.Wrap(err, "failed to read outbox")
	}

	result := StatusTransport{
		PendingActions: len(actions),
		LastSync:       map[string]string{},
	}

	for _, kind := range syncKinds {
		at, ok, err := s.Cache.LastSync(kind)
		if err != nil {
			return StatusTransport{}, errors.Wrap(err, "failed to read last sync")
		}
		if ok {
			result.LastSync[kind] = at.UTC().Format(time.RFC3339)
		}
	}

	if token := s.Session.AccessToken(); token != "" {
		if expiry, err := session.TokenExpiry(token); err == nil {
			result.TokenExpiresAt = expiry.UTC().Format(time.RFC3339)
		}
	}

	return result, nil
}
