package store

import (
	"github.com/Sproutly/SPROUT-MOBILE/shared"

	"github.com/jinzhu/gorm"
)

// Store is the device-local mirror of a read-mostly subset of server state,
// plus the pending-action outbox. It is advisory, never authoritative: the
// server copy always wins on the next sync.
type Store struct {
	Db              *gorm.DB `inject:""`
	StringGenerator interface {
		GenerateUuid() string
	} `inject:""`
	Clock shared.Clock `inject:""`
}

func (s *Store) Tx() *gorm.DB {
	return s.Db.Begin()
}

func (s *Store) dbOrTx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.Db
}
