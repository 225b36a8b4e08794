package storage

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and timestamps shared by stored records.
// IDs are UUIDv7 so that keys built from them sort by creation time.
type BaseEntity struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBaseEntity(now time.Time) BaseEntity {
	return BaseEntity{
		ID:        uuid.Must(uuid.NewV7()),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (e *BaseEntity) StorageID() string {
	return e.ID.String()
}

// Inherit takes over the identity of previous and marks the entity updated at now.
func (e *BaseEntity) Inherit(previous BaseEntity, now time.Time) {
	e.ID = previous.ID
	e.CreatedAt = previous.CreatedAt
	e.UpdatedAt = now
}
