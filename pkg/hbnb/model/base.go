package model

import (
	"time"

	"github.com/hashicorp/go-uuid"
)

// TimeLayout is the wire format for timestamps in attribute maps and in the
// file backend's snapshot (ISO-8601 with microseconds).
const TimeLayout = "2006-01-02T15:04:05.000000"

// Base carries the identity and timestamps shared by every entity type.
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey;size:60"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Model is what the storage layer knows about an entity: its identity, its
// type discriminator, and how to move it in and out of an attribute map.
type Model interface {
	GetID() string
	TypeName() string
	AttrMap() map[string]any
	Apply(attrs map[string]any)
	GetBase() *Base
}

// NewBase issues a fresh id and sets both timestamps to the same instant.
// Timestamps are truncated to microseconds so that a serialized round trip
// reproduces them exactly.
func NewBase() (Base, error) {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return Base{}, err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	return Base{ID: id, CreatedAt: now, UpdatedAt: now}, nil
}

func (b *Base) GetID() string {
	return b.ID
}

func (b *Base) GetBase() *Base {
	return b
}

// Touch refreshes UpdatedAt. Called after every mutating update, before the
// storage facade's Save.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
}

// baseAttrs starts an attribute map with the shared fields and the
// __class__ discriminator.
func (b *Base) baseAttrs(class string) map[string]any {
	return map[string]any{
		"__class__":  class,
		"id":         b.ID,
		"created_at": b.CreatedAt.Format(TimeLayout),
		"updated_at": b.UpdatedAt.Format(TimeLayout),
	}
}

// setBaseAttrs restores the shared fields from a rehydration map. Timestamps
// are parsed back into time values, not kept as text.
func (b *Base) setBaseAttrs(attrs map[string]any) {
	if id, ok := asString(attrs["id"]); ok {
		b.ID = id
	}
	if t, ok := asTime(attrs["created_at"]); ok {
		b.CreatedAt = t
	}
	if t, ok := asTime(attrs["updated_at"]); ok {
		b.UpdatedAt = t
	}
}
