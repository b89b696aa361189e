package model

import "context"

// ProfileStore persists the latest known profile per key. Records are
// write-through only: a live session never reads its profile back.
type ProfileStore interface {
	// Upsert merges fields into the persisted record for key, creating it if
	// absent. Writes are idempotent and last-write-wins per field.
	Upsert(ctx context.Context, key string, fields map[string]string) error
}
