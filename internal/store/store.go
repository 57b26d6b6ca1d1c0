// Package store persists the quest collection for the host. The editing
// core never touches a Store; the host loads the collection, hands it to
// the core, and writes back whatever changed.
package store

import (
	"context"

	"questforge/internal/quest"
)

type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	LoadAll(ctx context.Context) (quest.Collection, error)
	Get(ctx context.Context, id string) (*quest.Quest, error)
	Put(ctx context.Context, q *quest.Quest) error
	Rename(ctx context.Context, oldID, newID string) error
	Delete(ctx context.Context, id string) error
}
