// Package blobs stores uploaded ciphertext outside the relational database.
// File rows only carry the storage key.
package blobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store puts and fetches opaque objects by key.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// NewStorageKey returns a fresh object key partitioned by upload date.
func NewStorageKey(t time.Time) string {
	return fmt.Sprintf("files/%d/%d/%d/%v", t.Year(), t.Month(), t.Day(), uuid.New())
}
