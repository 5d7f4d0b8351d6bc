package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophdrop/internal/server/blobs"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
	"github.com/dmitrijs2005/gophdrop/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophdrop/internal/server/vault"
)

// LoadSnapshot reads every persisted row and the ciphertext of every
// uploaded file.
func LoadSnapshot(ctx context.Context, db *sql.DB, m repomanager.RepositoryManager, store blobs.Store) (vault.Snapshot, error) {
	var snap vault.Snapshot

	users, err := m.Users(db).SelectAll(ctx)
	if err != nil {
		return snap, fmt.Errorf("load users: %w", err)
	}
	files, err := m.Files(db).SelectAll(ctx)
	if err != nil {
		return snap, fmt.Errorf("load files: %w", err)
	}
	shares, err := m.Shares(db).SelectAll(ctx)
	if err != nil {
		return snap, fmt.Errorf("load shares: %w", err)
	}

	contents := make(map[models.FileID][]byte)
	for _, f := range files {
		if f.UploadedAt == nil {
			continue
		}
		data, err := store.Get(ctx, f.StorageKey)
		if err != nil {
			return snap, fmt.Errorf("load contents of file %d: %w", f.ID, err)
		}
		contents[f.ID] = data
	}

	snap.Users = users
	snap.Files = files
	snap.Shares = shares
	snap.Contents = contents
	return snap, nil
}
