// Package shares persists the per-grantee wrapped keys of shared files.
package shares

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdrop/internal/dbx"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert stores a grantee's wrapped key, replacing any earlier one.
func (r *PostgresRepository) Upsert(ctx context.Context, share *models.ShareRecord) error {
	query := `
		INSERT INTO file_shares (file_id, grantee, wrapped_key)
		VALUES ($1, $2, $3)
		ON CONFLICT (file_id, grantee)
		DO UPDATE SET wrapped_key = EXCLUDED.wrapped_key
	`
	if _, err := r.db.ExecContext(ctx, query, int64(share.FileID), string(share.Grantee), share.WrappedKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.ShareRecord, error) {
	query := `SELECT file_id, grantee, wrapped_key FROM file_shares ORDER BY file_id, grantee`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select shares: %w", err)
	}
	defer rows.Close()

	var result []*models.ShareRecord
	for rows.Next() {
		var (
			item    models.ShareRecord
			fileID  int64
			grantee string
		)
		if err := rows.Scan(&fileID, &grantee, &item.WrappedKey); err != nil {
			return nil, err
		}
		item.FileID = models.FileID(fileID)
		item.Grantee = models.Principal(grantee)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
