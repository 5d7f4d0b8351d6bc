package files

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/dbx"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

// PostgresRepository implements file metadata storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a pending file row.
func (r *PostgresRepository) Create(ctx context.Context, file *models.FileRecord) error {
	query := `
		INSERT INTO files (id, file_name, requester, requested_at, alias, upload_status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
	`
	_, err := r.db.ExecContext(ctx, query,
		int64(file.ID), file.FileName, string(file.Requester), int64(file.RequestedAt), file.Alias)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// MarkUploaded moves a pending row to completed. Exactly one pending row
// must match; anything else is ErrAlreadyUploaded or a storage error.
func (r *PostgresRepository) MarkUploaded(ctx context.Context, file *models.FileRecord) error {
	if file.UploadedAt == nil {
		return fmt.Errorf("mark uploaded: file %d has no upload time", file.ID)
	}

	query := `
		UPDATE files SET upload_status='completed', uploaded_at=$2, file_type=$3, owner_key=$4, storage_key=$5
		WHERE id=$1 AND upload_status='pending'
	`
	res, err := r.db.ExecContext(ctx, query,
		int64(file.ID), int64(*file.UploadedAt), file.FileType, file.OwnerKey, file.StorageKey)
	if err != nil {
		return fmt.Errorf("failed to mark uploaded: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrAlreadyUploaded
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// SelectAll returns every file row ordered by id.
func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.FileRecord, error) {
	query := `
		SELECT id, file_name, requester, requested_at, alias, uploaded_at, file_type, owner_key, storage_key
		FROM files ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []*models.FileRecord
	for rows.Next() {
		var (
			item        models.FileRecord
			id          int64
			requester   string
			requestedAt int64
			uploadedAt  sql.NullInt64
		)
		if err := rows.Scan(&id, &item.FileName, &requester, &requestedAt, &item.Alias,
			&uploadedAt, &item.FileType, &item.OwnerKey, &item.StorageKey); err != nil {
			return nil, err
		}
		item.ID = models.FileID(id)
		item.Requester = models.Principal(requester)
		item.RequestedAt = uint64(requestedAt)
		if uploadedAt.Valid {
			v := uint64(uploadedAt.Int64)
			item.UploadedAt = &v
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
