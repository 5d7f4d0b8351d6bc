package users

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

func (r *PostgresRepository) Upsert(ctx context.Context, user *models.UserRecord) error {
	query := `
		INSERT INTO users (principal, first_name, last_name, public_key)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (principal)
		DO UPDATE SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
			public_key = EXCLUDED.public_key, updated_at = now()
	`
	_, err := r.db.ExecContext(ctx, query, string(user.Principal), user.FirstName, user.LastName, user.PublicKey)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.UserRecord, error) {
	query := `SELECT principal, first_name, last_name, public_key FROM users ORDER BY principal`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []*models.UserRecord
	for rows.Next() {
		var (
			item      models.UserRecord
			principal string
		)
		if err := rows.Scan(&principal, &item.FirstName, &item.LastName, &item.PublicKey); err != nil {
			return nil, err
		}
		item.Principal = models.Principal(principal)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
