package shares

import (
	"context"

	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, share *models.ShareRecord) error
	SelectAll(ctx context.Context) ([]*models.ShareRecord, error)
}
