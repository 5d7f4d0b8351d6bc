package files

import (
	"context"

	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, file *models.FileRecord) error
	MarkUploaded(ctx context.Context, file *models.FileRecord) error
	SelectAll(ctx context.Context) ([]*models.FileRecord, error)
}
