package users

import (
	"context"

	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, user *models.UserRecord) error
	SelectAll(ctx context.Context) ([]*models.UserRecord, error)
}
