package client

import (
	"context"

	"github.com/dmitrijs2005/gophdrop/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	RequestFile(ctx context.Context, fileName string) (*models.Request, error)
	ResolveAlias(ctx context.Context, alias string) (*models.AliasInfo, error)
	UploadFile(ctx context.Context, fileID uint64, fileType string, contents, ownerKey []byte) (string, error)
	UploadFileAtomic(ctx context.Context, fileName, fileType string, contents, ownerKey []byte) (uint64, error)
	Download(ctx context.Context, fileID uint64) (*models.Download, error)
	Share(ctx context.Context, fileID uint64, grantee string, wrappedKey []byte) error
	ListRequests(ctx context.Context) ([]models.FileSummary, error)
	ListShared(ctx context.Context) ([]models.FileSummary, error)
	SetProfile(ctx context.Context, p models.Profile) error
	WhoAmI(ctx context.Context) (string, *models.Profile, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
