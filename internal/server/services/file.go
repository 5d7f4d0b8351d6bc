// Package services contains server-side business logic. FileService puts
// the vault State behind a single lock and, when a database is configured,
// mirrors every mutation to PostgreSQL and the blob store.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/dbx"
	"github.com/dmitrijs2005/gophdrop/internal/logging"
	"github.com/dmitrijs2005/gophdrop/internal/server/blobs"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
	"github.com/dmitrijs2005/gophdrop/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophdrop/internal/server/vault"
)

// FileService runs every operation on the shared State to completion under
// one mutex. The lock is held through commit, including the blob Put and the
// database transaction, so a slow store or database blocks every caller,
// readers included.
type FileService struct {
	mu    sync.Mutex
	state *vault.State

	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blobs.Store
	now         func() time.Time

	log logging.Logger
}

// NewFileService wraps state. A nil db keeps everything in memory only.
func NewFileService(state *vault.State, db *sql.DB, m repomanager.RepositoryManager, store blobs.Store, log logging.Logger) *FileService {
	return &FileService{
		state:       state,
		db:          db,
		repomanager: m,
		blobs:       store,
		now:         time.Now,
		log:         log.With("module", "services.file"),
	}
}

// RequestFile registers a pending request and returns its id and alias.
func (s *FileService) RequestFile(ctx context.Context, caller models.Principal, fileName string) (models.FileID, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.state.RequestFile(caller, fileName)
	alias, _ := s.state.PendingAlias(id)
	if err := s.commit(ctx); err != nil {
		return 0, "", err
	}
	s.log.Info(ctx, "file requested", "file_id", id, "requester", caller)
	return id, alias, nil
}

// UploadFile fills a pending request and returns the request's alias.
func (s *FileService) UploadFile(ctx context.Context, id models.FileID, fileType string, contents, ownerKey []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alias, err := s.state.UploadFile(id, fileType, contents, ownerKey)
	if err != nil {
		return "", err
	}
	if err := s.commit(ctx); err != nil {
		return "", err
	}
	s.log.Info(ctx, "file uploaded", "file_id", id, "size", len(contents))
	return alias, nil
}

func (s *FileService) UploadFileAtomic(ctx context.Context, caller models.Principal, fileName, fileType string, contents, ownerKey []byte) (models.FileID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.state.UploadFileAtomic(caller, fileName, fileType, contents, ownerKey)
	if err := s.commit(ctx); err != nil {
		return 0, err
	}
	s.log.Info(ctx, "file uploaded atomically", "file_id", id, "requester", caller, "size", len(contents))
	return id, nil
}

func (s *FileService) ResolveAlias(ctx context.Context, alias string) (*models.AliasInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ResolveAlias(alias)
}

func (s *FileService) Download(ctx context.Context, caller models.Principal, id models.FileID) (*models.FoundFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Download(caller, id)
}

func (s *FileService) Share(ctx context.Context, caller models.Principal, id models.FileID, grantee models.Principal, wrappedKey []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.Share(caller, id, grantee, wrappedKey); err != nil {
		return err
	}
	if err := s.commit(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "file shared", "file_id", id, "owner", caller, "grantee", grantee)
	return nil
}

func (s *FileService) ListRequests(ctx context.Context, caller models.Principal) []models.FileSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ListRequests(caller)
}

func (s *FileService) ListShared(ctx context.Context, caller models.Principal) []models.FileSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ListShared(caller)
}

func (s *FileService) SetProfile(ctx context.Context, caller models.Principal, p models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SetProfile(caller, p)
	return s.commit(ctx)
}

// WhoAmI returns the caller's profile; ok is false for an unknown caller.
func (s *FileService) WhoAmI(ctx context.Context, caller models.Principal) (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Profile(caller)
}

func (s *FileService) ListUsers(ctx context.Context, caller models.Principal) ([]models.UserData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ListUsers(caller)
}

// commit drains the changes of the current operation and mirrors them. If
// mirroring fails the changes are undone so memory and storage agree.
func (s *FileService) commit(ctx context.Context) error {
	changes := s.state.TakeChanges()
	if s.db == nil || len(changes) == 0 {
		return nil
	}
	if err := s.mirror(ctx, changes); err != nil {
		s.state.Revert(changes)
		s.log.Error(ctx, "mirror failed, changes reverted", "changes", len(changes), "error", err)
		return common.ErrorInternal
	}
	return nil
}

func (s *FileService) mirror(ctx context.Context, changes []vault.Change) error {
	// Ciphertext goes to the blob store before the rows that point at it.
	storageKeys := make(map[models.FileID]string)
	for _, c := range changes {
		up, ok := c.(vault.FileUploaded)
		if !ok {
			continue
		}
		key := blobs.NewStorageKey(s.now())
		if err := s.blobs.Put(ctx, key, up.Contents); err != nil {
			return err
		}
		storageKeys[up.FileID] = key
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		filesRepo := s.repomanager.Files(tx)
		sharesRepo := s.repomanager.Shares(tx)
		usersRepo := s.repomanager.Users(tx)

		for _, c := range changes {
			var err error
			switch c := c.(type) {
			case vault.FileRequested:
				err = filesRepo.Create(ctx, &models.FileRecord{
					ID:          c.FileID,
					FileName:    c.FileName,
					Requester:   c.Requester,
					RequestedAt: c.RequestedAt,
					Alias:       c.Alias,
				})
			case vault.FileUploaded:
				uploadedAt := c.UploadedAt
				err = filesRepo.MarkUploaded(ctx, &models.FileRecord{
					ID:         c.FileID,
					UploadedAt: &uploadedAt,
					FileType:   c.FileType,
					OwnerKey:   c.OwnerKey,
					StorageKey: storageKeys[c.FileID],
				})
			case vault.FileShared:
				err = sharesRepo.Upsert(ctx, &models.ShareRecord{
					FileID:     c.FileID,
					Grantee:    c.Grantee,
					WrappedKey: c.WrappedKey,
				})
			case vault.ProfileSet:
				err = usersRepo.Upsert(ctx, &models.UserRecord{
					Principal: c.Principal,
					FirstName: c.Profile.FirstName,
					LastName:  c.Profile.LastName,
					PublicKey: c.Profile.PublicKey,
				})
			default:
				panic(fmt.Sprintf("services: unknown change %T", c))
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
