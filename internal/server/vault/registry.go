package vault

import (
	"bytes"
	"fmt"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

// RequestFile registers a pending request for fileName owned by requester
// and returns its id. The alias is drawn again while the drawn value is
// already indexed.
func (s *State) RequestFile(requester models.Principal, fileName string) models.FileID {
	id := models.FileID(s.fileCount)
	s.fileCount++

	alias := s.aliases.Next()
	for {
		if _, taken := s.aliasIndex[alias]; !taken {
			break
		}
		alias = s.aliases.Next()
	}

	now := s.clock.Now()
	s.files[id] = &models.File{
		Metadata: models.FileMetadata{
			FileName:           fileName,
			RequesterPrincipal: requester,
			RequestedAt:        now,
		},
		Content: models.PendingContent{Alias: alias},
	}
	s.aliasIndex[alias] = id
	addTo(s.owners, requester, id)

	s.record(FileRequested{FileID: id, FileName: fileName, Requester: requester, RequestedAt: now, Alias: alias})
	return id
}

// UploadFile stores copies of the ciphertext and the owner's wrapped key for
// a pending request and returns the request's alias. A second upload for the
// same id fails with ErrAlreadyUploaded and leaves the first one untouched.
func (s *State) UploadFile(id models.FileID, fileType string, contents, ownerKey []byte) (string, error) {
	f, ok := s.files[id]
	if !ok {
		return "", common.ErrNotRequested
	}

	switch c := f.Content.(type) {
	case models.PendingContent:
		now := s.clock.Now()
		contents, ownerKey = bytes.Clone(contents), bytes.Clone(ownerKey)
		f.Content = &models.UploadedContent{
			Contents:   contents,
			FileType:   fileType,
			OwnerKey:   ownerKey,
			SharedKeys: make(map[models.Principal][]byte),
		}
		f.Metadata.UploadedAt = &now

		s.record(FileUploaded{
			FileID:     id,
			FileType:   fileType,
			Contents:   contents,
			OwnerKey:   ownerKey,
			UploadedAt: now,
			Alias:      c.Alias,
		})
		return c.Alias, nil
	case *models.UploadedContent:
		return "", common.ErrAlreadyUploaded
	default:
		panic(fmt.Sprintf("vault: unknown content %T", c))
	}
}

// UploadFileAtomic requests and uploads a file in one step on behalf of
// caller, who becomes its owner.
func (s *State) UploadFileAtomic(caller models.Principal, fileName, fileType string, contents, ownerKey []byte) models.FileID {
	id := s.RequestFile(caller, fileName)
	if _, err := s.UploadFile(id, fileType, contents, ownerKey); err != nil {
		panic(fmt.Sprintf("vault: upload of fresh request %d failed: %v", id, err))
	}
	return id
}

// ResolveAlias reports which file an alias addresses, its metadata and the
// requester's profile. It is available without authentication: whoever holds
// the alias must see this before uploading. It never exposes contents or
// keys. An unknown requester profile is returned as the zero profile.
func (s *State) ResolveAlias(alias string) (*models.AliasInfo, error) {
	id, ok := s.aliasIndex[alias]
	if !ok {
		return nil, common.ErrAliasNotFound
	}
	f := s.mustFile(id)
	return &models.AliasInfo{
		FileID:   id,
		Metadata: f.Metadata.Clone(),
		User:     s.users[f.Metadata.RequesterPrincipal].Clone(),
	}, nil
}

// Metadata returns a copy of the metadata of a registered file.
func (s *State) Metadata(id models.FileID) (models.FileMetadata, bool) {
	f, ok := s.files[id]
	if !ok {
		return models.FileMetadata{}, false
	}
	return f.Metadata.Clone(), true
}

// PendingAlias returns the alias of a file that is still waiting for its
// upload.
func (s *State) PendingAlias(id models.FileID) (string, bool) {
	f, ok := s.files[id]
	if !ok {
		return "", false
	}
	c, ok := f.Content.(models.PendingContent)
	return c.Alias, ok
}
