package vault

import (
	"fmt"

	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

// Snapshot is the persisted form of a State. Contents maps the ids of
// uploaded files to their ciphertext.
type Snapshot struct {
	Files    []*models.FileRecord
	Contents map[models.FileID][]byte
	Shares   []*models.ShareRecord
	Users    []*models.UserRecord
}

// Restore rebuilds a State from a snapshot. Rows that would break the
// registry invariants are reported as errors.
func Restore(snap Snapshot, aliases AliasSource, clock Clock) (*State, error) {
	s := New(aliases, clock)

	for _, u := range snap.Users {
		s.users[u.Principal] = models.UserProfile{FirstName: u.FirstName, LastName: u.LastName, PublicKey: u.PublicKey}
	}

	for _, r := range snap.Files {
		if _, dup := s.files[r.ID]; dup {
			return nil, fmt.Errorf("duplicate file %d", r.ID)
		}
		if _, dup := s.aliasIndex[r.Alias]; dup {
			return nil, fmt.Errorf("duplicate alias for file %d", r.ID)
		}

		f := &models.File{Metadata: models.FileMetadata{
			FileName:           r.FileName,
			RequesterPrincipal: r.Requester,
			RequestedAt:        r.RequestedAt,
		}}
		if r.UploadedAt == nil {
			f.Content = models.PendingContent{Alias: r.Alias}
		} else {
			contents, ok := snap.Contents[r.ID]
			if !ok {
				return nil, fmt.Errorf("file %d is uploaded but has no contents", r.ID)
			}
			uploadedAt := *r.UploadedAt
			f.Metadata.UploadedAt = &uploadedAt
			f.Content = &models.UploadedContent{
				Contents:   contents,
				FileType:   r.FileType,
				OwnerKey:   r.OwnerKey,
				SharedKeys: make(map[models.Principal][]byte),
			}
		}

		s.files[r.ID] = f
		s.aliasIndex[r.Alias] = r.ID
		addTo(s.owners, r.Requester, r.ID)
		if uint64(r.ID) >= s.fileCount {
			s.fileCount = uint64(r.ID) + 1
		}
	}

	for _, sh := range snap.Shares {
		f, ok := s.files[sh.FileID]
		if !ok {
			return nil, fmt.Errorf("share of unknown file %d", sh.FileID)
		}
		uc, ok := f.Content.(*models.UploadedContent)
		if !ok {
			return nil, fmt.Errorf("share of pending file %d", sh.FileID)
		}
		if sh.Grantee == f.Metadata.RequesterPrincipal {
			continue
		}
		uc.SharedKeys[sh.Grantee] = sh.WrappedKey
		addTo(s.shares, sh.Grantee, sh.FileID)
	}

	return s, nil
}
