package vault

import (
	"bytes"
	"fmt"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

// CanDownload reports whether caller owns id or had it shared with them.
func (s *State) CanDownload(caller models.Principal, id models.FileID) bool {
	return has(s.owners, caller, id) || has(s.shares, caller, id)
}

// Download returns the ciphertext and the caller's own wrapped key.
//
// A caller without rights gets ErrPermissionDenied whether or not the file
// exists. An authorized caller gets ErrNotUploaded while the file is
// pending. Owners always receive the owner key. The returned slices are
// copies.
func (s *State) Download(caller models.Principal, id models.FileID) (*models.FoundFile, error) {
	if !s.CanDownload(caller, id) {
		return nil, common.ErrPermissionDenied
	}

	f := s.mustFile(id)
	switch c := f.Content.(type) {
	case models.PendingContent:
		return nil, common.ErrNotUploaded
	case *models.UploadedContent:
		key, ok := s.keyFor(caller, id, c)
		if !ok {
			panic(fmt.Sprintf("vault: %q may read file %d but holds no key", caller, id))
		}
		return &models.FoundFile{Contents: bytes.Clone(c.Contents), FileType: c.FileType, Key: bytes.Clone(key)}, nil
	default:
		panic(fmt.Sprintf("vault: unknown content %T", c))
	}
}

func (s *State) keyFor(caller models.Principal, id models.FileID, c *models.UploadedContent) ([]byte, bool) {
	if has(s.owners, caller, id) {
		return c.OwnerKey, true
	}
	key, ok := c.SharedKeys[caller]
	return key, ok
}
