package vault

import (
	"bytes"
	"fmt"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

// Share grants grantee read access to an uploaded file, storing the key the
// owner wrapped for them. Only the file's requester may share. Sharing again
// with the same grantee replaces their key.
func (s *State) Share(caller models.Principal, id models.FileID, grantee models.Principal, wrappedKey []byte) error {
	if !has(s.owners, caller, id) {
		return common.ErrPermissionDenied
	}

	f := s.mustFile(id)
	switch c := f.Content.(type) {
	case models.PendingContent:
		return common.ErrPendingFile
	case *models.UploadedContent:
		// owners always read with the owner key
		if grantee == caller {
			return nil
		}
		prev, hadPrev := c.SharedKeys[grantee]
		wrappedKey = bytes.Clone(wrappedKey)
		c.SharedKeys[grantee] = wrappedKey
		addTo(s.shares, grantee, id)

		s.record(FileShared{
			FileID:      id,
			Grantee:     grantee,
			WrappedKey:  wrappedKey,
			previous:    prev,
			hadPrevious: hadPrev,
		})
		return nil
	default:
		panic(fmt.Sprintf("vault: unknown content %T", c))
	}
}
