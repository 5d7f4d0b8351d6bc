package vault

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

// Change describes one mutation of a State. Changes are recorded in the
// order they happen and can be handed to a durable mirror with TakeChanges
// or undone with Revert.
type Change interface {
	change()
}

type FileRequested struct {
	FileID      models.FileID
	FileName    string
	Requester   models.Principal
	RequestedAt uint64
	Alias       string
}

type FileUploaded struct {
	FileID     models.FileID
	FileType   string
	Contents   []byte
	OwnerKey   []byte
	UploadedAt uint64
	Alias      string
}

type FileShared struct {
	FileID     models.FileID
	Grantee    models.Principal
	WrappedKey []byte

	previous    []byte
	hadPrevious bool
}

type ProfileSet struct {
	Principal models.Principal
	Profile   models.UserProfile

	previous    models.UserProfile
	hadPrevious bool
}

func (FileRequested) change() {}
func (FileUploaded) change()  {}
func (FileShared) change()    {}
func (ProfileSet) change()    {}

// TakeChanges returns the changes recorded since the last call and clears
// the buffer.
func (s *State) TakeChanges() []Change {
	out := s.changes
	s.changes = nil
	return out
}

// Revert undoes changes newest first. It is meant for changes just taken
// from this State; the file counter is left advanced so ids stay unique.
func (s *State) Revert(changes []Change) {
	for _, c := range slices.Backward(changes) {
		switch c := c.(type) {
		case FileRequested:
			delete(s.files, c.FileID)
			delete(s.aliasIndex, c.Alias)
			removeFrom(s.owners, c.Requester, c.FileID)
		case FileUploaded:
			f := s.mustFile(c.FileID)
			f.Content = models.PendingContent{Alias: c.Alias}
			f.Metadata.UploadedAt = nil
		case FileShared:
			uc, ok := s.mustFile(c.FileID).Content.(*models.UploadedContent)
			if !ok {
				panic(fmt.Sprintf("vault: reverting share of pending file %d", c.FileID))
			}
			if c.hadPrevious {
				uc.SharedKeys[c.Grantee] = c.previous
			} else {
				delete(uc.SharedKeys, c.Grantee)
				removeFrom(s.shares, c.Grantee, c.FileID)
			}
		case ProfileSet:
			if c.hadPrevious {
				s.users[c.Principal] = c.previous
			} else {
				delete(s.users, c.Principal)
			}
		default:
			panic(fmt.Sprintf("vault: unknown change %T", c))
		}
	}
}
