// Package models defines the server-side domain types shared by the vault,
// the services and the repositories.
package models

// Principal is an externally authenticated caller identity. It is compared
// by equality and ordered lexically.
type Principal string

// FileID is assigned from a monotonic counter when a file is requested and
// is never reused.
type FileID uint64

// FileMetadata describes a requested file. Everything except UploadedAt is
// fixed at request time; UploadedAt is set exactly once on upload.
type FileMetadata struct {
	FileName           string
	RequesterPrincipal Principal
	RequestedAt        uint64
	UploadedAt         *uint64
}

// Clone returns a copy of m with its own UploadedAt.
func (m FileMetadata) Clone() FileMetadata {
	if m.UploadedAt != nil {
		at := *m.UploadedAt
		m.UploadedAt = &at
	}
	return m
}

// FileContent is either PendingContent or UploadedContent. The unexported
// marker method keeps the set closed to this package.
type FileContent interface {
	fileContent()
}

// PendingContent is the state of a requested file that has no bytes yet.
type PendingContent struct {
	Alias string
}

// UploadedContent holds the ciphertext together with the owner's wrapped
// key and one wrapped key per grantee.
type UploadedContent struct {
	Contents   []byte
	FileType   string
	OwnerKey   []byte
	SharedKeys map[Principal][]byte
}

func (PendingContent) fileContent()   {}
func (*UploadedContent) fileContent() {}

// File couples metadata with content.
type File struct {
	Metadata FileMetadata
	Content  FileContent
}

// FoundFile is what an authorized reader receives: the shared ciphertext and
// the wrapped key that belongs to that reader.
type FoundFile struct {
	Contents []byte
	FileType string
	Key      []byte
}

// AliasInfo is the public view of a request learned from its alias: the
// file's metadata and the requester's profile, never contents or keys.
type AliasInfo struct {
	FileID   FileID
	Metadata FileMetadata
	User     UserProfile
}
