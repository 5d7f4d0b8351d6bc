// Package models holds the client-side views of server responses.
package models

import "time"

// Profile is the public profile a principal publishes.
type Profile struct {
	FirstName string
	LastName  string
	PublicKey []byte
}

// User is another principal together with their profile.
type User struct {
	Principal string
	Profile   Profile
}

// Request is a freshly created pending request.
type Request struct {
	FileID uint64
	Alias  string
}

// AliasInfo is what an alias reveals before upload.
type AliasInfo struct {
	FileID      uint64
	FileName    string
	Requester   string
	RequestedAt time.Time
	UploadedAt  *time.Time
	Profile     Profile
}

// Download is a file's ciphertext plus the caller's wrapped key.
type Download struct {
	Contents []byte
	FileType string
	Key      []byte
}

// FileSummary is one row of a requests or shared-files listing.
type FileSummary struct {
	FileID      uint64
	FileName    string
	Pending     bool
	Alias       string
	RequestedAt time.Time
	UploadedAt  time.Time
	SharedWith  []Profile
}

// FromNanos converts a server timestamp in nanoseconds.
func FromNanos(ns uint64) time.Time {
	return time.Unix(0, int64(ns)).UTC()
}
