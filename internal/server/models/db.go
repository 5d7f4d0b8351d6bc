package models

// FileRecord is the persisted form of a File without its ciphertext, which
// lives in blob storage under StorageKey.
type FileRecord struct {
	ID          FileID
	FileName    string
	Requester   Principal
	RequestedAt uint64
	UploadedAt  *uint64
	Alias       string
	FileType    string
	OwnerKey    []byte
	StorageKey  string
}

// ShareRecord is one grantee's wrapped key for a file.
type ShareRecord struct {
	FileID     FileID
	Grantee    Principal
	WrappedKey []byte
}

// UserRecord is a persisted profile.
type UserRecord struct {
	Principal Principal
	FirstName string
	LastName  string
	PublicKey []byte
}
