package models

// FileStatus tells a listing whether a file is still waiting for its
// upload. Alias and RequestedAt are set while pending, UploadedAt once
// uploaded.
type FileStatus struct {
	Pending     bool
	Alias       string
	RequestedAt uint64
	UploadedAt  uint64
}

// FileSummary is one row of a caller's requests or shared-files listing.
type FileSummary struct {
	FileID     FileID
	FileName   string
	Status     FileStatus
	SharedWith []UserProfile
}
