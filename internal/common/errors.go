// Package common defines shared constants and sentinel errors used across
// client and server layers of GophDrop. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// File lifecycle errors.
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotUploaded      = errors.New("file not uploaded")
	ErrNotRequested     = errors.New("file not requested")
	ErrAlreadyUploaded  = errors.New("file already uploaded")
	ErrPendingFile      = errors.New("file is pending")
	ErrAliasNotFound    = errors.New("alias not found")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
