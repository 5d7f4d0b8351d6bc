package grpc

import (
	"errors"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC status errors. Permission failures
// carry a fixed message so callers cannot tell a forbidden file from a
// missing one.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, "permission denied")
	case errors.Is(err, common.ErrNotUploaded):
		return status.Error(codes.FailedPrecondition, common.ErrNotUploaded.Error())
	case errors.Is(err, common.ErrPendingFile):
		return status.Error(codes.FailedPrecondition, common.ErrPendingFile.Error())
	case errors.Is(err, common.ErrNotRequested):
		return status.Error(codes.NotFound, common.ErrNotRequested.Error())
	case errors.Is(err, common.ErrAliasNotFound):
		return status.Error(codes.NotFound, common.ErrAliasNotFound.Error())
	case errors.Is(err, common.ErrAlreadyUploaded):
		return status.Error(codes.AlreadyExists, common.ErrAlreadyUploaded.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
