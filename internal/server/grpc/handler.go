package grpc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	pb "github.com/dmitrijs2005/gophdrop/internal/proto"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) caller(ctx context.Context) (models.Principal, error) {
	p, ok := principalFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return p, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty file name", common.ErrorValidation)
	}
	return nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RequestFile(ctx context.Context, req *pb.RequestFileRequest) (*pb.RequestFileResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateName(req.FileName); err != nil {
		return nil, toStatus(err)
	}

	id, alias, err := s.files.RequestFile(ctx, caller, req.FileName)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RequestFileResponse{FileId: uint64(id), Alias: alias}, nil
}

func (s *GRPCServer) UploadFile(ctx context.Context, req *pb.UploadFileRequest) (*pb.UploadFileResponse, error) {
	alias, err := s.files.UploadFile(ctx, models.FileID(req.FileId), req.FileType, req.Contents, req.OwnerKey)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UploadFileResponse{Alias: alias}, nil
}

func (s *GRPCServer) UploadFileAtomic(ctx context.Context, req *pb.UploadFileAtomicRequest) (*pb.UploadFileAtomicResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateName(req.FileName); err != nil {
		return nil, toStatus(err)
	}

	id, err := s.files.UploadFileAtomic(ctx, caller, req.FileName, req.FileType, req.Contents, req.OwnerKey)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UploadFileAtomicResponse{FileId: uint64(id)}, nil
}

func (s *GRPCServer) ResolveAlias(ctx context.Context, req *pb.ResolveAliasRequest) (*pb.ResolveAliasResponse, error) {
	info, err := s.files.ResolveAlias(ctx, req.Alias)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ResolveAliasResponse{
		FileId: uint64(info.FileID),
		Metadata: &pb.FileMetadata{
			FileName:    info.Metadata.FileName,
			Requester:   string(info.Metadata.RequesterPrincipal),
			RequestedAt: info.Metadata.RequestedAt,
			UploadedAt:  info.Metadata.UploadedAt,
		},
		User: profileToPB(info.User),
	}, nil
}

func (s *GRPCServer) DownloadFile(ctx context.Context, req *pb.DownloadFileRequest) (*pb.DownloadFileResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	f, err := s.files.Download(ctx, caller, models.FileID(req.FileId))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.DownloadFileResponse{Contents: f.Contents, FileType: f.FileType, Key: f.Key}, nil
}

func (s *GRPCServer) ShareFile(ctx context.Context, req *pb.ShareFileRequest) (*pb.ShareFileResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.Grantee == "" {
		return nil, toStatus(fmt.Errorf("%w: empty grantee", common.ErrorValidation))
	}

	err = s.files.Share(ctx, caller, models.FileID(req.FileId), models.Principal(req.Grantee), req.WrappedKey)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ShareFileResponse{}, nil
}

func (s *GRPCServer) ListRequests(ctx context.Context, req *pb.ListRequestsRequest) (*pb.ListFilesResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	return &pb.ListFilesResponse{Files: summariesToPB(s.files.ListRequests(ctx, caller))}, nil
}

func (s *GRPCServer) ListSharedFiles(ctx context.Context, req *pb.ListSharedFilesRequest) (*pb.ListFilesResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	return &pb.ListFilesResponse{Files: summariesToPB(s.files.ListShared(ctx, caller))}, nil
}

func (s *GRPCServer) SetProfile(ctx context.Context, req *pb.SetProfileRequest) (*pb.SetProfileResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	err = s.files.SetProfile(ctx, caller, models.UserProfile{
		FirstName: req.GetProfile().GetFirstName(),
		LastName:  req.GetProfile().GetLastName(),
		PublicKey: req.GetProfile().GetPublicKey(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SetProfileResponse{}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, req *pb.WhoAmIRequest) (*pb.WhoAmIResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	p, ok := s.files.WhoAmI(ctx, caller)
	return &pb.WhoAmIResponse{Known: ok, Principal: string(caller), Profile: profileToPB(p)}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.files.ListUsers(ctx, caller)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pb.UserData, 0, len(users))
	for _, u := range users {
		out = append(out, &pb.UserData{Principal: string(u.Principal), Profile: profileToPB(u.Profile)})
	}
	return &pb.ListUsersResponse{Users: out}, nil
}

func profileToPB(p models.UserProfile) *pb.UserProfile {
	return &pb.UserProfile{FirstName: p.FirstName, LastName: p.LastName, PublicKey: p.PublicKey}
}

func summariesToPB(in []models.FileSummary) []*pb.FileSummary {
	out := make([]*pb.FileSummary, 0, len(in))
	for _, f := range in {
		shared := make([]*pb.UserProfile, 0, len(f.SharedWith))
		for _, u := range f.SharedWith {
			shared = append(shared, profileToPB(u))
		}
		out = append(out, &pb.FileSummary{
			FileId:   uint64(f.FileID),
			FileName: f.FileName,
			Status: &pb.FileStatus{
				Pending:     f.Status.Pending,
				Alias:       f.Status.Alias,
				RequestedAt: f.Status.RequestedAt,
				UploadedAt:  f.Status.UploadedAt,
			},
			SharedWith: shared,
		})
	}
	return out
}
