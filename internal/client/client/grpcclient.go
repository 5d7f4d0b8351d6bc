package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdrop/internal/client/models"
	"github.com/dmitrijs2005/gophdrop/internal/common"
	pb "github.com/dmitrijs2005/gophdrop/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.DropServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGophDropClient connects to endpointURL. An empty accessToken limits the
// client to the public calls: Ping, ResolveAlias and UploadFile.
func NewGophDropClient(endpointURL, accessToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewDropServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) RequestFile(ctx context.Context, fileName string) (*models.Request, error) {
	resp, err := s.client.RequestFile(ctx, &pb.RequestFileRequest{FileName: fileName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Request{FileID: resp.FileId, Alias: resp.Alias}, nil
}

func (s *GRPCClient) ResolveAlias(ctx context.Context, alias string) (*models.AliasInfo, error) {
	resp, err := s.client.ResolveAlias(ctx, &pb.ResolveAliasRequest{Alias: alias})
	if err != nil {
		return nil, s.mapError(err)
	}

	md := resp.GetMetadata()
	info := &models.AliasInfo{
		FileID:      resp.GetFileId(),
		FileName:    md.GetFileName(),
		Requester:   md.GetRequester(),
		RequestedAt: models.FromNanos(md.GetRequestedAt()),
		Profile:     profileFromPB(resp.GetUser()),
	}
	if md.UploadedAt != nil {
		t := models.FromNanos(md.GetUploadedAt())
		info.UploadedAt = &t
	}
	return info, nil
}

func (s *GRPCClient) UploadFile(ctx context.Context, fileID uint64, fileType string, contents, ownerKey []byte) (string, error) {
	resp, err := s.client.UploadFile(ctx, &pb.UploadFileRequest{
		FileId: fileID, FileType: fileType, Contents: contents, OwnerKey: ownerKey,
	})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Alias, nil
}

func (s *GRPCClient) UploadFileAtomic(ctx context.Context, fileName, fileType string, contents, ownerKey []byte) (uint64, error) {
	resp, err := s.client.UploadFileAtomic(ctx, &pb.UploadFileAtomicRequest{
		FileName: fileName, FileType: fileType, Contents: contents, OwnerKey: ownerKey,
	})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.FileId, nil
}

func (s *GRPCClient) Download(ctx context.Context, fileID uint64) (*models.Download, error) {
	resp, err := s.client.DownloadFile(ctx, &pb.DownloadFileRequest{FileId: fileID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Download{Contents: resp.Contents, FileType: resp.FileType, Key: resp.Key}, nil
}

func (s *GRPCClient) Share(ctx context.Context, fileID uint64, grantee string, wrappedKey []byte) error {
	_, err := s.client.ShareFile(ctx, &pb.ShareFileRequest{FileId: fileID, Grantee: grantee, WrappedKey: wrappedKey})
	return s.mapError(err)
}

func (s *GRPCClient) ListRequests(ctx context.Context) ([]models.FileSummary, error) {
	resp, err := s.client.ListRequests(ctx, &pb.ListRequestsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return summariesFromPB(resp.Files), nil
}

func (s *GRPCClient) ListShared(ctx context.Context) ([]models.FileSummary, error) {
	resp, err := s.client.ListSharedFiles(ctx, &pb.ListSharedFilesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return summariesFromPB(resp.Files), nil
}

func (s *GRPCClient) SetProfile(ctx context.Context, p models.Profile) error {
	_, err := s.client.SetProfile(ctx, &pb.SetProfileRequest{Profile: &pb.UserProfile{
		FirstName: p.FirstName, LastName: p.LastName, PublicKey: p.PublicKey,
	}})
	return s.mapError(err)
}

// WhoAmI returns the caller's principal and, when one was set, their profile.
func (s *GRPCClient) WhoAmI(ctx context.Context) (string, *models.Profile, error) {
	resp, err := s.client.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil {
		return "", nil, s.mapError(err)
	}
	if !resp.Known {
		return resp.Principal, nil, nil
	}
	p := profileFromPB(resp.Profile)
	return resp.Principal, &p, nil
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := s.client.ListUsers(ctx, &pb.ListUsersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]models.User, 0, len(resp.Users))
	for _, u := range resp.Users {
		out = append(out, models.User{Principal: u.Principal, Profile: profileFromPB(u.Profile)})
	}
	return out, nil
}

// mapError turns gRPC status errors into sentinel errors. Codes that several
// sentinels share are told apart by the status message.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return common.ErrPermissionDenied
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return common.ErrAlreadyUploaded
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.FailedPrecondition:
		return bySentinelMessage(st, common.ErrNotUploaded, common.ErrPendingFile)
	case codes.NotFound:
		return bySentinelMessage(st, common.ErrAliasNotFound, common.ErrNotRequested)
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func bySentinelMessage(st *status.Status, candidates ...error) error {
	for _, c := range candidates {
		if st.Message() == c.Error() {
			return c
		}
	}
	return fmt.Errorf("rpc error: %w", st.Err())
}

func profileFromPB(p *pb.UserProfile) models.Profile {
	return models.Profile{FirstName: p.GetFirstName(), LastName: p.GetLastName(), PublicKey: p.GetPublicKey()}
}

func summariesFromPB(in []*pb.FileSummary) []models.FileSummary {
	out := make([]models.FileSummary, 0, len(in))
	for _, f := range in {
		sum := models.FileSummary{
			FileID:   f.GetFileId(),
			FileName: f.GetFileName(),
			Pending:  f.GetStatus().GetPending(),
			Alias:    f.GetStatus().GetAlias(),
		}
		if sum.Pending {
			sum.RequestedAt = models.FromNanos(f.GetStatus().GetRequestedAt())
		} else {
			sum.UploadedAt = models.FromNanos(f.GetStatus().GetUploadedAt())
		}
		for _, p := range f.SharedWith {
			sum.SharedWith = append(sum.SharedWith, profileFromPB(p))
		}
		out = append(out, sum)
	}
	return out
}
