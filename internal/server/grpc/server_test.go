package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/logging"
	pb "github.com/dmitrijs2005/gophdrop/internal/proto"
	"github.com/dmitrijs2005/gophdrop/internal/server/auth"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
	"github.com/dmitrijs2005/gophdrop/internal/server/services"
	"github.com/dmitrijs2005/gophdrop/internal/server/vault"
)

const testSecret = "secret"

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type seqAliases struct{ n int }

func (s *seqAliases) Next() string {
	a := fmt.Sprintf("alias-%d", s.n)
	s.n++
	return a
}

func newFileService() *services.FileService {
	state := vault.New(&seqAliases{}, vault.ClockFunc(func() uint64 { return 77 }))
	return services.NewFileService(state, nil, nil, nil, nopLogger{})
}

func newTestServer() *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", nopLogger{}, newFileService(), testSecret)
}

// startBufconn serves s on an in-memory listener and returns a client.
func startBufconn(t *testing.T, s *GRPCServer) pb.DropServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})
	return pb.NewDropServiceClient(conn)
}

func as(t *testing.T, p models.Principal) context.Context {
	t.Helper()
	tok, err := auth.GenerateToken(p, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, tok)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := newTestServer()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger{}, newFileService(), testSecret)

	err := srv.Run(context.Background())
	require.Error(t, err)
}

func TestEndToEnd_TaxesScenario(t *testing.T) {
	client := startBufconn(t, newTestServer())

	_, err := client.SetProfile(as(t, "alice"), &pb.SetProfileRequest{Profile: &pb.UserProfile{FirstName: "Alice", LastName: "Smith"}})
	require.NoError(t, err)

	req, err := client.RequestFile(as(t, "alice"), &pb.RequestFileRequest{FileName: "taxes.pdf"})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), req.FileId)
	assert.Equal(t, "alias-0", req.Alias)

	// The uploader is anonymous: resolve and upload need no token.
	info, err := client.ResolveAlias(context.Background(), &pb.ResolveAliasRequest{Alias: req.Alias})
	require.NoError(t, err)
	assert.Equal(t, "taxes.pdf", info.Metadata.FileName)
	assert.Equal(t, "alice", info.Metadata.Requester)
	assert.Equal(t, "Alice", info.User.FirstName)
	assert.Nil(t, info.Metadata.UploadedAt)

	up, err := client.UploadFile(context.Background(), &pb.UploadFileRequest{
		FileId: req.FileId, FileType: "pdf", Contents: []byte{1, 2, 3}, OwnerKey: []byte{0xAA},
	})
	require.NoError(t, err)
	assert.Equal(t, req.Alias, up.Alias)

	got, err := client.DownloadFile(as(t, "alice"), &pb.DownloadFileRequest{FileId: 0})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got.Contents)
	assert.Equal(t, []byte{0xAA}, got.Key)
	assert.Equal(t, "pdf", got.FileType)

	_, err = client.DownloadFile(as(t, "bob"), &pb.DownloadFileRequest{FileId: 0})
	assertCode(t, err, "PermissionDenied")

	_, err = client.ShareFile(as(t, "alice"), &pb.ShareFileRequest{FileId: 0, Grantee: "bob", WrappedKey: []byte{0xBB}})
	require.NoError(t, err)

	got, err = client.DownloadFile(as(t, "bob"), &pb.DownloadFileRequest{FileId: 0})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got.Contents)
	assert.Equal(t, []byte{0xBB}, got.Key)

	shared, err := client.ListSharedFiles(as(t, "bob"), &pb.ListSharedFilesRequest{})
	require.NoError(t, err)
	require.Len(t, shared.Files, 1)
	assert.False(t, shared.Files[0].Status.Pending)
	assert.Equal(t, uint64(77), shared.Files[0].Status.UploadedAt)

	requests, err := client.ListRequests(as(t, "alice"), &pb.ListRequestsRequest{})
	require.NoError(t, err)
	require.Len(t, requests.Files, 1)
	assert.Equal(t, "taxes.pdf", requests.Files[0].FileName)
}

func TestEndToEnd_ErrorCodes(t *testing.T) {
	client := startBufconn(t, newTestServer())

	_, err := client.ResolveAlias(context.Background(), &pb.ResolveAliasRequest{Alias: "nope"})
	assertCode(t, err, "NotFound")

	_, err = client.UploadFile(context.Background(), &pb.UploadFileRequest{FileId: 9})
	assertCode(t, err, "NotFound")

	_, err = client.RequestFile(as(t, "alice"), &pb.RequestFileRequest{FileName: ""})
	assertCode(t, err, "InvalidArgument")

	req, err := client.RequestFile(as(t, "alice"), &pb.RequestFileRequest{FileName: "a"})
	require.NoError(t, err)

	_, err = client.DownloadFile(as(t, "alice"), &pb.DownloadFileRequest{FileId: req.FileId})
	assertCode(t, err, "FailedPrecondition")

	_, err = client.ShareFile(as(t, "alice"), &pb.ShareFileRequest{FileId: req.FileId, Grantee: "bob"})
	assertCode(t, err, "FailedPrecondition")

	_, err = client.UploadFile(context.Background(), &pb.UploadFileRequest{FileId: req.FileId, Contents: []byte{1}})
	require.NoError(t, err)
	_, err = client.UploadFile(context.Background(), &pb.UploadFileRequest{FileId: req.FileId, Contents: []byte{2}})
	assertCode(t, err, "AlreadyExists")

	_, err = client.ShareFile(as(t, "bob"), &pb.ShareFileRequest{FileId: req.FileId, Grantee: "carol"})
	assertCode(t, err, "PermissionDenied")

	_, err = client.ShareFile(as(t, "alice"), &pb.ShareFileRequest{FileId: req.FileId, Grantee: ""})
	assertCode(t, err, "InvalidArgument")

	_, err = client.ListUsers(as(t, "alice"), &pb.ListUsersRequest{})
	assertCode(t, err, "PermissionDenied")
}

func TestEndToEnd_AuthRequired(t *testing.T) {
	client := startBufconn(t, newTestServer())

	pong, err := client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.Status)

	_, err = client.RequestFile(context.Background(), &pb.RequestFileRequest{FileName: "x"})
	assertCode(t, err, "Unauthenticated")

	bad := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "garbage")
	_, err = client.WhoAmI(bad, &pb.WhoAmIRequest{})
	assertCode(t, err, "Unauthenticated")
}

func TestEndToEnd_Profiles(t *testing.T) {
	client := startBufconn(t, newTestServer())

	who, err := client.WhoAmI(as(t, "alice"), &pb.WhoAmIRequest{})
	require.NoError(t, err)
	assert.False(t, who.Known)
	assert.Equal(t, "alice", who.Principal)

	for _, p := range []models.Principal{"alice", "bob", "carol"} {
		_, err := client.SetProfile(as(t, p), &pb.SetProfileRequest{Profile: &pb.UserProfile{FirstName: string(p), PublicKey: []byte(p)}})
		require.NoError(t, err)
	}

	who, err = client.WhoAmI(as(t, "alice"), &pb.WhoAmIRequest{})
	require.NoError(t, err)
	assert.True(t, who.Known)
	assert.Equal(t, []byte("alice"), who.Profile.PublicKey)

	users, err := client.ListUsers(as(t, "alice"), &pb.ListUsersRequest{})
	require.NoError(t, err)
	require.Len(t, users.Users, 2)
	assert.Equal(t, "bob", users.Users[0].Principal)
	assert.Equal(t, "carol", users.Users[1].Principal)
}

func TestEndToEnd_UploadAtomic(t *testing.T) {
	client := startBufconn(t, newTestServer())

	res, err := client.UploadFileAtomic(as(t, "alice"), &pb.UploadFileAtomicRequest{
		FileName: "photo.jpg", FileType: "jpg", Contents: []byte("c"), OwnerKey: []byte("k"),
	})
	require.NoError(t, err)

	got, err := client.DownloadFile(as(t, "alice"), &pb.DownloadFileRequest{FileId: res.FileId})
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), got.Contents)
	assert.Equal(t, "jpg", got.FileType)

	_, err = client.UploadFileAtomic(as(t, "alice"), &pb.UploadFileAtomicRequest{FileName: ""})
	assertCode(t, err, "InvalidArgument")
}
