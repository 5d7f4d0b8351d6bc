package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdrop/internal/client/client"
	"github.com/dmitrijs2005/gophdrop/internal/client/config"
	"github.com/dmitrijs2005/gophdrop/internal/client/models"
	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/stretchr/testify/require"
)

type uploadCall struct {
	fileID   uint64
	fileType string
	contents []byte
	key      []byte
}

type fakeClient struct {
	closed int

	requested []string
	uploads   []uploadCall
	atomic    []string
	shares    []string
	shareKey  []byte
	profile   *models.Profile

	aliasInfo *models.AliasInfo
	download  *models.Download
	files     []models.FileSummary
	whoProf   *models.Profile
	users     []models.User
	err       error
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error                  { f.closed++; return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return f.err }
func (f *fakeClient) RequestFile(ctx context.Context, name string) (*models.Request, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requested = append(f.requested, name)
	return &models.Request{FileID: 1, Alias: "alias-1"}, nil
}
func (f *fakeClient) ResolveAlias(ctx context.Context, alias string) (*models.AliasInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.aliasInfo, nil
}
func (f *fakeClient) UploadFile(ctx context.Context, id uint64, ft string, contents, key []byte) (string, error) {
	f.uploads = append(f.uploads, uploadCall{id, ft, contents, key})
	return "alias-1", nil
}
func (f *fakeClient) UploadFileAtomic(ctx context.Context, name, ft string, contents, key []byte) (uint64, error) {
	f.atomic = append(f.atomic, name)
	return 5, nil
}
func (f *fakeClient) Download(ctx context.Context, id uint64) (*models.Download, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.download, nil
}
func (f *fakeClient) Share(ctx context.Context, id uint64, grantee string, key []byte) error {
	f.shares = append(f.shares, grantee)
	f.shareKey = key
	return f.err
}
func (f *fakeClient) ListRequests(ctx context.Context) ([]models.FileSummary, error) {
	return f.files, f.err
}
func (f *fakeClient) ListShared(ctx context.Context) ([]models.FileSummary, error) {
	return f.files, f.err
}
func (f *fakeClient) SetProfile(ctx context.Context, p models.Profile) error {
	f.profile = &p
	return f.err
}
func (f *fakeClient) WhoAmI(ctx context.Context) (string, *models.Profile, error) {
	return "alice", f.whoProf, f.err
}
func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.users, f.err
}

type harness struct {
	app    *App
	fc     *fakeClient
	out    *bytes.Buffer
	tokens []string
}

func newHarness(t *testing.T, token, input string) *harness {
	t.Helper()
	h := &harness{fc: &fakeClient{}, out: &bytes.Buffer{}}
	cfg := &config.Config{AccessToken: token, RequestTimeout: time.Second}
	dial := func(tok string) (client.Client, error) {
		h.tokens = append(h.tokens, tok)
		return h.fc, nil
	}
	h.app = newApp(cfg, dial, strings.NewReader(input), h.out)
	return h
}

func stubToken(t *testing.T, tok string) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(tok), nil }
	t.Cleanup(func() { readPassword = old })
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestRequest_PromptsForToken(t *testing.T) {
	stubToken(t, "prompted")
	h := newHarness(t, "", "")

	require.NoError(t, h.app.Run(context.Background(), []string{"request", "taxes.pdf"}))

	require.Equal(t, []string{"taxes.pdf"}, h.fc.requested)
	require.Equal(t, []string{"prompted"}, h.tokens)
	require.Contains(t, h.out.String(), "alias-1")
	require.Equal(t, 1, h.fc.closed)
}

func TestResolve_NoTokenNeeded(t *testing.T) {
	stubToken(t, "should-not-be-used")
	h := newHarness(t, "", "")
	h.fc.aliasInfo = &models.AliasInfo{
		FileID: 3, FileName: "taxes.pdf", Requester: "alice",
		Profile: models.Profile{FirstName: "Alice", LastName: "Smith"},
	}

	require.NoError(t, h.app.Exec(context.Background(), []string{"resolve", "abc"}))

	require.Equal(t, []string{""}, h.tokens)
	require.Contains(t, h.out.String(), "taxes.pdf")
	require.Contains(t, h.out.String(), "alice (Alice Smith)")
	require.Contains(t, h.out.String(), "waiting for upload")
}

func TestResolve_Errors(t *testing.T) {
	h := newHarness(t, "tok", "")
	h.fc.err = common.ErrAliasNotFound

	err := h.app.Exec(context.Background(), []string{"resolve", "zzz"})
	require.ErrorIs(t, err, common.ErrAliasNotFound)

	err = h.app.Exec(context.Background(), []string{"resolve"})
	require.ErrorIs(t, err, ErrUsage)
	require.Contains(t, err.Error(), "resolve <alias>")
}

func TestUpload_Confirmed(t *testing.T) {
	in := writeFile(t, "c.bin", []byte("cipher"))
	key := writeFile(t, "k.bin", []byte("key"))

	h := newHarness(t, "", "y\n")
	h.fc.aliasInfo = &models.AliasInfo{FileID: 7, FileName: "taxes.pdf", Requester: "alice"}

	err := h.app.Exec(context.Background(), []string{"upload", "-type", "pdf", "-in", in, "-owner-key", key, "abc"})
	require.NoError(t, err)

	require.Equal(t, []uploadCall{{7, "pdf", []byte("cipher"), []byte("key")}}, h.fc.uploads)
	require.Contains(t, h.out.String(), "uploaded 6 bytes")
}

func TestUpload_Declined(t *testing.T) {
	in := writeFile(t, "c.bin", []byte("cipher"))
	h := newHarness(t, "", "n\n")
	h.fc.aliasInfo = &models.AliasInfo{FileID: 7}

	require.NoError(t, h.app.Exec(context.Background(), []string{"upload", "-in", in, "abc"}))
	require.Empty(t, h.fc.uploads)
	require.Contains(t, h.out.String(), "cancelled")
}

func TestUpload_SkipConfirmation(t *testing.T) {
	in := writeFile(t, "c.bin", []byte("x"))
	h := newHarness(t, "", "")
	h.fc.aliasInfo = &models.AliasInfo{FileID: 2}

	require.NoError(t, h.app.Exec(context.Background(), []string{"upload", "-y", "-in", in, "abc"}))
	require.Len(t, h.fc.uploads, 1)
	require.Nil(t, h.fc.uploads[0].key)
}

func TestUpload_Usage(t *testing.T) {
	h := newHarness(t, "", "")

	require.ErrorIs(t, h.app.Exec(context.Background(), []string{"upload", "abc"}), ErrUsage)
	require.ErrorIs(t, h.app.Exec(context.Background(), []string{"upload", "-in", "x"}), ErrUsage)
	require.ErrorIs(t, h.app.Exec(context.Background(), []string{"upload", "-bogus"}), ErrUsage)
	require.Empty(t, h.fc.uploads)
}

func TestUploadAtomic(t *testing.T) {
	in := writeFile(t, "c.bin", []byte("x"))
	h := newHarness(t, "tok", "")

	require.NoError(t, h.app.Exec(context.Background(), []string{"upload-atomic", "-in", in, "notes.txt"}))
	require.Equal(t, []string{"notes.txt"}, h.fc.atomic)
	require.Contains(t, h.out.String(), "file id: 5")
	require.Equal(t, []string{"tok"}, h.tokens)
}

func TestDownload_ExplicitPaths(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t, "tok", "")
	h.fc.download = &models.Download{Contents: []byte("cipher"), FileType: "pdf", Key: []byte("key")}

	out := filepath.Join(dir, "sub", "taxes.bin")
	require.NoError(t, h.app.Exec(context.Background(), []string{"download", "-out", out, "4"}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, []byte("cipher"), got)

	got, err = os.ReadFile(out + ".key")
	require.NoError(t, err)
	require.Equal(t, []byte("key"), got)
	require.Contains(t, h.out.String(), "type: pdf")
}

func TestDownload_DefaultDir(t *testing.T) {
	tmp := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })

	h := newHarness(t, "tok", "")
	h.fc.download = &models.Download{Contents: []byte("c"), Key: []byte("k")}

	require.NoError(t, h.app.Exec(context.Background(), []string{"download", "9"}))

	_, err = os.Stat(filepath.Join(tmp, "downloads", "9"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(tmp, "downloads", "9.key"))
	require.NoError(t, err)
}

func TestDownload_Errors(t *testing.T) {
	h := newHarness(t, "tok", "")

	require.ErrorIs(t, h.app.Exec(context.Background(), []string{"download", "abc"}), ErrUsage)

	h.fc.err = common.ErrPermissionDenied
	require.ErrorIs(t, h.app.Exec(context.Background(), []string{"download", "1"}), common.ErrPermissionDenied)
}

func TestShare(t *testing.T) {
	key := writeFile(t, "wk.bin", []byte("wrapped"))
	h := newHarness(t, "tok", "")

	require.NoError(t, h.app.Exec(context.Background(), []string{"share", "-wrapped-key", key, "3", "bob"}))
	require.Equal(t, []string{"bob"}, h.fc.shares)
	require.Equal(t, []byte("wrapped"), h.fc.shareKey)

	require.ErrorIs(t, h.app.Exec(context.Background(), []string{"share", "3"}), ErrUsage)
}

func TestListings(t *testing.T) {
	h := newHarness(t, "tok", "")
	h.fc.files = []models.FileSummary{
		{FileID: 1, FileName: "a.pdf", Pending: true, Alias: "xyz", RequestedAt: time.Unix(0, 0).UTC()},
		{FileID: 2, FileName: "b.pdf", UploadedAt: time.Unix(0, 0).UTC(),
			SharedWith: []models.Profile{{FirstName: "Bob"}, {}}},
	}

	require.NoError(t, h.app.Exec(context.Background(), []string{"requests"}))
	out := h.out.String()
	require.Contains(t, out, "1\ta.pdf\tpending alias=xyz")
	require.Contains(t, out, "2\tb.pdf\tuploaded 1970-01-01T00:00:00Z")
	require.Contains(t, out, "shared with (Bob)")
	require.Contains(t, out, "shared with (unnamed)")

	h.out.Reset()
	h.fc.files = nil
	require.NoError(t, h.app.Exec(context.Background(), []string{"shared"}))
	require.Equal(t, "no files\n", h.out.String())
}

func TestProfiles(t *testing.T) {
	pub := writeFile(t, "pub", []byte{1, 2})
	h := newHarness(t, "tok", "")

	require.NoError(t, h.app.Exec(context.Background(), []string{"whoami"}))
	require.Equal(t, "alice (no profile)\n", h.out.String())

	require.NoError(t, h.app.Exec(context.Background(), []string{"set-profile", "-first", "Alice", "-public-key", pub}))
	require.Equal(t, &models.Profile{FirstName: "Alice", PublicKey: []byte{1, 2}}, h.fc.profile)

	h.out.Reset()
	h.fc.whoProf = &models.Profile{FirstName: "Alice"}
	require.NoError(t, h.app.Exec(context.Background(), []string{"whoami"}))
	require.Equal(t, "alice (Alice)\n", h.out.String())

	h.out.Reset()
	h.fc.users = []models.User{{Principal: "bob", Profile: models.Profile{LastName: "Jones"}}}
	require.NoError(t, h.app.Exec(context.Background(), []string{"users"}))
	require.Equal(t, "bob (Jones)\n", h.out.String())
}

func TestExec_HelpAndUnknown(t *testing.T) {
	h := newHarness(t, "tok", "")

	require.NoError(t, h.app.Exec(context.Background(), []string{"help"}))
	require.Contains(t, h.out.String(), "upload-atomic")
	require.Contains(t, h.out.String(), "set-profile")

	require.ErrorContains(t, h.app.Exec(context.Background(), []string{"frobnicate"}), "unknown command")
	require.NoError(t, h.app.Exec(context.Background(), nil))
}

func TestRun_InteractiveSharesReader(t *testing.T) {
	in := writeFile(t, "c.bin", []byte("x"))
	h := newHarness(t, "tok", "upload -in "+in+" abc\ny\nping\nexit\n")
	h.fc.aliasInfo = &models.AliasInfo{FileID: 8}

	require.NoError(t, h.app.Run(context.Background(), nil))

	require.Len(t, h.fc.uploads, 1)
	require.Contains(t, h.out.String(), "OK")
	require.Equal(t, []string{"tok"}, h.tokens)
	require.Equal(t, 1, h.fc.closed)
}
