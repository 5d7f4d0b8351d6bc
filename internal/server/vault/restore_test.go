package vault

import (
	"testing"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedAt(v uint64) *uint64 { return &v }

func TestRestore_RebuildsState(t *testing.T) {
	snap := Snapshot{
		Users: []*models.UserRecord{
			{Principal: alice, FirstName: "Alice", LastName: "Doe", PublicKey: []byte{1, 2, 3}},
		},
		Files: []*models.FileRecord{
			{ID: 0, FileName: "pending", Requester: alice, RequestedAt: 10, Alias: "p"},
			{ID: 4, FileName: "done", Requester: alice, RequestedAt: 11, UploadedAt: uploadedAt(12), Alias: "d", FileType: "txt", OwnerKey: []byte{0xAA}},
		},
		Contents: map[models.FileID][]byte{4: {7, 7}},
		Shares: []*models.ShareRecord{
			{FileID: 4, Grantee: bob, WrappedKey: []byte{0xBB}},
		},
	}

	s, err := Restore(snap, &seqAliases{}, fixedClock)
	require.NoError(t, err)
	checkInvariants(t, s)

	assert.Equal(t, uint64(5), s.FileCount())

	info, err := s.ResolveAlias("p")
	require.NoError(t, err)
	assert.Equal(t, aliceProfile, info.User)

	_, err = s.Download(alice, 0)
	assert.ErrorIs(t, err, common.ErrNotUploaded)

	got, err := s.Download(bob, 4)
	require.NoError(t, err)
	assert.Equal(t, &models.FoundFile{Contents: []byte{7, 7}, FileType: "txt", Key: []byte{0xBB}}, got)

	assert.Equal(t, models.FileID(5), s.RequestFile(bob, "next"))
	assert.Len(t, s.TakeChanges(), 1, "restoring records no changes")
}

func TestRestore_RejectsBrokenSnapshots(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{
			name: "uploaded without contents",
			snap: Snapshot{Files: []*models.FileRecord{{ID: 1, Alias: "x", UploadedAt: uploadedAt(1)}}},
		},
		{
			name: "share of unknown file",
			snap: Snapshot{Shares: []*models.ShareRecord{{FileID: 3, Grantee: bob}}},
		},
		{
			name: "share of pending file",
			snap: Snapshot{
				Files:  []*models.FileRecord{{ID: 1, Alias: "x"}},
				Shares: []*models.ShareRecord{{FileID: 1, Grantee: bob}},
			},
		},
		{
			name: "duplicate alias",
			snap: Snapshot{Files: []*models.FileRecord{{ID: 1, Alias: "x"}, {ID: 2, Alias: "x"}}},
		},
		{
			name: "duplicate id",
			snap: Snapshot{Files: []*models.FileRecord{{ID: 1, Alias: "x"}, {ID: 1, Alias: "y"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.snap, &seqAliases{}, fixedClock)
			assert.Error(t, err)
		})
	}
}

func TestRestore_SkipsOwnerShareRows(t *testing.T) {
	snap := Snapshot{
		Files:    []*models.FileRecord{{ID: 0, Requester: alice, Alias: "x", UploadedAt: uploadedAt(1), OwnerKey: []byte{1}}},
		Contents: map[models.FileID][]byte{0: {9}},
		Shares:   []*models.ShareRecord{{FileID: 0, Grantee: alice, WrappedKey: []byte{2}}},
	}

	s, err := Restore(snap, &seqAliases{}, fixedClock)
	require.NoError(t, err)
	checkInvariants(t, s)
	assert.Empty(t, s.ListShared(alice))
}
