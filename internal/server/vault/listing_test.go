package vault

import (
	"testing"

	"github.com/dmitrijs2005/gophdrop/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRequests(t *testing.T) {
	s := newState()
	bobProfile := models.UserProfile{FirstName: "Bob"}
	s.SetProfile(bob, bobProfile)

	pending := s.RequestFile(alice, "pending.txt")
	s.RequestFile(bob, "not-mine.txt")
	uploaded := s.RequestFile(alice, "uploaded.txt")
	_, err := s.UploadFile(uploaded, "", []byte{1}, []byte{2})
	require.NoError(t, err)
	require.NoError(t, s.Share(alice, uploaded, bob, []byte{3}))
	// charlie has no profile and is not listed
	require.NoError(t, s.Share(alice, uploaded, charlie, []byte{4}))

	got := s.ListRequests(alice)
	assert.Equal(t, []models.FileSummary{
		{
			FileID:   pending,
			FileName: "pending.txt",
			Status:   models.FileStatus{Pending: true, Alias: "a-0", RequestedAt: fixedTime},
		},
		{
			FileID:     uploaded,
			FileName:   "uploaded.txt",
			Status:     models.FileStatus{UploadedAt: fixedTime},
			SharedWith: []models.UserProfile{bobProfile},
		},
	}, got)
}

func TestListShared(t *testing.T) {
	s := newState()
	first := s.RequestFile(alice, "one")
	second := s.RequestFile(charlie, "two")
	for _, id := range []models.FileID{second, first} {
		_, err := s.UploadFile(id, "", []byte{1}, []byte{2})
		require.NoError(t, err)
	}
	require.NoError(t, s.Share(charlie, second, bob, []byte{5}))
	require.NoError(t, s.Share(alice, first, bob, []byte{6}))

	got := s.ListShared(bob)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].FileID)
	assert.Equal(t, second, got[1].FileID)
	assert.False(t, got[0].Status.Pending)
}

func TestListings_EmptyForUnknownCaller(t *testing.T) {
	s := newState()
	s.RequestFile(alice, "one")

	assert.Empty(t, s.ListRequests(bob))
	assert.Empty(t, s.ListShared(bob))
}
