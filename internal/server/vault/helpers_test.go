package vault

import (
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophdrop/internal/server/aliases"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
	"github.com/stretchr/testify/require"
)

const fixedTime uint64 = 12345

var fixedClock = ClockFunc(func() uint64 { return fixedTime })

// seqAliases hands out the queued values first, then a-0, a-1, ...
type seqAliases struct {
	queue []string
	n     int
}

func (s *seqAliases) Next() string {
	if len(s.queue) > 0 {
		v := s.queue[0]
		s.queue = s.queue[1:]
		return v
	}
	v := fmt.Sprintf("a-%d", s.n)
	s.n++
	return v
}

func newState() *State {
	return New(&seqAliases{}, fixedClock)
}

func newGeneratorState() *State {
	return New(aliases.New(make([]byte, aliases.SeedSize)), fixedClock)
}

const (
	alice   models.Principal = "alice"
	bob     models.Principal = "bob"
	charlie models.Principal = "charlie"
)

var aliceProfile = models.UserProfile{FirstName: "Alice", LastName: "Doe", PublicKey: []byte{1, 2, 3}}

// checkInvariants asserts the cross-index invariants of a State.
func checkInvariants(t *testing.T, s *State) {
	t.Helper()

	for alias, id := range s.aliasIndex {
		_, ok := s.files[id]
		require.True(t, ok, "alias %q points at missing file %d", alias, id)
	}

	for id, f := range s.files {
		require.Less(t, uint64(id), s.fileCount)

		owners := 0
		for p, set := range s.owners {
			if _, ok := set[id]; ok {
				owners++
				require.Equal(t, f.Metadata.RequesterPrincipal, p)
			}
		}
		require.Equal(t, 1, owners, "file %d must have exactly one owner", id)

		grantees := map[models.Principal]bool{}
		for p, set := range s.shares {
			if _, ok := set[id]; ok {
				grantees[p] = true
			}
		}

		switch c := f.Content.(type) {
		case models.PendingContent:
			require.Nil(t, f.Metadata.UploadedAt)
			require.Empty(t, grantees)
			require.Equal(t, id, s.aliasIndex[c.Alias])
		case *models.UploadedContent:
			require.NotNil(t, f.Metadata.UploadedAt)
			require.Len(t, c.SharedKeys, len(grantees))
			for p := range c.SharedKeys {
				require.True(t, grantees[p], "shared key for %q without share entry", p)
			}
		default:
			t.Fatalf("unknown content %T", c)
		}
	}
}
