// Package vault holds the file lifecycle state: the registry of requested
// and uploaded files, the alias index, ownership and shares, and the
// profiles principals publish.
//
// A State is not safe for concurrent use. Callers serialize access with a
// single lock around the whole State so that every operation runs to
// completion before the next one starts.
package vault

import (
	"fmt"

	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

// AliasSource produces candidate aliases. Implementations need not check
// for collisions; RequestFile does.
type AliasSource interface {
	Next() string
}

// Clock returns the current time as nanoseconds. It must never go
// backwards.
type Clock interface {
	Now() uint64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() uint64

func (f ClockFunc) Now() uint64 { return f() }

type fileSet map[models.FileID]struct{}

type State struct {
	fileCount  uint64
	users      map[models.Principal]models.UserProfile
	files      map[models.FileID]*models.File
	aliasIndex map[string]models.FileID
	owners     map[models.Principal]fileSet
	shares     map[models.Principal]fileSet

	aliases AliasSource
	clock   Clock

	changes []Change
}

func New(aliases AliasSource, clock Clock) *State {
	return &State{
		users:      make(map[models.Principal]models.UserProfile),
		files:      make(map[models.FileID]*models.File),
		aliasIndex: make(map[string]models.FileID),
		owners:     make(map[models.Principal]fileSet),
		shares:     make(map[models.Principal]fileSet),
		aliases:    aliases,
		clock:      clock,
	}
}

// FileCount is the id the next request will receive.
func (s *State) FileCount() uint64 {
	return s.fileCount
}

// mustFile returns an indexed file. A missing entry means the indexes and
// the registry disagree, which is a bug rather than a caller error.
func (s *State) mustFile(id models.FileID) *models.File {
	f, ok := s.files[id]
	if !ok {
		panic(fmt.Sprintf("vault: file %d is indexed but not registered", id))
	}
	return f
}

func (s *State) record(c Change) {
	s.changes = append(s.changes, c)
}

func addTo(m map[models.Principal]fileSet, p models.Principal, id models.FileID) {
	set, ok := m[p]
	if !ok {
		set = make(fileSet)
		m[p] = set
	}
	set[id] = struct{}{}
}

func removeFrom(m map[models.Principal]fileSet, p models.Principal, id models.FileID) {
	set, ok := m[p]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(m, p)
	}
}

func has(m map[models.Principal]fileSet, p models.Principal, id models.FileID) bool {
	_, ok := m[p][id]
	return ok
}
