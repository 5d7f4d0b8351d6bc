package vault

import (
	"slices"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

// SetProfile creates or replaces the caller's profile.
func (s *State) SetProfile(caller models.Principal, p models.UserProfile) {
	prev, hadPrev := s.users[caller]
	p = p.Clone()
	s.users[caller] = p
	s.record(ProfileSet{Principal: caller, Profile: p, previous: prev, hadPrevious: hadPrev})
}

// Profile looks up a principal's profile.
func (s *State) Profile(p models.Principal) (models.UserProfile, bool) {
	u, ok := s.users[p]
	return u.Clone(), ok
}

// ListUsers returns every other registered user ordered by principal.
// Callers without a profile get ErrPermissionDenied.
func (s *State) ListUsers(caller models.Principal) ([]models.UserData, error) {
	if _, ok := s.users[caller]; !ok {
		return nil, common.ErrPermissionDenied
	}

	out := make([]models.UserData, 0, len(s.users)-1)
	for p, u := range s.users {
		if p == caller {
			continue
		}
		out = append(out, models.UserData{Profile: u.Clone(), Principal: p})
	}
	slices.SortFunc(out, func(a, b models.UserData) int {
		switch {
		case a.Principal < b.Principal:
			return -1
		case a.Principal > b.Principal:
			return 1
		}
		return 0
	})
	return out, nil
}
