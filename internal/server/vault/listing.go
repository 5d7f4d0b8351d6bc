package vault

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

// ListRequests summarizes the files caller requested, ordered by id.
func (s *State) ListRequests(caller models.Principal) []models.FileSummary {
	return s.summarize(s.owners[caller])
}

// ListShared summarizes the files shared with caller, ordered by id.
func (s *State) ListShared(caller models.Principal) []models.FileSummary {
	return s.summarize(s.shares[caller])
}

func (s *State) summarize(set fileSet) []models.FileSummary {
	ids := slices.Sorted(maps.Keys(set))
	out := make([]models.FileSummary, 0, len(ids))
	for _, id := range ids {
		f := s.mustFile(id)
		sum := models.FileSummary{FileID: id, FileName: f.Metadata.FileName}

		switch c := f.Content.(type) {
		case models.PendingContent:
			sum.Status = models.FileStatus{Pending: true, Alias: c.Alias, RequestedAt: f.Metadata.RequestedAt}
		case *models.UploadedContent:
			sum.Status = models.FileStatus{UploadedAt: *f.Metadata.UploadedAt}
			// grantees without a published profile are left out
			for _, p := range slices.Sorted(maps.Keys(c.SharedKeys)) {
				if u, ok := s.users[p]; ok {
					sum.SharedWith = append(sum.SharedWith, u.Clone())
				}
			}
		default:
			panic(fmt.Sprintf("vault: unknown content %T", c))
		}
		out = append(out, sum)
	}
	return out
}
