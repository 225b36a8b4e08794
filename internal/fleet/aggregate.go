package fleet

import (
	"slices"

	"github.com/gitfleet/gitfleet/internal/projects"
	"github.com/samber/lo"
)

// Intersect returns the names present in every list, in the order of the
// first list. No lists yield an empty result.
func Intersect(lists [][]string) []string {
	if len(lists) == 0 {
		return []string{}
	}

	return lo.Filter(lo.Uniq(lists[0]), func(name string, _ int) bool {
		return lo.EveryBy(lists[1:], func(list []string) bool {
			return lo.Contains(list, name)
		})
	})
}

// BranchIntersection returns the branches present in every project that has
// a captured snapshot.
func BranchIntersection(list []projects.Project) []string {
	return Intersect(lo.Map(withSnapshot(list), func(p projects.Project, _ int) []string {
		return p.Branches
	}))
}

// TagIntersection returns the tags present in every project that has a
// captured snapshot.
func TagIntersection(list []projects.Project) []string {
	return Intersect(lo.Map(withSnapshot(list), func(p projects.Project, _ int) []string {
		return p.Tags
	}))
}

func withSnapshot(list []projects.Project) []projects.Project {
	return lo.Filter(list, func(p projects.Project, _ int) bool {
		return p.RefreshedAt != nil
	})
}

// Paginate slices all into the requested page. Pages past the end are empty.
func Paginate[T any](all []T, index, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if index < 0 {
		index = 0
	}
	if all == nil {
		all = []T{}
	}

	totalPages := len(all) / size
	if len(all)%size != 0 {
		totalPages++
	}

	data := all[:0:0]
	if index < totalPages {
		start := index * size
		data = all[start : start+min(size, len(all)-start)]
	}

	return Page[T]{
		Index:      index,
		Size:       size,
		Data:       data,
		AllData:    all,
		TotalData:  len(all),
		TotalPages: totalPages,
	}
}

// filterEntries keeps entries matching every non-empty filter.
func filterEntries(entries []CommitLogEntry, username, project string) []CommitLogEntry {
	return lo.Filter(entries, func(e CommitLogEntry, _ int) bool {
		return (username == "" || e.Username == username) &&
			(project == "" || e.ProjectName == project)
	})
}

// sortEntries orders entries newest first keeping the order of equal times.
func sortEntries(entries []CommitLogEntry) {
	slices.SortStableFunc(entries, func(a, b CommitLogEntry) int {
		return b.CommitTime.Compare(a.CommitTime)
	})
}

func distinctUsers(entries []CommitLogEntry) []string {
	users := lo.Uniq(lo.Map(entries, func(e CommitLogEntry, _ int) string {
		return e.Username
	}))
	slices.Sort(users)
	return users
}
