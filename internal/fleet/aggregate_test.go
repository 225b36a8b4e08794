package fleet

import (
	"math"
	"testing"
	"time"

	"github.com/gitfleet/gitfleet/internal/projects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]string
		want  []string
	}{
		{name: "no projects", lists: nil, want: []string{}},
		{name: "single project", lists: [][]string{{"master", "develop", "feature"}}, want: []string{"master", "develop", "feature"}},
		{name: "overlap", lists: [][]string{{"a", "b", "c"}, {"b", "c", "d"}}, want: []string{"b", "c"}},
		{name: "disjoint", lists: [][]string{{"a"}, {"b"}}, want: []string{}},
		{name: "empty member", lists: [][]string{{"a", "b"}, {}}, want: []string{}},
		{name: "three way", lists: [][]string{{"master", "x", "y"}, {"y", "master"}, {"master", "y", "z"}}, want: []string{"master", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersect(tt.lists))
		})
	}
}

func TestIntersect_Commutative(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"c", "d", "b"}

	assert.ElementsMatch(t, Intersect([][]string{a, b}), Intersect([][]string{b, a}))
}

func TestBranchIntersection_SkipsProjectsWithoutSnapshot(t *testing.T) {
	now := time.Now()
	list := []projects.Project{
		{Name: "a", Branches: []string{"master", "develop"}, Tags: []string{"v1"}, RefreshedAt: &now},
		{Name: "b", Branches: []string{}, Tags: []string{}},
		{Name: "c", Branches: []string{"develop", "master", "x"}, Tags: []string{"v1", "v2"}, RefreshedAt: &now},
	}

	assert.Equal(t, []string{"master", "develop"}, BranchIntersection(list))
	assert.Equal(t, []string{"v1"}, TagIntersection(list))
	assert.Equal(t, []string{}, BranchIntersection(nil))
}

func TestPaginate(t *testing.T) {
	all := make([]int, 25)
	for i := range all {
		all[i] = i
	}

	first := Paginate(all, 0, 10)
	assert.Len(t, first.Data, 10)
	assert.Equal(t, 25, first.TotalData)
	assert.Equal(t, 3, first.TotalPages)
	assert.Len(t, first.AllData, 25)

	last := Paginate(all, 2, 10)
	assert.Equal(t, []int{20, 21, 22, 23, 24}, last.Data)

	beyond := Paginate(all, 7, 10)
	assert.Empty(t, beyond.Data)
	assert.NotNil(t, beyond.Data)
	assert.Equal(t, 3, beyond.TotalPages)

	huge := Paginate(all, math.MaxInt/5, 10)
	assert.Empty(t, huge.Data)
	assert.Equal(t, 3, huge.TotalPages)

	oversized := Paginate(all, 0, math.MaxInt)
	assert.Len(t, oversized.Data, 25)
	assert.Equal(t, 1, oversized.TotalPages)

	defaults := Paginate[int](nil, -1, 0)
	assert.Equal(t, 0, defaults.Index)
	assert.Equal(t, DefaultPageSize, defaults.Size)
	assert.Equal(t, 0, defaults.TotalPages)
	assert.Empty(t, defaults.Data)
}

func TestFilterAndSortEntries(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entries := []CommitLogEntry{
		{ProjectName: "api", Username: "alice", CommitID: "1", CommitTime: base},
		{ProjectName: "web", Username: "bob", CommitID: "2", CommitTime: base.Add(2 * time.Hour)},
		{ProjectName: "api", Username: "bob", CommitID: "3", CommitTime: base.Add(time.Hour)},
		{ProjectName: "web", Username: "alice", CommitID: "4", CommitTime: base.Add(time.Hour)},
	}

	all := filterEntries(entries, "", "")
	sortEntries(all)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"2", "3", "4", "1"}, commitIDs(all))

	both := filterEntries(entries, "bob", "api")
	assert.Equal(t, []string{"3"}, commitIDs(both))

	byUser := filterEntries(entries, "alice", "")
	assert.Equal(t, []string{"1", "4"}, commitIDs(byUser))

	byProject := filterEntries(entries, "", "web")
	assert.Equal(t, []string{"2", "4"}, commitIDs(byProject))

	assert.Equal(t, []string{"alice", "bob"}, distinctUsers(entries))
}

func commitIDs(entries []CommitLogEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.CommitID
	}
	return ids
}
