package projects

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gitfleet/gitfleet/internal/git"
)

// Project is one managed repository with its last captured state.
type Project struct {
	Name      string
	RemoteURL string
	Path      string

	// Derived state, empty until a snapshot has been taken.
	CurrentBranch string
	LastCommit    *git.Commit
	Branches      []string
	Tags          []string
	Status        git.WorkingTreeStatus
	RefreshedAt   *time.Time
}

// clear resets every derived field.
func (p *Project) clear() {
	p.CurrentBranch = ""
	p.LastCommit = nil
	p.Branches = []string{}
	p.Tags = []string{}
	p.Status = git.WorkingTreeStatus{}
	p.RefreshedAt = nil
}

func (p *Project) apply(snapshot *git.Snapshot, at time.Time) {
	p.CurrentBranch = snapshot.CurrentBranch
	p.LastCommit = snapshot.LastCommit
	p.Branches = snapshot.Branches
	p.Tags = snapshot.Tags
	p.Status = snapshot.Status
	p.RefreshedAt = &at
}

func (p Project) clone() Project {
	p.Branches = slices.Clone(p.Branches)
	p.Tags = slices.Clone(p.Tags)
	p.Status = git.WorkingTreeStatus{
		Untracked:   slices.Clone(p.Status.Untracked),
		Modified:    slices.Clone(p.Status.Modified),
		Missing:     slices.Clone(p.Status.Missing),
		Conflicting: slices.Clone(p.Status.Conflicting),
	}
	if p.LastCommit != nil {
		c := *p.LastCommit
		p.LastCommit = &c
	}
	return p
}

// NameFromURL derives the project name from the final path segment of a
// remote URL with a trailing ".git" removed. Both URL and scp-like
// ("git@host:group/repo.git") forms are accepted.
func NameFromURL(remoteURL string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(remoteURL), "/")

	name := trimmed
	if idx := strings.LastIndexAny(trimmed, "/:"); idx >= 0 {
		name = trimmed[idx+1:]
	}
	name = strings.TrimSuffix(name, ".git")

	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidRemoteURL, remoteURL)
	}

	return name, nil
}

// newProjects derives the project list in lexicographic remote URL order.
func newProjects(config Config) ([]Project, error) {
	urls := slices.Clone(config.RemoteURLs)
	slices.Sort(urls)
	urls = slices.Compact(urls)

	seen := make(map[string]string, len(urls))
	projects := make([]Project, 0, len(urls))
	for _, u := range urls {
		name, err := NameFromURL(u)
		if err != nil {
			return nil, err
		}
		if other, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q is derived from both %s and %s", ErrDuplicateName, name, other, u)
		}
		seen[name] = u

		p := Project{
			Name:      name,
			RemoteURL: u,
			Path:      filepath.Join(config.WorkHome, name),
		}
		p.clear()
		projects = append(projects, p)
	}

	return projects, nil
}
