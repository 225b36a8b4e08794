package projects

import (
	"time"

	"github.com/gitfleet/gitfleet/internal/git"
	"github.com/gitfleet/gitfleet/internal/projects"
)

type CommitResponse struct {
	ID           string    `json:"id"`
	ShortMessage string    `json:"short_message"`
	AuthorName   string    `json:"author_name"`
	AuthorEmail  string    `json:"author_email"`
	CommitTime   time.Time `json:"commit_time"`
}

type StatusResponse struct {
	Clean       bool     `json:"clean"`
	Untracked   []string `json:"untracked"`
	Modified    []string `json:"modified"`
	Missing     []string `json:"missing"`
	Conflicting []string `json:"conflicting"`
}

// ProjectResponse represents the response payload for a project.
type ProjectResponse struct {
	Name          string          `json:"name"`
	RemoteURL     string          `json:"remote_url"`
	Path          string          `json:"path"`
	CurrentBranch string          `json:"current_branch,omitempty"`
	LastCommit    *CommitResponse `json:"last_commit,omitempty"`
	Branches      []string        `json:"branches"`
	Tags          []string        `json:"tags"`
	Status        StatusResponse  `json:"status"`
	RefreshedAt   *time.Time      `json:"refreshed_at,omitempty"`
}

// ListResponse represents the registry with the fleet-wide intersections.
type ListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Branches []string          `json:"branches"` // Branches present in every refreshed project
	Tags     []string          `json:"tags"`     // Tags present in every refreshed project
}

func newCommitResponse(commit *git.Commit) *CommitResponse {
	if commit == nil {
		return nil
	}

	return &CommitResponse{
		ID:           commit.ID,
		ShortMessage: commit.ShortMessage,
		AuthorName:   commit.AuthorName,
		AuthorEmail:  commit.AuthorEmail,
		CommitTime:   commit.CommitTime,
	}
}

func newProjectResponse(project projects.Project) ProjectResponse {
	return ProjectResponse{
		Name:          project.Name,
		RemoteURL:     project.RemoteURL,
		Path:          project.Path,
		CurrentBranch: project.CurrentBranch,
		LastCommit:    newCommitResponse(project.LastCommit),
		Branches:      nonNil(project.Branches),
		Tags:          nonNil(project.Tags),
		Status: StatusResponse{
			Clean:       project.Status.IsClean(),
			Untracked:   nonNil(project.Status.Untracked),
			Modified:    nonNil(project.Status.Modified),
			Missing:     nonNil(project.Status.Missing),
			Conflicting: nonNil(project.Status.Conflicting),
		},
		RefreshedAt: project.RefreshedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
