package projects

import (
	"encoding/json"
	"time"

	"github.com/gitfleet/gitfleet/internal/git"
)

type commitModel struct {
	ID           string    `json:"id"`
	ShortMessage string    `json:"short_message"`
	AuthorName   string    `json:"author_name"`
	AuthorEmail  string    `json:"author_email"`
	CommitTime   time.Time `json:"commit_time"`
}

type statusModel struct {
	Untracked   []string `json:"untracked"`
	Modified    []string `json:"modified"`
	Missing     []string `json:"missing"`
	Conflicting []string `json:"conflicting"`
}

// snapshotModel is the cached derived state of a project, keyed by name.
type snapshotModel struct {
	Name          string       `json:"name"`
	RemoteURL     string       `json:"remote_url"`
	CurrentBranch string       `json:"current_branch"`
	LastCommit    *commitModel `json:"last_commit"`
	Branches      []string     `json:"branches"`
	Tags          []string     `json:"tags"`
	Status        statusModel  `json:"status"`
	RefreshedAt   *time.Time   `json:"refreshed_at"`
}

func (m *snapshotModel) StorageID() string {
	return m.Name
}

func (m *snapshotModel) StorageIndexes() []string {
	return nil
}

func (m *snapshotModel) MarshalStorage() ([]byte, error) {
	return json.Marshal(m)
}

func (m *snapshotModel) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, m)
}

func newSnapshotModel(p Project) *snapshotModel {
	model := &snapshotModel{
		Name:          p.Name,
		RemoteURL:     p.RemoteURL,
		CurrentBranch: p.CurrentBranch,
		LastCommit:    nil,
		Branches:      p.Branches,
		Tags:          p.Tags,
		Status: statusModel{
			Untracked:   p.Status.Untracked,
			Modified:    p.Status.Modified,
			Missing:     p.Status.Missing,
			Conflicting: p.Status.Conflicting,
		},
		RefreshedAt: p.RefreshedAt,
	}

	if p.LastCommit != nil {
		model.LastCommit = &commitModel{
			ID:           p.LastCommit.ID,
			ShortMessage: p.LastCommit.ShortMessage,
			AuthorName:   p.LastCommit.AuthorName,
			AuthorEmail:  p.LastCommit.AuthorEmail,
			CommitTime:   p.LastCommit.CommitTime,
		}
	}

	return model
}

// restore copies cached derived state onto p.
func (m *snapshotModel) restore(p *Project) {
	p.CurrentBranch = m.CurrentBranch
	p.Branches = m.Branches
	p.Tags = m.Tags
	p.Status = git.WorkingTreeStatus{
		Untracked:   m.Status.Untracked,
		Modified:    m.Status.Modified,
		Missing:     m.Status.Missing,
		Conflicting: m.Status.Conflicting,
	}
	p.RefreshedAt = m.RefreshedAt

	if m.LastCommit != nil {
		p.LastCommit = &git.Commit{
			ID:           m.LastCommit.ID,
			ShortMessage: m.LastCommit.ShortMessage,
			AuthorName:   m.LastCommit.AuthorName,
			AuthorEmail:  m.LastCommit.AuthorEmail,
			CommitTime:   m.LastCommit.CommitTime,
		}
	}
}
