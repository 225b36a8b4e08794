package projects

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/gitfleet/gitfleet/internal/git"
	"go.uber.org/zap"
)

// Service is the project registry. It owns the configured project list and
// the last captured state of each project.
type Service struct {
	mu       sync.RWMutex
	projects []Project
	index    map[string]int

	gitSvc *git.Service
	cache  *Repository

	logger *zap.Logger
}

func NewService(config Config, gitSvc *git.Service, cache *Repository, logger *zap.Logger) (*Service, error) {
	projects, err := newProjects(config)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(projects))
	for i, p := range projects {
		index[p.Name] = i
	}

	return &Service{
		projects: projects,
		index:    index,

		gitSvc: gitSvc,
		cache:  cache,

		logger: logger,
	}, nil
}

// List returns all projects in registry order.
func (s *Service) List() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Project, len(s.projects))
	for i, p := range s.projects {
		result[i] = p.clone()
	}

	return result
}

// Get returns a project by name.
func (s *Service) Get(name string) (Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[name]
	if !ok {
		return Project{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return s.projects[i].clone(), nil
}

// Refresh clears the derived state of a project and captures it again from
// its working copy. A project without a working copy stays cleared.
func (s *Service) Refresh(ctx context.Context, name string) (Project, error) {
	logger := s.logger.With(zap.String("project", name))

	project, err := s.update(name, func(p *Project) {
		p.clear()
	})
	if err != nil {
		return Project{}, err
	}

	snapshot, err := s.gitSvc.Snapshot(ctx, project.Path)
	switch {
	case errors.Is(err, git.ErrNotFound):
		logger.Debug("no working copy")
	case err != nil:
		logger.Error("failed to refresh project", zap.Error(err))
		return project, fmt.Errorf("failed to refresh project %s: %w", name, err)
	default:
		now := time.Now()
		project, err = s.update(name, func(p *Project) {
			p.apply(snapshot, now)
		})
		if err != nil {
			return Project{}, err
		}
	}

	if saveErr := s.cache.Save(ctx, project); saveErr != nil {
		logger.Warn("failed to cache snapshot", zap.Error(saveErr))
	}

	logger.Debug("project refreshed", zap.String("branch", project.CurrentBranch))
	return project, nil
}

// AppendBranch adds branch to the project's branch list ahead of the next
// snapshot. Names already listed are ignored.
func (s *Service) AppendBranch(name, branch string) error {
	_, err := s.update(name, func(p *Project) {
		if !slices.Contains(p.Branches, branch) {
			p.Branches = append(p.Branches, branch)
		}
	})

	return err
}

// SetBranches replaces the project's branch list.
func (s *Service) SetBranches(name string, branches []string) error {
	_, err := s.update(name, func(p *Project) {
		p.Branches = slices.Clone(branches)
	})

	return err
}

// Restore loads cached snapshots for configured projects. Cached entries of
// projects that are no longer configured are ignored.
func (s *Service) Restore(ctx context.Context) error {
	cached, err := s.cache.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	restored := 0
	for i := range s.projects {
		model, ok := cached[s.projects[i].Name]
		if !ok || model.RemoteURL != s.projects[i].RemoteURL {
			continue
		}
		model.restore(&s.projects[i])
		restored++
	}

	s.logger.Info("restored cached snapshots", zap.Int("restored", restored), zap.Int("projects", len(s.projects)))
	return nil
}

func (s *Service) update(name string, fn func(*Project)) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[name]
	if !ok {
		return Project{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	fn(&s.projects[i])
	return s.projects[i].clone(), nil
}
