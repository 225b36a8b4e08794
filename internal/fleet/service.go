package fleet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gitfleet/gitfleet/internal/git"
	"github.com/gitfleet/gitfleet/internal/manifest"
	"github.com/gitfleet/gitfleet/internal/operations"
	"github.com/gitfleet/gitfleet/internal/projects"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// projectFunc runs one operation on one project and returns a short,
// operation specific detail for the report.
type projectFunc func(ctx context.Context, project projects.Project) (string, error)

// Service applies operations to every project of the fleet in registry
// order. A failing project never stops the others.
type Service struct {
	config Config

	gitSvc        *git.Service
	credentials   *git.Credentials
	projectsSvc   *projects.Service
	operationsSvc *operations.Service
	manifestSvc   *manifest.Service

	locks   *pathLocks
	metrics *metrics
	logger  *zap.Logger
}

func NewService(
	config Config,
	gitSvc *git.Service,
	credentials *git.Credentials,
	projectsSvc *projects.Service,
	operationsSvc *operations.Service,
	manifestSvc *manifest.Service,
	registerer prometheus.Registerer,
	logger *zap.Logger,
) *Service {
	return &Service{
		config: config,

		gitSvc:        gitSvc,
		credentials:   credentials,
		projectsSvc:   projectsSvc,
		operationsSvc: operationsSvc,
		manifestSvc:   manifestSvc,

		locks:   newPathLocks(),
		metrics: newMetrics(registerer),
		logger:  logger,
	}
}

// Sync clones missing working copies and pulls existing ones, then rewrites
// the aggregate manifest when enabled.
func (s *Service) Sync(ctx context.Context) (*Report, error) {
	report, err := s.run(ctx, operations.KindSync, nil, func(ctx context.Context, p projects.Project) (string, error) {
		branches, err := s.gitSvc.CloneOrPull(ctx, p.RemoteURL, p.Path)
		if err != nil {
			return "", err
		}
		if setErr := s.projectsSvc.SetBranches(p.Name, branches); setErr != nil {
			return "", setErr
		}
		return strconv.Itoa(len(branches)) + " branches", nil
	})
	if err != nil {
		return nil, err
	}

	names := lo.Map(s.projectsSvc.List(), func(p projects.Project, _ int) string { return p.Name })
	if mfErr := s.manifestSvc.Write(names); mfErr != nil {
		s.logger.Error("failed to write manifest", zap.Error(mfErr))
	}

	return report, nil
}

// Refresh captures the state of every project again.
func (s *Service) Refresh(ctx context.Context) (*Report, error) {
	return s.run(ctx, operations.KindRefresh, nil, func(ctx context.Context, p projects.Project) (string, error) {
		refreshed, err := s.projectsSvc.Refresh(ctx, p.Name)
		if err != nil {
			return "", err
		}
		return refreshed.CurrentBranch, nil
	})
}

// CreateBranch creates and checks out branch at HEAD of every project.
func (s *Service) CreateBranch(ctx context.Context, branch string) (*Report, error) {
	if branch == "" {
		return nil, fmt.Errorf("%w: branch name is required", ErrInvalidArgument)
	}

	return s.run(ctx, operations.KindCreateBranch, map[string]string{"branch": branch},
		func(ctx context.Context, p projects.Project) (string, error) {
			if err := s.gitSvc.CreateBranch(ctx, p.Path, branch); err != nil {
				return "", err
			}
			return branch, s.projectsSvc.AppendBranch(p.Name, branch)
		})
}

// SwitchBranch checks out branch in every project.
func (s *Service) SwitchBranch(ctx context.Context, branch string) (*Report, error) {
	if branch == "" {
		return nil, fmt.Errorf("%w: branch name is required", ErrInvalidArgument)
	}

	return s.run(ctx, operations.KindSwitchBranch, map[string]string{"branch": branch},
		func(ctx context.Context, p projects.Project) (string, error) {
			return branch, s.gitSvc.SwitchBranch(ctx, p.Path, branch)
		})
}

// DeleteBranch deletes the current branch of every project.
func (s *Service) DeleteBranch(ctx context.Context) (*Report, error) {
	return s.run(ctx, operations.KindDeleteBranch, nil, func(ctx context.Context, p projects.Project) (string, error) {
		return s.gitSvc.DeleteCurrentBranch(ctx, p.Path)
	})
}

// CreateTag tags HEAD of every project and pushes the tags.
func (s *Service) CreateTag(ctx context.Context, tag, message string) (*Report, error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrInvalidArgument)
	}

	return s.run(ctx, operations.KindCreateTag, map[string]string{"tag": tag, "message": message},
		func(ctx context.Context, p projects.Project) (string, error) {
			return tag, s.gitSvc.CreateTag(ctx, p.Path, tag, message)
		})
}

// DeleteTag deletes tag locally and on origin in every project.
func (s *Service) DeleteTag(ctx context.Context, tag string) (*Report, error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrInvalidArgument)
	}

	return s.run(ctx, operations.KindDeleteTag, map[string]string{"tag": tag},
		func(ctx context.Context, p projects.Project) (string, error) {
			return tag, s.gitSvc.DeleteTag(ctx, p.Path, tag)
		})
}

// CreateBranchFromTag creates and checks out branch at tag in every project.
func (s *Service) CreateBranchFromTag(ctx context.Context, tag, branch string) (*Report, error) {
	if tag == "" || branch == "" {
		return nil, fmt.Errorf("%w: tag and branch names are required", ErrInvalidArgument)
	}

	return s.run(ctx, operations.KindCreateBranchFromTag, map[string]string{"tag": tag, "branch": branch},
		func(ctx context.Context, p projects.Project) (string, error) {
			if err := s.gitSvc.CreateBranchFromTag(ctx, p.Path, tag, branch); err != nil {
				return "", err
			}
			return branch, s.projectsSvc.AppendBranch(p.Name, branch)
		})
}

// Merge merges source into target in every project with a merge commit and
// pushes the result.
func (s *Service) Merge(ctx context.Context, target, source, message string) (*Report, error) {
	if target == "" || source == "" {
		return nil, fmt.Errorf("%w: target and source branches are required", ErrInvalidArgument)
	}

	params := map[string]string{"target": target, "source": source, "message": message}
	return s.run(ctx, operations.KindMerge, params, func(ctx context.Context, p projects.Project) (string, error) {
		result, err := s.gitSvc.Merge(ctx, p.Path, target, source, message)
		if err != nil {
			return "", err
		}
		if result.UpToDate {
			return "already up to date", nil
		}
		return result.Commit, nil
	})
}

// Push commits pending changes with message where there are any and pushes
// all branches of every project.
func (s *Service) Push(ctx context.Context, message string) (*Report, error) {
	return s.run(ctx, operations.KindPush, map[string]string{"message": message},
		func(ctx context.Context, p projects.Project) (string, error) {
			committed, err := s.gitSvc.Push(ctx, p.Path, message)
			if err != nil {
				return "", err
			}
			if committed {
				return "committed", nil
			}
			return "no changes", nil
		})
}

// Projects returns the registry in order.
func (s *Service) Projects() []projects.Project {
	return s.projectsSvc.List()
}

// Project returns one project by name.
func (s *Service) Project(name string) (projects.Project, error) {
	return s.projectsSvc.Get(name)
}

// BranchIntersection returns the branches every project has.
func (s *Service) BranchIntersection() []string {
	return BranchIntersection(s.projectsSvc.List())
}

// TagIntersection returns the tags every project has.
func (s *Service) TagIntersection() []string {
	return TagIntersection(s.projectsSvc.List())
}

// CommitLog collects the history of every project, filters it, orders it
// newest first and returns the requested page. Projects without a usable
// history are skipped.
func (s *Service) CommitLog(ctx context.Context, req PageRequest) (*CommitLog, error) {
	if req.Size <= 0 {
		req.Size = s.config.pageSize()
	}
	if req.Index < 0 {
		return nil, fmt.Errorf("%w: page index must not be negative", ErrInvalidArgument)
	}

	var entries []CommitLogEntry
	for _, p := range s.projectsSvc.List() {
		if req.Project != "" && p.Name != req.Project {
			continue
		}

		commits, err := s.projectLog(ctx, p)
		if errors.Is(err, git.ErrNotFound) || errors.Is(err, git.ErrNoCommitsYet) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("failed to read history", zap.String("project", p.Name), zap.Error(err))
			continue
		}

		for _, c := range commits {
			entries = append(entries, CommitLogEntry{
				ProjectName: p.Name,
				Username:    c.AuthorName,
				CommitID:    c.ID,
				Message:     c.ShortMessage,
				CommitTime:  c.CommitTime,
			})
		}
	}

	entries = filterEntries(entries, req.Username, req.Project)
	sortEntries(entries)

	page := Paginate(entries, req.Index, req.Size)
	return &CommitLog{
		Page:  page,
		Users: distinctUsers(page.Data),
	}, nil
}

func (s *Service) projectLog(ctx context.Context, p projects.Project) ([]git.Commit, error) {
	unlock := s.locks.Lock(p.Path)
	defer unlock()

	return s.gitSvc.Log(ctx, p.Path)
}

// ReadFile returns the content of a file in a project's working copy.
func (s *Service) ReadFile(name, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file path is required", ErrInvalidArgument)
	}

	p, err := s.projectsSvc.Get(name)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(p.Path)
	defer unlock()

	return s.gitSvc.ReadFile(p.Path, path)
}

// SetCredentials replaces the credential pair used by subsequent network
// calls.
func (s *Service) SetCredentials(username, password string) {
	s.credentials.Set(username, password)
	s.logger.Info("credentials updated", zap.String("username", username))
}

func (s *Service) run(
	ctx context.Context,
	kind operations.Kind,
	params map[string]string,
	fn projectFunc,
) (*Report, error) {
	logger := s.logger.With(zap.String("kind", string(kind)))
	started := time.Now()

	op, err := s.operationsSvc.Start(ctx, kind, params)
	if err != nil {
		return nil, fmt.Errorf("failed to start operation: %w", err)
	}

	list := s.projectsSvc.List()
	logger.Info("running fleet operation", zap.String("operation_id", op.ID.String()), zap.Int("projects", len(list)))

	outcomes := make([]operations.Outcome, 0, len(list))
	for _, p := range list {
		outcome := s.runProject(ctx, kind, p, fn)
		s.metrics.observeProject(kind, outcome)
		outcomes = append(outcomes, outcome)
	}

	op, err = s.operationsSvc.Complete(context.WithoutCancel(ctx), op.ID, outcomes)
	if err != nil {
		return nil, fmt.Errorf("failed to complete operation: %w", err)
	}

	s.metrics.observeOperation(kind, op.Status, time.Since(started))
	logger.Info("fleet operation finished", zap.String("status", string(op.Status)), zap.Duration("elapsed", time.Since(started)))

	return newReport(op), nil
}

func (s *Service) runProject(ctx context.Context, kind operations.Kind, p projects.Project, fn projectFunc) operations.Outcome {
	logger := s.logger.With(zap.String("kind", string(kind)), zap.String("project", p.Name), zap.String("path", p.Path))

	unlock := s.locks.Lock(p.Path)
	defer unlock()

	started := time.Now()
	outcome := operations.Outcome{Project: p.Name}

	detail, err := "", ctx.Err()
	if err == nil {
		detail, err = fn(ctx, p)
	}

	if kind != operations.KindRefresh {
		if _, refreshErr := s.projectsSvc.Refresh(context.WithoutCancel(ctx), p.Name); refreshErr != nil {
			logger.Warn("failed to refresh project", zap.Error(refreshErr))
		}
	}

	outcome.Duration = time.Since(started)
	if err != nil {
		outcome.Error = err.Error()
		logger.Error("project operation failed", zap.Error(err))
	} else {
		outcome.Success = true
		outcome.Detail = detail
	}

	logger.Info("project processed", zap.Bool("success", outcome.Success), zap.Duration("elapsed", outcome.Duration))
	return outcome
}
