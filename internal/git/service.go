package git

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	localBranchPrefix  = "refs/heads/"
	remoteBranchPrefix = "refs/remotes/" + DefaultRemote + "/"
	tagPrefix          = "refs/tags/"
)

// priorityBranches are listed first, in this order, whenever present.
var priorityBranches = []string{"master", "develop"}

type Service struct {
	config      Config
	credentials *Credentials

	logger *zap.Logger
}

// NewService creates a new git Service.
func NewService(config Config, credentials *Credentials, logger *zap.Logger) *Service {
	return &Service{
		config:      config,
		credentials: credentials,

		logger: logger,
	}
}

// ClassifyBranch reports where branch exists in the given repository. A
// failure to enumerate refs yields BranchTypeError. The repository handle is
// neither mutated nor released.
func (s *Service) ClassifyBranch(repo *git.Repository, branch string) BranchType {
	branchType, err := classifyBranch(repo, branch)
	if err != nil {
		s.logger.Warn("failed to classify branch",
			zap.String("branch", branch),
			zap.Error(fmt.Errorf("%w: %w", ErrClassificationFailure, err)))
	}
	return branchType
}

func classifyBranch(repo *git.Repository, branch string) (BranchType, error) {
	localName := plumbing.NewBranchReferenceName(branch)
	remoteName := plumbing.NewRemoteReferenceName(DefaultRemote, branch)

	branches, err := repo.Branches()
	if err != nil {
		return BranchTypeError, err
	}
	isLocal, err := containsReference(branches, localName)
	if err != nil {
		return BranchTypeError, err
	}

	refs, err := repo.References()
	if err != nil {
		return BranchTypeError, err
	}
	isRemote, err := containsReference(refs, remoteName)
	if err != nil {
		return BranchTypeError, err
	}

	switch {
	case isLocal && isRemote:
		return BranchTypeLocalAndRemote, nil
	case isLocal:
		return BranchTypeLocal, nil
	case isRemote:
		return BranchTypeRemote, nil
	default:
		return BranchTypeNotExist, nil
	}
}

func containsReference(iter storer.ReferenceIter, name plumbing.ReferenceName) (bool, error) {
	defer iter.Close()

	found := false
	err := iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name() == name {
			found = true
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return false, err
	}

	return found, nil
}

// currentBranch returns the short name HEAD points at, or the commit hash
// when HEAD is detached. It works on repositories without commits.
func currentBranch(repo *git.Repository) (string, error) {
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}

	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}

	return head.Hash().String(), nil
}

func referenceExists(repo *git.Repository, name plumbing.ReferenceName) (bool, error) {
	_, err := repo.Reference(name, false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// listBranches returns the bare names of all local and origin remote-tracking
// branches, de-duplicated and in display order.
func listBranches(repo *git.Repository) ([]string, error) {
	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	defer refs.Close()

	var local, remote []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		switch {
		case strings.HasPrefix(name, localBranchPrefix):
			local = append(local, strings.TrimPrefix(name, localBranchPrefix))
		case strings.HasPrefix(name, remoteBranchPrefix):
			short := strings.TrimPrefix(name, remoteBranchPrefix)
			if short != "HEAD" {
				remote = append(remote, short)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}

	// Reference storage iterates in no fixed order; ref-name order is the
	// discovery order local-then-remote.
	sort.Strings(local)
	sort.Strings(remote)

	return OrderBranches(append(local, remote...)), nil
}

// OrderBranches de-duplicates names and moves master then develop to the
// front; all other names keep their relative order.
func OrderBranches(names []string) []string {
	unique := lo.Uniq(names)

	ordered := make([]string, 0, len(unique))
	for _, priority := range priorityBranches {
		if lo.Contains(unique, priority) {
			ordered = append(ordered, priority)
		}
	}

	return append(ordered, lo.Without(unique, priorityBranches...)...)
}

func listTags(repo *git.Repository) ([]string, error) {
	tags, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer tags.Close()

	names := []string{}
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, strings.TrimPrefix(ref.Name().String(), tagPrefix))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

func (s *Service) signature() *object.Signature {
	name := s.config.Author.Name
	if name == "" {
		name = s.credentials.Username()
	}
	if name == "" {
		name = "gitfleet"
	}

	return &object.Signature{
		Name:  name,
		Email: s.config.Author.Email,
		When:  time.Now(),
	}
}

func newCommit(c *object.Commit) Commit {
	return Commit{
		ID:           c.Hash.String(),
		ShortMessage: shortMessage(c.Message),
		AuthorName:   c.Author.Name,
		AuthorEmail:  c.Author.Email,
		CommitTime:   c.Committer.When,
	}
}

func shortMessage(message string) string {
	message = strings.TrimSpace(message)
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}
