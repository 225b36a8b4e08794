package cli

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/gitfleet/gitfleet/internal/git"
	"github.com/gitfleet/gitfleet/internal/operations"
	"github.com/gitfleet/gitfleet/internal/projects"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		served  bool
		ran     bool
		wantErr bool
	}{
		{name: "default serves", args: []string{}, served: true},
		{name: "serve", args: []string{"serve"}, served: true},
		{name: "sync", args: []string{"sync"}, ran: true},
		{name: "branch create", args: []string{"branch", "create", "feature"}, ran: true},
		{name: "branch create without name", args: []string{"branch", "create"}, wantErr: true},
		{name: "tag branch", args: []string{"tag", "branch", "v1.0", "hotfix"}, ran: true},
		{name: "merge needs two branches", args: []string{"merge", "master"}, wantErr: true},
		{name: "push with message", args: []string{"push", "-m", "bump"}, ran: true},
		{name: "log flags", args: []string{"log", "--page", "1", "--user", "alice"}, ran: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			served, ran := false, false
			root := NewRootCommand(
				func() { served = true },
				func(context.Context, func(context.Context, *fleet.Service) error) error {
					ran = true
					return nil
				},
			)
			root.SetArgs(tt.args)
			root.SetOut(new(bytes.Buffer))
			root.SetErr(new(bytes.Buffer))

			err := root.ExecuteContext(t.Context())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.served, served)
			assert.Equal(t, tt.ran, ran)
		})
	}
}

func TestRootCommand_ConfigFlag(t *testing.T) {
	t.Setenv(configPathEnv, "")

	root := NewRootCommand(func() {}, nil)
	root.SetArgs([]string{"--config", "/etc/gitfleet.yml", "serve"})
	require.NoError(t, root.ExecuteContext(t.Context()))

	assert.Equal(t, "/etc/gitfleet.yml", os.Getenv(configPathEnv))
}

func TestPrintReport(t *testing.T) {
	report := &fleet.Report{
		OperationID: uuid.MustParse("0190b0a4-0000-7000-8000-000000000001"),
		Kind:        operations.KindCreateTag,
		Status:      operations.StatusPartial,
		Results: []operations.Outcome{
			{Project: "alpha", Success: true, Detail: "v1.0", Duration: 1500 * time.Microsecond},
			{Project: "beta", Success: false, Error: "ref already exists"},
		},
	}

	var out bytes.Buffer
	require.NoError(t, printReport(&out, report))

	text := out.String()
	assert.Contains(t, text, "alpha    ok")
	assert.Contains(t, text, "v1.0")
	assert.Contains(t, text, "beta     failed  ref already exists")
	assert.Contains(t, text, "create_tag partial (0190b0a4-0000-7000-8000-000000000001)")
}

func TestPrintProjects(t *testing.T) {
	refreshed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	list := []projects.Project{
		{
			Name:          "alpha",
			CurrentBranch: "master",
			LastCommit:    &git.Commit{ID: "0123456789abcdef", ShortMessage: "initial"},
			RefreshedAt:   &refreshed,
		},
		{Name: "beta"},
	}

	var out bytes.Buffer
	require.NoError(t, printProjects(&out, list, []string{"master"}, nil))

	text := out.String()
	assert.Contains(t, text, "01234567 initial")
	assert.Contains(t, text, "2024-03-01 09:30:00")
	assert.Contains(t, text, "common branches: master")
	assert.Contains(t, text, "common tags: -")
}

func TestPrintCommitLog(t *testing.T) {
	log := &fleet.CommitLog{
		Page: fleet.Page[fleet.CommitLogEntry]{
			Index:      0,
			Size:       1,
			TotalData:  2,
			TotalPages: 2,
			Data: []fleet.CommitLogEntry{
				{ProjectName: "alpha", Username: "alice", CommitID: "abc", Message: "fix", CommitTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
		Users: []string{"alice"},
	}

	var out bytes.Buffer
	require.NoError(t, printCommitLog(&out, log))

	assert.Contains(t, out.String(), "alice")
	assert.Contains(t, out.String(), "page 1 of 2, 2 commits")
}
