package cli

import (
	"context"

	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/spf13/cobra"
)

func newProjectsCommand(run fleetRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects with their last captured state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), func(_ context.Context, svc *fleet.Service) error {
				return printProjects(cmd.OutOrStdout(), svc.Projects(), svc.BranchIntersection(), svc.TagIntersection())
			})
		},
	}
}

func newLogCommand(run fleetRunner) *cobra.Command {
	var req fleet.PageRequest

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the commit history of all projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), func(ctx context.Context, svc *fleet.Service) error {
				log, err := svc.CommitLog(ctx, req)
				if err != nil {
					return err
				}
				return printCommitLog(cmd.OutOrStdout(), log)
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&req.Index, "page", 0, "zero based page index")
	flags.IntVar(&req.Size, "size", 0, "page size, configured default when zero")
	flags.StringVar(&req.Username, "user", "", "only commits by this author")
	flags.StringVar(&req.Project, "project", "", "only commits of this project")

	return cmd
}
