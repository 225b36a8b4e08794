package cli

import (
	"context"
	"fmt"

	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/gitfleet/gitfleet/internal/operations"
	"github.com/spf13/cobra"
)

type reportFunc func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error)

// runReport executes a fleet operation and prints its report. A report that
// is not fully successful turns into a command error.
func runReport(cmd *cobra.Command, run fleetRunner, fn reportFunc) error {
	return run(cmd.Context(), func(ctx context.Context, svc *fleet.Service) error {
		report, err := fn(ctx, svc)
		if err != nil {
			return err
		}

		if err := printReport(cmd.OutOrStdout(), report); err != nil {
			return err
		}

		if report.Status != operations.StatusSuccess {
			return fmt.Errorf("%s finished with status %s", report.Kind, report.Status)
		}
		return nil
	})
}

func newSyncCommand(run fleetRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Clone missing working copies and pull existing ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, run, func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error) {
				return svc.Sync(ctx)
			})
		},
	}
}

func newRefreshCommand(run fleetRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Capture the state of every working copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, run, func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error) {
				return svc.Refresh(ctx)
			})
		},
	}
}

func newBranchCommand(run fleetRunner) *cobra.Command {
	branch := &cobra.Command{
		Use:   "branch",
		Short: "Create, switch or delete branches in every project",
	}

	branch.AddCommand(
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create and check out a branch at HEAD",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runReport(cmd, run, func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error) {
					return svc.CreateBranch(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "switch <name>",
			Short: "Check out a branch, fetching it from origin when needed",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runReport(cmd, run, func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error) {
					return svc.SwitchBranch(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Delete the current branch locally and on origin",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runReport(cmd, run, func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error) {
					return svc.DeleteBranch(ctx)
				})
			},
		},
	)

	return branch
}

func newTagCommand(run fleetRunner) *cobra.Command {
	tag := &cobra.Command{
		Use:   "tag",
		Short: "Create or delete tags in every project",
	}

	var message string
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Tag HEAD and push the tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, run, func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error) {
				return svc.CreateTag(ctx, args[0], message)
			})
		},
	}
	create.Flags().StringVarP(&message, "message", "m", "", "tag message, defaults to the tag name")

	tag.AddCommand(
		create,
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a tag locally and on origin",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runReport(cmd, run, func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error) {
					return svc.DeleteTag(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "branch <tag> <branch>",
			Short: "Create and check out a branch at a tag",
			Args:  cobra.ExactArgs(2), //nolint:mnd //tag and branch
			RunE: func(cmd *cobra.Command, args []string) error {
				return runReport(cmd, run, func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error) {
					return svc.CreateBranchFromTag(ctx, args[0], args[1])
				})
			},
		},
	)

	return tag
}

func newMergeCommand(run fleetRunner) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "merge <target> <source>",
		Short: "Merge source into target with a merge commit and push",
		Args:  cobra.ExactArgs(2), //nolint:mnd //target and source
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, run, func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error) {
				return svc.Merge(ctx, args[0], args[1], message)
			})
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "merge commit message")

	return cmd
}

func newPushCommand(run fleetRunner) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Commit pending changes and push all branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, run, func(ctx context.Context, svc *fleet.Service) (*fleet.Report, error) {
				return svc.Push(ctx, message)
			})
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message for pending changes")

	return cmd
}
