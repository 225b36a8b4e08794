// Package cli is the gitfleet command tree. Without a subcommand the HTTP
// server is started.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gitfleet/gitfleet/internal"
	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/spf13/cobra"
)

const configPathEnv = "CONFIG_PATH"

// fleetRunner executes fn against a started fleet service. Replaced in tests.
type fleetRunner func(ctx context.Context, fn func(context.Context, *fleet.Service) error) error

func NewRootCommand(serve func(), run fleetRunner) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "gitfleet",
		Short:         "Apply git operations across a fleet of repositories",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configPath == "" {
				return nil
			}
			if err := os.Setenv(configPathEnv, configPath); err != nil {
				return fmt.Errorf("failed to set config path: %w", err)
			}
			return nil
		},
		Run: func(_ *cobra.Command, _ []string) {
			serve()
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file (overrides "+configPathEnv+")")

	root.AddCommand(
		newServeCommand(serve),
		newSyncCommand(run),
		newRefreshCommand(run),
		newProjectsCommand(run),
		newBranchCommand(run),
		newTagCommand(run),
		newMergeCommand(run),
		newPushCommand(run),
		newLogCommand(run),
	)

	return root
}

func newServeCommand(serve func()) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			serve()
		},
	}
}

// Execute runs the command tree and reports whether it succeeded.
func Execute(ctx context.Context) bool {
	root := NewRootCommand(internal.Run, internal.RunFleet)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return false
	}
	return true
}
