package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/gitfleet/gitfleet/internal/projects"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	shortID    = 8
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd //column padding
}

func printReport(w io.Writer, report *fleet.Report) error {
	table := newTable(w)

	fmt.Fprintln(table, "PROJECT\tRESULT\tDETAIL\tDURATION")
	for _, r := range report.Results {
		result, detail := "ok", r.Detail
		if !r.Success {
			result, detail = "failed", r.Error
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", r.Project, result, detail, r.Duration.Round(time.Millisecond))
	}
	if err := table.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%s %s (%s)\n", report.Kind, report.Status, report.OperationID)
	return err
}

func printProjects(w io.Writer, list []projects.Project, branches, tags []string) error {
	table := newTable(w)

	fmt.Fprintln(table, "NAME\tBRANCH\tCLEAN\tLAST COMMIT\tREFRESHED")
	for _, p := range list {
		lastCommit, refreshed := "-", "-"
		if p.LastCommit != nil {
			lastCommit = p.LastCommit.ID[:min(shortID, len(p.LastCommit.ID))] + " " + p.LastCommit.ShortMessage
		}
		if p.RefreshedAt != nil {
			refreshed = p.RefreshedAt.Format(timeLayout)
		}
		fmt.Fprintf(table, "%s\t%s\t%t\t%s\t%s\n", p.Name, orDash(p.CurrentBranch), p.Status.IsClean(), lastCommit, refreshed)
	}
	if err := table.Flush(); err != nil {
		return fmt.Errorf("failed to write projects: %w", err)
	}

	_, err := fmt.Fprintf(w, "\ncommon branches: %s\ncommon tags: %s\n", joinOrDash(branches), joinOrDash(tags))
	return err
}

func printCommitLog(w io.Writer, log *fleet.CommitLog) error {
	table := newTable(w)

	fmt.Fprintln(table, "TIME\tPROJECT\tAUTHOR\tCOMMIT\tMESSAGE")
	for _, e := range log.Data {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n",
			e.CommitTime.Format(timeLayout), e.ProjectName, e.Username, e.CommitID[:min(shortID, len(e.CommitID))], e.Message)
	}
	if err := table.Flush(); err != nil {
		return fmt.Errorf("failed to write commit log: %w", err)
	}

	_, err := fmt.Fprintf(w, "\npage %d of %d, %d commits\n", log.Index+1, log.TotalPages, log.TotalData)
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinOrDash(values []string) string {
	return orDash(strings.Join(values, ", "))
}
