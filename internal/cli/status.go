package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusReport is the --json shape of `ruta status`.
type statusReport struct {
	Path      string         `json:"path"`
	Name      string         `json:"name"`
	Modules   []moduleStatus `json:"modules"`
	Completed int            `json:"completed"`
	Total     int            `json:"total"`
	Percent   int            `json:"percent"`
	Persisted bool           `json:"persisted"`
}

type moduleStatus struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Complete bool   `json:"complete"`
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show progress for the active path",
	Long:    `Display per-module completion and overall progress for the active learning path.`,
	Args:    cobra.NoArgs,
	GroupID: "progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		path, err := sess.activePath()
		if err != nil {
			return err
		}

		tracker, err := sess.tracker(path)
		if err != nil {
			return err
		}

		report := statusReport{
			Path:      path.ID,
			Name:      path.Name,
			Completed: tracker.CompletedCount(),
			Total:     path.Total(),
			Percent:   tracker.ProgressPercentage(path.Total()),
			Persisted: tracker.Available(),
		}
		for _, m := range path.Modules {
			report.Modules = append(report.Modules, moduleStatus{
				ID:       m.ID,
				Title:    m.Title,
				Complete: tracker.IsComplete(m.ID),
			})
		}

		if jsonOutput {
			return outputJSON(report)
		}

		PrintHeader(fmt.Sprintf("%s (%s)", path.Name, path.ID))
		warnIfUnavailable(tracker)
		fmt.Println()
		for _, m := range report.Modules {
			mark := "[ ]"
			if m.Complete {
				mark = "[✓]"
			}
			fmt.Printf("  %s %s", mark, m.Title)
			_, _ = dimColor.Printf("  (%s)\n", m.ID)
		}
		fmt.Println()
		PrintLabelValue("Completed", fmt.Sprintf("%d of %d", report.Completed, report.Total))
		PrintLabelValue("Progress", ProgressBar(report.Percent))
		return nil
	},
}
