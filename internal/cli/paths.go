package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rutadev/ruta/internal/progress"
)

// pathSummary is the --json shape of one entry in `ruta paths`.
type pathSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
	Active    bool   `json:"active"`
}

var pathsCmd = &cobra.Command{
	Use:     "paths",
	Short:   "List learning paths",
	Long:    `List every learning path in the catalog with its progress.`,
	Args:    cobra.NoArgs,
	GroupID: "path-management",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		if sess.catalog.Len() == 0 {
			PrintWarning(fmt.Sprintf("no learning paths found; add YAML manifests to %s", sess.paths.PathsDir))
			return nil
		}

		store, err := sess.openStore()
		if err != nil {
			return err
		}

		var summaries []pathSummary
		for _, id := range sess.catalog.IDs() {
			path := sess.catalog.Find(id)
			// One tracker per path; each reads its own storage key.
			tracker := progress.NewTracker(id, store)
			summaries = append(summaries, pathSummary{
				ID:        id,
				Name:      path.Name,
				Completed: tracker.CompletedCount(),
				Total:     path.Total(),
				Percent:   tracker.ProgressPercentage(path.Total()),
				Active:    id == sess.cfg.ActivePath,
			})
		}

		if jsonOutput {
			return outputJSON(summaries)
		}

		for _, s := range summaries {
			marker := " "
			if s.Active {
				marker = "*"
			}
			fmt.Printf("%s %-24s %-32s %s\n", marker, s.ID, s.Name, ProgressBar(s.Percent))
		}
		return nil
	},
}
