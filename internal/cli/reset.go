package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:     "reset",
	Short:   "Clear all progress for the active path",
	Long:    `Empty the completed set for the active learning path and remove its persisted progress.`,
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
		warnIfUnavailable(tracker)

		tracker.Reset()

		PrintSuccess(fmt.Sprintf("Progress for %q cleared", path.ID))
		return nil
	},
}
