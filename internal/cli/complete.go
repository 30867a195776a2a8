package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:     "complete <module>...",
	Short:   "Mark modules as complete",
	Long:    `Mark one or more modules of the active learning path as complete.`,
	Args:    cobra.MinimumNArgs(1),
	GroupID: "progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(args, func(t mutator, id string) {
			t.MarkComplete(id)
		}, "Completed")
	},
}

var undoCmd = &cobra.Command{
	Use:     "undo <module>...",
	Short:   "Mark modules as not complete",
	Long:    `Remove one or more modules of the active learning path from the completed set.`,
	Args:    cobra.MinimumNArgs(1),
	GroupID: "progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(args, func(t mutator, id string) {
			t.MarkIncomplete(id)
		}, "Unmarked")
	},
}

var toggleCmd = &cobra.Command{
	Use:     "toggle <module>...",
	Short:   "Toggle module completion",
	Long:    `Flip the completion state of one or more modules of the active learning path.`,
	Args:    cobra.MinimumNArgs(1),
	GroupID: "progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(args, func(t mutator, id string) {
			t.Toggle(id)
		}, "Toggled")
	},
}

// mutator is the slice of the tracker the mutation commands need.
type mutator interface {
	MarkComplete(id string)
	MarkIncomplete(id string)
	Toggle(id string)
}

// runMutation applies op to every known module id and reports the
// resulting progress. Unknown ids are warned about, not fatal, so a
// typo in one argument doesn't discard the rest.
func runMutation(ids []string, op func(mutator, string), verb string) error {
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

	applied := 0
	for _, id := range ids {
		if !path.HasModule(id) {
			PrintWarning(fmt.Sprintf("module %q is not part of path %q", id, path.ID))
			continue
		}
		op(tracker, id)
		applied++
	}

	if applied == 0 {
		return fmt.Errorf("no matching modules in path %q", path.ID)
	}

	PrintSuccess(fmt.Sprintf("%s %d module(s)", verb, applied))
	PrintLabelValue("Progress", ProgressBar(tracker.ProgressPercentage(path.Total())))
	return nil
}
