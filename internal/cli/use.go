package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rutadev/ruta/internal/config"
)

var useCmd = &cobra.Command{
	Use:     "use <path-id>",
	Short:   "Select the active learning path",
	Long:    `Select a learning path as the one bare progress commands operate on.`,
	Args:    cobra.ExactArgs(1),
	GroupID: "path-management",
	RunE: func(cmd *cobra.Command, args []string) error {
		pathID := args[0]

		sess, err := newSession()
		if err != nil {
			return err
		}

		if sess.catalog.Find(pathID) == nil {
			return fmt.Errorf("unknown learning path %q; run `ruta paths` to list available paths", pathID)
		}

		sess.cfg.ActivePath = pathID
		if err := config.Save(sess.fs, sess.paths.ConfigFile, sess.cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		PrintSuccess(fmt.Sprintf("Active path set to: %s", pathID))
		return nil
	},
}
