package cli

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"bookstore/internal/adapter/file"
	"bookstore/internal/config"
)

// NewResetCommand returns the command that performs a full storage reset.
// This is the only path that destroys accounts and order history.
func NewResetCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Wipe all persisted storefront state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}

			snapshots, err := file.NewStore(cfg.SnapshotDir())
			if err != nil {
				return err
			}
			for _, name := range []string{"cart", "session"} {
				if err := snapshots.Remove(name); err != nil {
					return err
				}
			}

			if err := os.Remove(cfg.DatabasePath()); err != nil && !os.IsNotExist(err) {
				return err
			}

			log.Printf("storage reset under %s", cfg.DataDir)
			return nil
		},
	}
}
