// Package cli defines the storefront commands.
package cli

import "github.com/spf13/cobra"

// NewRootCommand creates the root command for the bookstore CLI.
func NewRootCommand() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:          "bookstore",
		Short:        "Demo bookstore storefront",
		Long:         "A self-contained demo storefront: catalog, cart, checkout, mock accounts and order history, persisted locally.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")

	cmd.AddCommand(NewServeCommand(&cfgPath))
	cmd.AddCommand(NewResetCommand(&cfgPath))

	return cmd
}
