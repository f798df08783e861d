// Package commands wires the sebok command line interface.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sebok",
		Short: "Convert SEB xlsx statement exports to normalized transactions",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newValidateCommand())

	return rootCmd
}
