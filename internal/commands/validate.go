package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sebok-dev/sebok/internal/importer/seb"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <export.xlsx>",
		Short: "Check that a file matches the SEB export layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			if err := seb.Validate(f); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "layout OK")

			return nil
		},
	}
}
