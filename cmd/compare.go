package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/zk/internal/zid"
)

// NewCompareCmd creates the compare subcommand.
func NewCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "compare <a> <b>",
		Short:        "Print -1, 0 or 1 as <a> sorts before, with or after <b>",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := zid.New(args[0])
			if err != nil {
				return err
			}
			b, err := zid.New(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Compare(b))
			return nil
		},
	}
}
