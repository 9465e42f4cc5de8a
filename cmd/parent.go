package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/zk/internal/zid"
)

// NewParentCmd creates the parent subcommand.
func NewParentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "parent <id>",
		Short:        "Print the parent of an identifier",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			id, err := zid.New(args[0])
			if err != nil {
				return err
			}

			// --all on a root identifier prints nothing and succeeds.
			if all {
				for _, a := range id.Ancestors() {
					fmt.Fprintln(cmd.OutOrStdout(), a)
				}
				return nil
			}

			p, err := id.Parent()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "print every ancestor, root first")

	return cmd
}
