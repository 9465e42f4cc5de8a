package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/zk/internal/zid"
)

// nextOutput is the JSON output schema for one next result.
type nextOutput struct {
	ID   zid.ID `json:"id"`
	Next zid.ID `json:"next"`
}

// NewNextCmd creates the next subcommand.
func NewNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "next <id>...",
		Short:        "Print the identifier that follows each argument",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")

			results := make([]nextOutput, 0, len(args))
			for _, arg := range args {
				id, err := zid.New(arg)
				if err != nil {
					return err
				}
				n, err := id.Next()
				if err != nil {
					return err
				}
				results = append(results, nextOutput{ID: id, Next: n})
			}

			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r.Next)
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "output results as a JSON array")

	return cmd
}
