package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eykd/zk/internal/zid"
)

// segmentOutput is the JSON output schema for one segment.
type segmentOutput struct {
	Kind      string `json:"kind"`
	Value     string `json:"value"`
	Separator string `json:"separator,omitempty"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

// NewSegmentsCmd creates the segments subcommand.
func NewSegmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "segments <id>",
		Short:        "Print the segments of an identifier",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")

			id, err := zid.New(args[0])
			if err != nil {
				return err
			}

			segs := id.Segments()
			out := make([]segmentOutput, len(segs))
			for i, s := range segs {
				out[i] = segmentOutput{
					Kind:      segmentKind(s),
					Value:     s.Value(),
					Separator: s.Separator(),
					Start:     s.Start(),
					End:       s.End(),
				}
			}

			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			for _, s := range out {
				line := strings.TrimRight(fmt.Sprintf("%s %s %s", s.Kind, s.Value, s.Separator), " ")
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "output segments as a JSON array")

	return cmd
}

func segmentKind(s zid.Segment) string {
	if s.Numeric() {
		return "numeric"
	}
	return "alpha"
}
