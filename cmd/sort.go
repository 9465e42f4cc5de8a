package cmd

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eykd/zk/internal/zid"
)

// NewSortCmd creates the sort subcommand.
func NewSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sort [id...]",
		Short:        "Sort identifiers into Zettelkasten order",
		Long:         "Sort identifiers given as arguments, or one per line on standard input when no arguments are given.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")
			reverse, _ := cmd.Flags().GetBool("reverse")

			var ids []zid.ID
			var err error
			if len(args) > 0 {
				ids, err = parseArgIDs(args)
			} else {
				ids, err = readLineIDs(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			zid.Sort(ids)
			if reverse {
				slices.Reverse(ids)
			}

			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), ids)
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "output identifiers as a JSON array")
	cmd.Flags().Bool("reverse", false, "sort in descending order")

	return cmd
}

func parseArgIDs(args []string) ([]zid.ID, error) {
	ids := make([]zid.ID, 0, len(args))
	for _, arg := range args {
		id, err := zid.New(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// readLineIDs parses one identifier per line from r. Blank lines are skipped
// and surrounding whitespace is trimmed.
func readLineIDs(r io.Reader) ([]zid.ID, error) {
	ids := []zid.ID{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		id, err := zid.New(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading identifiers: %w", err)
	}
	return ids, nil
}
