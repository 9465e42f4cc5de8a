// Package cmd implements the zk CLI commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root zk command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zk",
		Short:         "zk - Zettelkasten identifier toolkit",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewNextCmd())
	root.AddCommand(NewParentCmd())
	root.AddCommand(NewCompareCmd())
	root.AddCommand(NewSortCmd())
	root.AddCommand(NewSegmentsCmd())
	root.AddCommand(NewDoctorCmd(newDefaultDoctorIO()))
	return root
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

// writeJSON encodes v as a single JSON document on w.
func writeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
