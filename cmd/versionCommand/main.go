package versionCommand

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Version string
var Revision string

type VersionCommand struct {
	CobraCommand *cobra.Command
}

func NewVersionCommand() *VersionCommand {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of vecho",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vecho version %s (rev: %s)\n", Version, Revision)
		},
	}

	return &VersionCommand{
		CobraCommand: cmd,
	}
}
