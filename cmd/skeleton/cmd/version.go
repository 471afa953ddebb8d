package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/go-drift/skeleton/pkg/config"
)

func init() {
	RegisterCommand(newVersionCmd)
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "skeleton %s (built %s)\n", Version, BuildTime)
			fmt.Fprintf(out, "config schema: %s\n", config.SchemaVersion)
			fmt.Fprintf(out, "go: %s\n", runtime.Version())
			return nil
		},
	}
}
