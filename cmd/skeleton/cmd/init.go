package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/skeleton/pkg/config"
)

func init() {
	RegisterCommand(newInitCmd)
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init [file]",
		Short: "Write a starter config file",
		Long: `Write the default configuration to a new file, skeleton.yaml unless a
path is given. The format follows the extension. Existing files are never
overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultNames[0]
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			a.log.Debug().Str("path", path).Msg("wrote config")
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
