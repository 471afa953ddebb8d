package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/skeleton/pkg/config"
)

func init() {
	RegisterCommand(newValidateCmd)
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check skeleton config files",
		Long: `Load, validate and resolve each config file and report the first problem
found in each. Without arguments the --config file, or the one found in the
current directory, is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if _, _, err := a.loadConfig(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}

			failed := 0
			for _, path := range args {
				if err := validateFile(path); err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d config files are invalid", failed, len(args))
			}
			return nil
		},
	}
}

func validateFile(path string) error {
	f, err := config.Load(path)
	if err != nil {
		return err
	}
	_, err = config.Resolve(f)
	return err
}
