package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/skeleton/pkg/config"
	"github.com/go-drift/skeleton/pkg/preview"
)

func init() {
	RegisterCommand(newPreviewCmd)
}

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a skeleton interactively in the terminal",
		Long: `Show the skeleton full screen and drive its lifecycle from the keyboard.

Keys:
  space   start or stop the animation
  r       remove the layer using the configured transition
  b       rebuild the layer
  + / -   change the line count of text hosts
  ?       toggle help
  q       quit

With --watch the config file is reloaded whenever it changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPreview(cmd)
		},
	}

	flags := cmd.Flags()
	flags.Int("fps", preview.DefaultFPS, "frames per second")
	flags.Bool("watch", false, "reload the config file when it changes")
	flags.Duration("reload-interval", preview.DefaultReloadInterval, "minimum time between reloads with --watch")
	flags.String("background", "white", "terminal background color")
	return a.bind(cmd)
}

func (a *app) runPreview(cmd *cobra.Command) error {
	r, path, err := a.loadConfig()
	if err != nil {
		return err
	}
	bg, err := config.ParseColor(a.settings.GetString("background"))
	if err != nil {
		return fmt.Errorf("--background: %w", err)
	}

	model, err := preview.NewModel(r, preview.Options{
		FPS:        a.settings.GetInt("fps"),
		Background: bg,
		Source:     path,
	})
	if err != nil {
		return err
	}
	program := preview.NewProgram(model, cmd.OutOrStdout(), cmd.InOrStdin())

	if a.settings.GetBool("watch") {
		if path == "" {
			return fmt.Errorf("--watch needs a config file")
		}
		watcher, err := preview.NewWatcher(path, a.settings.GetDuration("reload-interval"))
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		defer watcher.Close()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			if err := watcher.Run(ctx, program.Send); err != nil {
				a.log.Warn().Err(err).Msg("watcher stopped")
			}
		}()
		a.log.Debug().Str("path", path).Msg("watching config")
	}

	_, err = program.Run()
	return err
}
