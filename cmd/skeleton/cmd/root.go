// Package cmd implements the skeleton CLI commands.
//
// Commands register themselves from init with RegisterCommand. Flags are bound
// to viper, so every flag can also be set through a SKELETON_ environment
// variable (for example SKELETON_CONFIG or SKELETON_LOG_LEVEL).
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-drift/skeleton/internal/logging"
	"github.com/go-drift/skeleton/pkg/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

const envPrefix = "SKELETON"

// app is the state shared by the commands of one invocation.
type app struct {
	settings *viper.Viper
	log      zerolog.Logger
	restore  func()
}

// factories builds the registered commands for each new root.
var factories []func(*app) *cobra.Command

// RegisterCommand adds a command to the CLI.
func RegisterCommand(factory func(*app) *cobra.Command) {
	factories = append(factories, factory)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		settings: viper.New(),
		log:      zerolog.Nop(),
	}
	a.settings.SetEnvPrefix(envPrefix)
	a.settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.settings.AutomaticEnv()

	root := &cobra.Command{
		Use:   "skeleton",
		Short: "Render and preview skeleton loading overlays",
		Long: `skeleton renders the placeholder overlay a view shows while its content
loads: a solid pulse, a static gradient or a sliding gradient, optionally
split into one bar per text line.

Overlays are described by a skeleton.yaml or skeleton.toml file. Without
--config the current directory is searched, and built-in defaults are used
when no file is found.

Use "skeleton <command> --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.restore != nil {
				a.restore()
				a.restore = nil
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default: skeleton.yaml in the current directory)")
	flags.BoolP("verbose", "v", false, "enable debug logging with stack traces")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	_ = a.settings.BindPFlags(flags)

	for _, factory := range factories {
		root.AddCommand(factory(a))
	}
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	verbose := a.settings.GetBool("verbose")
	logger, err := logging.New(logging.Options{
		Level:         a.settings.GetString("log-level"),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Verbose:       verbose,
	})
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.log = logger
	a.restore = logging.Install(logger, verbose)
	return nil
}

// bind exposes a command's flags through viper once the command is chosen,
// so commands may share flag names.
func (a *app) bind(cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		return a.settings.BindPFlags(cmd.Flags())
	}
	return cmd
}

// loadConfig reads --config, or searches the working directory. The
// returned path is empty when defaults were used.
func (a *app) loadConfig() (*config.Resolved, string, error) {
	var (
		f    *config.File
		path = a.settings.GetString("config")
		err  error
	)
	if path != "" {
		f, err = config.Load(path)
	} else {
		f, path, err = config.LoadOptional(".")
	}
	if err != nil {
		return nil, "", err
	}

	r, err := config.Resolve(f)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		a.log.Debug().Msg("no config file found, using defaults")
	} else {
		path = filepath.Clean(path)
		a.log.Debug().Str("path", path).Str("type", r.Config.Type.String()).Msg("loaded config")
	}
	return r, path, nil
}
