// Package cmd holds the roomplan command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/roomplan/internal/app"
	"github.com/philipparndt/roomplan/internal/config"
	"github.com/philipparndt/roomplan/internal/logging"
	"github.com/philipparndt/roomplan/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	flagWidth  float64
	flagDepth  float64
	flagHeight float64
	flagTool   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "roomplan [config]",
	Short: "Interactive electrical fixture planner",
	Long: `roomplan places receptacles, lights and other electrical fixtures on the
floor and walls of a rectangular room. Without a subcommand it opens the
interactive 3D window; a config file argument is watched and the room is
rebuilt whenever it changes.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.GetFullVersion(),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			configPath = args[0]
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{
			Config:     cfg,
			ConfigPath: configPath,
			Logger:     newLogger(cmd, cfg),
		})
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML config file")
	flags.Float64Var(&flagWidth, "width", 0, "room width in meters (overrides config)")
	flags.Float64Var(&flagDepth, "depth", 0, "room depth in meters (overrides config)")
	flags.Float64Var(&flagHeight, "height", 0, "wall height in meters (overrides config)")
	flags.StringVar(&flagTool, "tool", "", "initial fixture type (overrides config)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadConfig reads the config file and applies the flags the user set
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Room.Width = flagWidth
	}
	if flags.Changed("depth") {
		cfg.Room.Depth = flagDepth
	}
	if flags.Changed("height") {
		cfg.Room.WallHeight = flagHeight
	}
	if flags.Changed("tool") {
		cfg.Planner.Tool = flagTool
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbose = verbose
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) zerolog.Logger {
	return logging.For(cmd.ErrOrStderr(), cfg.Log.Verbose)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
