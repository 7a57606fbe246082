// Command seqkit inspects file paths and image sequences from the shell.
//
//	seqkit parse /shots/010/render.0001.exr
//	seqkit ls --seq-ext .exr /shots/010 /shots/020
//	seqkit watch /shots/010
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/seqkit/config"
	"github.com/tailored-agentic-units/seqkit/observability"
	"github.com/tailored-agentic-units/seqkit/settings"
)

// app carries the state shared by every subcommand after flag parsing.
type app struct {
	configFile   string
	settingsPath string
	verbose      bool

	cfg      *config.Config
	logger   *slog.Logger
	observer observability.Observer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "seqkit",
		Short: "Path and image sequence tools",
		Long: `seqkit splits paths into protocol, directory, base name, frame number,
extension, and request, and groups numbered files into frame sequences.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Config file (.json, .yaml, .yml)")
	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "Settings directory (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging to stderr")

	root.AddCommand(
		newParseCmd(a),
		newSplitCmd(a),
		newFrameCmd(a),
		newLsCmd(a),
		newExpandCmd(a),
		newWatchCmd(a),
		newRecentCmd(a),
		newSettingsCmd(a),
		newDrivesCmd(a),
		newUserPathCmd(a),
	)
	return root
}

// setup loads configuration and wires logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configFile != "" {
		cfg, err := config.LoadConfig(a.configFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	} else {
		cfg := config.DefaultConfig()
		a.cfg = &cfg
	}
	if a.settingsPath != "" {
		a.cfg.Settings.Path = a.settingsPath
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(a.logger))

	obs, err := observability.GetObserver(a.cfg.Observer)
	if err != nil {
		return err
	}
	a.observer = obs
	return nil
}

// store opens the settings store, falling back to the per-user directory.
func (a *app) store() (settings.Store, error) {
	cfg := a.cfg.Settings
	if cfg.Path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.Path = p
	}
	return settings.NewStore(&cfg)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
