package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/navpath/config"
	"github.com/katalvlaran/navpath/gridgraph"
	"github.com/katalvlaran/navpath/internal/scenario"
	"github.com/katalvlaran/navpath/navgraph"
)

// app carries what every subcommand needs after flag parsing.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "navpath",
		Short:         "Grid map route planner",
		Long:          "navpath builds a navigation graph from a grid map and answers route queries on it.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file (defaults apply when empty)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level from the configuration")

	root.AddCommand(newRouteCmd(a), newComponentsCmd(a))
	return root
}

func (a *app) init(logOut io.Writer) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = cfg.Log.Logger(logOut)
	return nil
}

// loadMap reads a scenario and generates its grid and graph.
func (a *app) loadMap(path string) (*scenario.Scenario, *gridgraph.GridGraph, *navgraph.Graph, error) {
	s, err := scenario.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	gg, err := s.Grid(a.cfg.Grid.GridOptions())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := gg.ToNavGraph()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("map loaded",
		slog.String("scenario", s.Name),
		slog.Int("width", gg.Width),
		slog.Int("height", gg.Height),
		slog.Int("nodes", g.Len()),
	)
	return s, gg, g, nil
}
