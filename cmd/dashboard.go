package cmd

import (
	"context"
	"fmt"
	"time"

	"microengineer/internal/config"
	"microengineer/internal/layout"
	"microengineer/internal/metrics"
	"microengineer/internal/tui/controller"
	"microengineer/internal/tui/model"
	"microengineer/pkg/logging"

	"github.com/spf13/cobra"
)

type dashboardOptions struct {
	context     string
	replay      string
	refresh     time.Duration
	warp        float64
	body        string
	metricsAddr string
	layoutFile  string
	noSave      bool
}

func newDashboardCmd() *cobra.Command {
	opts := &dashboardOptions{}
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Open the interactive telemetry dashboard",
		Long: `Opens the terminal dashboard. Panels refresh on every tick from the
launch simulation, or from a recorded replay when --replay is given.
The layout is loaded on start and saved again on quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts)
		},
	}

	addDashboardFlags(cmd, opts)
	return cmd
}

func addDashboardFlags(cmd *cobra.Command, opts *dashboardOptions) {
	cmd.Flags().StringVarP(&opts.context, "context", "c", "", "Start context (flight, map or editor)")
	cmd.Flags().StringVar(&opts.replay, "replay", "", "Replay recorded snapshots from this file")
	cmd.Flags().DurationVar(&opts.refresh, "refresh", 0, "Refresh interval")
	cmd.Flags().Float64Var(&opts.warp, "warp", 0, "Simulated seconds per real second")
	cmd.Flags().StringVar(&opts.body, "body", "", "Reference body for TWR and sea-level figures")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Expose Prometheus metrics on this address")
	cmd.Flags().StringVar(&opts.layoutFile, "layout", "", "Layout file")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "Do not save the layout on quit")
}

// applyDashboardFlags overrides configuration with the flags the user set.
func applyDashboardFlags(cmd *cobra.Command, cfg *config.Config, opts *dashboardOptions) {
	flags := cmd.Flags()
	if flags.Changed("context") {
		cfg.Dashboard.StartContext = opts.context
	}
	if flags.Changed("replay") {
		cfg.Telemetry.ReplayFile = opts.replay
	}
	if flags.Changed("refresh") {
		cfg.Dashboard.RefreshInterval = opts.refresh
	}
	if flags.Changed("warp") {
		cfg.Telemetry.TimeWarp = opts.warp
	}
	if flags.Changed("body") {
		cfg.Bodies.ReferenceBody = opts.body
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddress = opts.metricsAddr
	}
	if flags.Changed("layout") {
		cfg.Dashboard.LayoutFile = opts.layoutFile
	}
}

// dashboardSetup is everything the dashboard needs before the program starts.
type dashboardSetup struct {
	cfg        config.Config
	options    model.Options
	layoutPath string
}

func prepareDashboard(cmd *cobra.Command, opts *dashboardOptions) (*dashboardSetup, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	applyDashboardFlags(cmd, &cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	start := layout.ContextFlight
	if cfg.Dashboard.StartContext != "" {
		if start, err = layout.ParseContext(cfg.Dashboard.StartContext); err != nil {
			return nil, err
		}
	}

	bodies, err := newBodyTable(cfg)
	if err != nil {
		return nil, err
	}
	source, err := newSource(cfg, bodies)
	if err != nil {
		return nil, err
	}

	layoutPath, err := cfg.LayoutPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve layout path: %w", err)
	}
	l := layout.New(bodies)
	if err := l.Load(layoutPath); err != nil {
		logging.Warn(cliSubsystem, "Ignoring layout %s: %v", layoutPath, err)
	}

	savePath := layoutPath
	if opts.noSave {
		savePath = ""
	}
	return &dashboardSetup{
		cfg:        cfg,
		layoutPath: layoutPath,
		options: model.Options{
			Layout:          l,
			Bodies:          bodies,
			Source:          source,
			Context:         start,
			RefreshInterval: cfg.Dashboard.RefreshInterval,
			TimeWarp:        cfg.Telemetry.TimeWarp,
			LayoutPath:      savePath,
		},
	}, nil
}

func runDashboard(cmd *cobra.Command, opts *dashboardOptions) error {
	setup, err := prepareDashboard(cmd, opts)
	if err != nil {
		return err
	}

	// From here on log output goes to the dashboard's activity log.
	setup.options.LogChannel = logging.InitForTUI(logging.ParseLevel(setup.cfg.LogLevel))
	defer logging.CloseTUIChannel()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if addr := setup.cfg.MetricsAddress; addr != "" {
		go func() {
			if err := metrics.Serve(ctx, addr); err != nil {
				logging.Error(cliSubsystem, err, "Metrics server on %s stopped", addr)
			}
		}()
	}

	p, err := controller.NewProgram(setup.options)
	if err != nil {
		return err
	}
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with error: %w", err)
	}
	return nil
}
