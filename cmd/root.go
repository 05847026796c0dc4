package cmd

import (
	"context"
	"fmt"
	"os"

	"microengineer/internal/celestial"
	"microengineer/internal/config"
	"microengineer/internal/telemetry"
	"microengineer/pkg/logging"

	"github.com/spf13/cobra"
)

const cliSubsystem = "CLI"

// logLevel is the value of the persistent --log-level flag.
var logLevel string

// configLoader is a variable so tests can supply a configuration.
var configLoader = config.LoadConfig

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "microengineer",
	Short: "Flight engineering readouts for a simulated rocket",
	Long: `microengineer shows vessel, orbital, surface, target, maneuver and
staging readouts in configurable panels. The dashboard runs against a
built-in launch simulation or a recorded replay, and the stage tables
recompute thrust-to-weight and sea-level delta-v for any celestial body.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreadable layout or replay files)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitForCLI(logging.ParseLevel(logLevel), os.Stderr)
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "microengineer version %s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newStagesCmd())
	rootCmd.AddCommand(newBodiesCmd())
	rootCmd.AddCommand(newEntriesCmd())
	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

// loadConfig layers the config files and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := configLoader()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newBodyTable builds the body table from the configured catalogue, falling
// back to the built-in system.
func newBodyTable(cfg config.Config) (*celestial.Table, error) {
	var provider celestial.Provider = celestial.Builtin
	path, err := cfg.CataloguePath()
	if err != nil {
		return nil, err
	}
	if path != "" {
		provider = celestial.FileProvider{Path: path}
	}

	bodies := celestial.NewTable(provider, cfg.Bodies.ReferenceBody)
	if err := bodies.Err(); err != nil {
		return nil, err
	}
	if _, err := bodies.Reference(); err != nil {
		return nil, fmt.Errorf("reference body: %w", err)
	}
	return bodies, nil
}

// newSource opens the configured replay, or starts a launch simulation around
// the reference body.
func newSource(cfg config.Config, bodies *celestial.Table) (telemetry.Source, error) {
	if cfg.Telemetry.ReplayFile != "" {
		replay, err := telemetry.LoadReplay(cfg.Telemetry.ReplayFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load replay: %w", err)
		}
		logging.Info(cliSubsystem, "Replaying %d frames from %s", replay.Len(), cfg.Telemetry.ReplayFile)
		return replay, nil
	}

	home, err := bodies.Reference()
	if err != nil {
		return nil, err
	}
	return telemetry.NewSimulator(home, telemetry.DefaultVehicle()), nil
}
