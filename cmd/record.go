package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"microengineer/internal/celestial"
	"microengineer/internal/config"
	"microengineer/internal/telemetry"
	"microengineer/pkg/logging"

	"github.com/spf13/cobra"
)

type recordOptions struct {
	output   string
	duration float64
	interval float64
	body     string
}

func newRecordCmd() *cobra.Command {
	opts := &recordOptions{}
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a simulated launch for replay",
		Long: `Flies the built-in launch simulation and writes a snapshot every
--interval simulated seconds. The file can be replayed with
"microengineer dashboard --replay".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if opts.body != "" {
				cfg.Bodies.ReferenceBody = opts.body
			}
			return runRecord(cmd, cfg, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "Recording file, - for stdout")
	cmd.Flags().Float64Var(&opts.duration, "duration", 300, "Simulated seconds to record")
	cmd.Flags().Float64Var(&opts.interval, "interval", 5, "Simulated seconds between frames")
	cmd.Flags().StringVar(&opts.body, "body", "", "Body to launch from")
	return cmd
}

func runRecord(cmd *cobra.Command, cfg config.Config, opts *recordOptions) error {
	if opts.interval <= 0 {
		return errors.New("--interval must be positive")
	}
	if opts.duration < 0 {
		return errors.New("--duration must not be negative")
	}
	bodies, err := newBodyTable(cfg)
	if err != nil {
		return err
	}
	frames, err := simulateFrames(bodies, opts.duration, opts.interval)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create recording: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := telemetry.WriteRecording(w, frames); err != nil {
		return fmt.Errorf("failed to write recording: %w", err)
	}
	logging.Info(cliSubsystem, "Recorded %d frames", len(frames))
	return nil
}

// simulateFrames flies the launch simulation and keeps one snapshot per
// interval, including the first and the last instant.
func simulateFrames(bodies *celestial.Table, duration, interval float64) ([]*telemetry.Snapshot, error) {
	home, err := bodies.Reference()
	if err != nil {
		return nil, err
	}
	sim := telemetry.NewSimulator(home, telemetry.DefaultVehicle())

	frames := []*telemetry.Snapshot{sim.Snapshot()}
	var elapsed, sinceFrame float64
	for elapsed+simulationStep/2 < duration {
		sim.Step(simulationStep)
		elapsed += simulationStep
		sinceFrame += simulationStep
		if sinceFrame+simulationStep/2 >= interval {
			frames = append(frames, sim.Snapshot())
			sinceFrame = 0
		}
	}
	if sinceFrame > 0 {
		frames = append(frames, sim.Snapshot())
	}
	return frames, nil
}
