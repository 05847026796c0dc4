package cmd

import (
	"fmt"
	"sort"
	"strings"

	"microengineer/internal/celestial"
	"microengineer/internal/cli"
	"microengineer/internal/config"
	"microengineer/internal/metrics"
	"microengineer/internal/staging"
	"microengineer/internal/telemetry"
	"microengineer/internal/units"

	"github.com/spf13/cobra"
)

// simulationStep is the step used when advancing the simulator from the CLI.
const simulationStep = 0.1

type stagesOptions struct {
	output  string
	replay  string
	body    string
	selects map[string]string
	flight  bool
	elapsed float64
}

// stageRowOutput is the JSON/YAML form of one stage table row.
type stageRowOutput struct {
	Stage     string  `json:"stage" yaml:"stage"`
	Body      string  `json:"body,omitempty" yaml:"body,omitempty"`
	TWR       float64 `json:"twr" yaml:"twr"`
	SLT       float64 `json:"slt,omitempty" yaml:"slt,omitempty"`
	DeltaVASL float64 `json:"deltaVASL,omitempty" yaml:"deltaVASL,omitempty"`
	DeltaVVac float64 `json:"deltaVVac,omitempty" yaml:"deltaVVac,omitempty"`
	DeltaV    float64 `json:"deltaV,omitempty" yaml:"deltaV,omitempty"`
	BurnTime  string  `json:"burnTime" yaml:"burnTime"`
}

func newStagesCmd() *cobra.Command {
	opts := &stagesOptions{}
	cmd := &cobra.Command{
		Use:   "stages",
		Short: "Print the stage table of the vessel",
		Long: `Prints the assembly stage table with thrust-to-weight and delta-v
recomputed for the selected bodies. Rows default to the reference body;
--body changes every row and --select changes single rows by stage label.
With --flight the in-flight table of the active vessel is printed instead.`,
		Example: `  microengineer stages
  microengineer stages --body Mun
  microengineer stages --select 02=Duna,03=Ike -o json
  microengineer stages --flight --time 60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStages(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().StringVar(&opts.replay, "replay", "", "Read the vessel from the first frame of this recording")
	cmd.Flags().StringVar(&opts.body, "body", "", "Body for every row")
	cmd.Flags().StringToStringVar(&opts.selects, "select", nil, "Body per stage label, e.g. 02=Mun")
	cmd.Flags().BoolVar(&opts.flight, "flight", false, "Print the in-flight table instead")
	cmd.Flags().Float64Var(&opts.elapsed, "time", 0, "Simulated seconds to fly before printing")
	return cmd
}

func runStages(cmd *cobra.Command, opts *stagesOptions) error {
	format, err := cli.ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if opts.replay != "" {
		cfg.Telemetry.ReplayFile = opts.replay
	}
	bodies, err := newBodyTable(cfg)
	if err != nil {
		return err
	}
	snap, err := captureSnapshot(cfg, bodies, opts.elapsed)
	if err != nil {
		return err
	}

	printer := cli.NewPrinter(format)
	printer.Out = cmd.OutOrStdout()

	if opts.flight {
		var stages []staging.Stage
		if snap.DeltaV != nil {
			stages = snap.DeltaV.Stages
		}
		data, tbl := flightStageOutput(staging.FlightRows(stages))
		return printer.Print(data, tbl)
	}

	if snap.Assembly == nil || snap.Assembly.DeltaV == nil {
		return fmt.Errorf("no vessel assembly in telemetry")
	}
	table := staging.NewTable(bodies)
	table.Update(snap.Assembly.DeltaV.Stages)
	if err := applySelections(table, opts.body, opts.selects); err != nil {
		return err
	}
	data, tbl := assemblyStageOutput(table, snap.Assembly.Name)
	return printer.Print(data, tbl)
}

// captureSnapshot takes the first replay frame, or flies the simulator for
// elapsed seconds.
func captureSnapshot(cfg config.Config, bodies *celestial.Table, elapsed float64) (*telemetry.Snapshot, error) {
	source, err := newSource(cfg, bodies)
	if err != nil {
		return nil, err
	}
	if sim, ok := source.(*telemetry.Simulator); ok {
		for t := 0.0; t < elapsed; t += simulationStep {
			sim.Step(simulationStep)
		}
	}
	return source.Snapshot(), nil
}

// applySelections sets the body of every row, then the rows named by label.
func applySelections(table *staging.Table, body string, selects map[string]string) error {
	rows := table.Rows()
	if body != "" {
		for pos := range rows {
			if err := table.SelectBody(pos, body); err != nil {
				return err
			}
		}
		metrics.StageRecomputed(metrics.ReasonBody)
	}

	labels := make([]string, 0, len(selects))
	for label := range selects {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		pos := rowByLabel(rows, label)
		if pos < 0 {
			return fmt.Errorf("%w: no stage %s", staging.ErrStageOutOfRange, label)
		}
		if err := table.SelectBody(pos, selects[label]); err != nil {
			return err
		}
		metrics.StageRecomputed(metrics.ReasonBody)
	}
	return nil
}

// rowByLabel finds a row by its stage label, accepting "2" for "02".
func rowByLabel(rows []staging.Row, label string) int {
	label = strings.TrimSpace(label)
	for i, r := range rows {
		if r.Label == label || strings.TrimLeft(r.Label, "0") == strings.TrimLeft(label, "0") {
			return i
		}
	}
	return -1
}

func assemblyStageOutput(table *staging.Table, vessel string) ([]stageRowOutput, cli.Table) {
	decimals := table.TWRDecimals()
	rows := table.Rows()
	data := make([]stageRowOutput, 0, len(rows))
	tbl := cli.Table{
		Title:   fmt.Sprintf("Stages of %s", vessel),
		Headers: []string{"Stg", "TWR", "SLT", "∆v ASL", "∆v Vac", "Burn", "Body"},
	}

	var totalASL, totalVac float64
	for _, r := range rows {
		data = append(data, stageRowOutput{
			Stage:     r.Label,
			Body:      r.Body,
			TWR:       r.TWRVac,
			SLT:       r.TWRASL,
			DeltaVASL: r.DeltaVASL,
			DeltaVVac: r.DeltaVVac,
			BurnTime:  r.BurnTimeDisplay,
		})
		tbl.Rows = append(tbl.Rows, []string{
			r.Label,
			units.FormatNumberValue(r.TWRVac, decimals, units.FormatFixed),
			units.FormatNumberValue(r.TWRASL, decimals, units.FormatFixed),
			units.FormatNumberValue(r.DeltaVASL, 0, units.FormatNumber),
			units.FormatNumberValue(r.DeltaVVac, 0, units.FormatNumber),
			r.BurnTimeDisplay,
			r.BodyLabel,
		})
		totalASL += r.DeltaVASL
		totalVac += r.DeltaVVac
	}
	if len(rows) > 0 {
		tbl.Footer = []string{"Total", "", "",
			units.FormatNumberValue(totalASL, 0, units.FormatNumber),
			units.FormatNumberValue(totalVac, 0, units.FormatNumber), "", ""}
	}
	return data, tbl
}

func flightStageOutput(rows []staging.FlightRow) ([]stageRowOutput, cli.Table) {
	decimals := staging.TWRDecimals(staging.FlightTWRs(rows))
	data := make([]stageRowOutput, 0, len(rows))
	tbl := cli.Table{
		Title:   "Flight stages",
		Headers: []string{"Stg", "∆v", "TWR", "Burn"},
	}
	for _, r := range rows {
		data = append(data, stageRowOutput{
			Stage:    r.Label,
			TWR:      r.TWR,
			DeltaV:   r.DeltaV,
			BurnTime: r.BurnTimeDisplay,
		})
		tbl.Rows = append(tbl.Rows, []string{
			r.Label,
			units.FormatNumberValue(r.DeltaV, 0, units.FormatNumber),
			units.FormatNumberValue(r.TWR, decimals, units.FormatFixed),
			r.BurnTimeDisplay,
		})
	}
	return data, tbl
}
