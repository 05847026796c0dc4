package cmd

import (
	"fmt"

	"microengineer/internal/celestial"
	"microengineer/internal/cli"
	"microengineer/internal/units"

	"github.com/spf13/cobra"
)

type bodyOutput struct {
	Name           string  `json:"name" yaml:"name"`
	Label          string  `json:"label" yaml:"label"`
	SurfaceGravity float64 `json:"surfaceGravity" yaml:"surfaceGravity"`
	TWRFactor      float64 `json:"twrFactor" yaml:"twrFactor"`
	SurfaceDensity float64 `json:"surfaceDensity" yaml:"surfaceDensity"`
	AtmosphereTop  float64 `json:"atmosphereTop,omitempty" yaml:"atmosphereTop,omitempty"`
	Reference      bool    `json:"reference,omitempty" yaml:"reference,omitempty"`
}

func newBodiesCmd() *cobra.Command {
	var output string
	var export bool
	cmd := &cobra.Command{
		Use:   "bodies",
		Short: "List the celestial bodies available for stage figures",
		Long: `Lists the bodies the stage table can recompute against, with surface
gravity, the TWR factor relative to the reference body and the sea-level
atmospheric density. --export writes the table as a catalogue file that
bodies.catalogueFile can point to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			bodies, err := newBodyTable(cfg)
			if err != nil {
				return err
			}
			if export {
				data, err := celestial.MarshalCatalogue(bodies.Bodies())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			printer := cli.NewPrinter(format)
			printer.Out = cmd.OutOrStdout()
			data, tbl := bodiesOutput(bodies)
			return printer.Print(data, tbl)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&export, "export", false, "Write the bodies as a YAML catalogue")
	return cmd
}

func bodiesOutput(bodies *celestial.Table) ([]bodyOutput, cli.Table) {
	all := bodies.Bodies()
	data := make([]bodyOutput, 0, len(all))
	tbl := cli.Table{
		Title:   fmt.Sprintf("Bodies (reference %s)", bodies.ReferenceName()),
		Headers: []string{"Name", "Gravity m/s²", "TWR factor", "Density kg/m³", "Atmosphere"},
	}
	for _, b := range all {
		factor, err := bodies.TWRFactor(b.Name)
		if err != nil {
			factor = 1
		}
		data = append(data, bodyOutput{
			Name:           b.Name,
			Label:          b.Label(),
			SurfaceGravity: b.SurfaceGravity(),
			TWRFactor:      factor,
			SurfaceDensity: b.SurfaceDensity(),
			AtmosphereTop:  b.Atmosphere.Top(),
			Reference:      b.Name == bodies.ReferenceName(),
		})

		atmosphere := "-"
		if b.HasAtmosphere() {
			atmosphere = units.Format(b.Atmosphere.Top(), units.Spec{Base: "m", Kilo: "km"}, 0, units.FormatNumber).String()
		}
		name := b.Label()
		if b.Name == bodies.ReferenceName() {
			name += " *"
		}
		tbl.Rows = append(tbl.Rows, []string{
			name,
			units.FormatNumberValue(b.SurfaceGravity(), 2, units.FormatFixed),
			units.FormatNumberValue(factor, 3, units.FormatFixed),
			units.FormatNumberValue(b.SurfaceDensity(), 3, units.FormatFixed),
			atmosphere,
		})
	}
	tbl.Footer = []string{"Total", fmt.Sprint(len(all)), "", "", ""}
	return data, tbl
}
