package cmd

import (
	"microengineer/internal/cli"
	"microengineer/internal/entry"

	"github.com/spf13/cobra"
)

type entryOutput struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Kind        string `json:"kind" yaml:"kind"`
	Unit        string `json:"unit,omitempty" yaml:"unit,omitempty"`
	AltUnit     string `json:"altUnit,omitempty" yaml:"altUnit,omitempty"`
	Default     bool   `json:"default" yaml:"default"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func newEntriesCmd() *cobra.Command {
	var output, category string
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List the telemetry entries panels can show",
		Long: `Lists every entry by category. Default entries are the ones the
category's panel starts with; the rest can be added in edit mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			categories := entry.Categories()
			if category != "" {
				c, err := entry.ParseCategory(category)
				if err != nil {
					return err
				}
				categories = []entry.Category{c}
			}

			printer := cli.NewPrinter(format)
			printer.Out = cmd.OutOrStdout()
			data, tbl := entriesOutput(entry.BuildAll(), categories)
			return printer.Print(data, tbl)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().StringVar(&category, "category", "", "Only list this category")
	return cmd
}

func entriesOutput(set *entry.Set, categories []entry.Category) ([]entryOutput, cli.Table) {
	var data []entryOutput
	tbl := cli.Table{Headers: []string{"Category", "Name", "Unit", "Default", "Description"}}
	for _, c := range categories {
		for _, e := range set.ByCategory(c) {
			if e.IsSeparator() {
				continue
			}
			out := entryOutput{
				Name:        e.Name,
				Category:    c.String(),
				Kind:        e.Kind.String(),
				Unit:        e.Units.Base,
				Default:     e.IsDefault,
				Description: e.Description,
			}
			if e.HasAltUnit() {
				out.AltUnit = e.Units.Alt.Symbol
			}
			data = append(data, out)

			unit := out.Unit
			if out.AltUnit != "" {
				unit += " / " + out.AltUnit
			}
			def := ""
			if e.IsDefault {
				def = "yes"
			}
			tbl.Rows = append(tbl.Rows, []string{c.String(), e.Name, unit, def, e.Description})
		}
	}
	return data, tbl
}
