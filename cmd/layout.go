package cmd

import (
	"fmt"
	"strings"

	"microengineer/internal/celestial"
	"microengineer/internal/cli"
	"microengineer/internal/layout"
	"microengineer/pkg/logging"

	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	var layoutFile string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect or reset the saved panel layout",
		Long: `Shows the saved panel layout, prints its location or writes the
default layout over it.`,
	}
	cmd.PersistentFlags().StringVar(&layoutFile, "layout", "", "Layout file")

	resolve := func(cmd *cobra.Command) (string, *celestial.Table, error) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return "", nil, err
		}
		if layoutFile != "" {
			cfg.Dashboard.LayoutFile = layoutFile
		}
		path, err := cfg.LayoutPath()
		if err != nil {
			return "", nil, err
		}
		bodies, err := newBodyTable(cfg)
		if err != nil {
			return "", nil, err
		}
		return path, bodies, nil
	}

	var output string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the panels of the saved layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			path, bodies, err := resolve(cmd)
			if err != nil {
				return err
			}
			l := layout.New(bodies)
			if err := l.Load(path); err != nil {
				return err
			}
			printer := cli.NewPrinter(format)
			printer.Out = cmd.OutOrStdout()
			return printer.Print(l.Document(), layoutTable(l))
		},
	}
	show.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Write the default layout to the layout file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, bodies, err := resolve(cmd)
			if err != nil {
				return err
			}
			if err := layout.New(bodies).Save(path); err != nil {
				return err
			}
			logging.Info(cliSubsystem, "Default layout written to %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Layout reset: %s\n", path)
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the layout file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if layoutFile != "" {
				cfg.Dashboard.LayoutFile = layoutFile
			}
			path, err := cfg.LayoutPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.AddCommand(show, reset, pathCmd)
	return cmd
}

func layoutTable(l *layout.Layout) cli.Table {
	tbl := cli.Table{
		Title:   "Panels",
		Headers: []string{"Name", "Abbr", "Role", "Entries", "Active in", "Locked"},
	}
	for _, p := range l.Panels() {
		var active []string
		for _, ctx := range layout.Contexts() {
			if p.IsActive(ctx) {
				state := ctx.String()
				if p.IsPoppedOut(ctx) {
					state += " (popped out)"
				}
				active = append(active, state)
			}
		}
		locked := ""
		if p.Locked {
			locked = "yes"
		}
		tbl.Rows = append(tbl.Rows, []string{
			p.Name,
			p.Abbreviation,
			p.Role.String(),
			fmt.Sprint(p.Len()),
			strings.Join(active, ", "),
			locked,
		})
	}
	return tbl
}
