package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/gridscroll"
)

// layoutReport is the YAML printed by the layout command.
type layoutReport struct {
	Layout      gridscroll.Layout `yaml:"layout"`
	Width       float64           `yaml:"width"`
	Items       int               `yaml:"items"`
	Rows        int               `yaml:"rows"`
	RowHeight   float64           `yaml:"row_height"`
	ContentSize float64           `yaml:"content_size"`
	MaxScroll   float64           `yaml:"max_scroll"`
}

func (a *app) layoutCmd() *cobra.Command {
	var (
		items int
		width float64
		save  string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the effective layout and the scroll extent it produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("items") {
				cfg.Items = items
			}
			if cmd.Flags().Changed("width") {
				cfg.Viewport.Width = width
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if save != "" {
				if err := cfg.Save(save); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", save)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(newLayoutReport(cfg.ResponsiveLayout(), cfg.Viewport.Width, cfg.Viewport.Height, cfg.Items)); err != nil {
				return fmt.Errorf("failed to encode layout: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 0, "Number of items (default from config)")
	cmd.Flags().Float64Var(&width, "width", 0, "Viewport width in pixels, picks the columns (default from config)")
	cmd.Flags().StringVar(&save, "save", "", "Also write the effective config to this file")
	return cmd
}

func newLayoutReport(l gridscroll.Layout, width, height float64, items int) layoutReport {
	rows := 0
	if l.Columns > 0 {
		rows = (items + l.Columns - 1) / l.Columns
	}
	total := gridscroll.ContentSize(items, l)
	return layoutReport{
		Layout:      l,
		Width:       width,
		Items:       items,
		Rows:        rows,
		RowHeight:   l.RowHeight(),
		ContentSize: total,
		MaxScroll:   max(0, total-height),
	}
}
