package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-theft-auto/gridscroll"
	"github.com/go-theft-auto/gridscroll/backend/terminal"
)

func (a *app) tuiCmd() *cobra.Command {
	var items int
	var smooth bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Scroll a grid interactively in the terminal",
		Long: `Opens a full-screen grid of numbered items. The pixel layout from the
config is scaled to terminal lines and columns follow the breakpoints.

Keys: arrows or j/k scroll a row, pgup/pgdn a page, : jumps to an index,
n changes the item count, s toggles smooth jumps, ? shows all keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("items") {
				items = a.cfg.Items
			}
			behavior := a.cfg.ScrollBehavior()
			if cmd.Flags().Changed("smooth") {
				behavior = gridscroll.ScrollInstant
				if smooth {
					behavior = gridscroll.ScrollSmooth
				}
			}

			// Log lines would tear the alternate screen.
			logger := a.logger
			if a.logFile == "" {
				logger = zap.NewNop()
			}

			s, err := gridscroll.New(
				gridscroll.WithLayout(terminal.ScaleLayout(a.cfg.Layout)),
				gridscroll.WithLogger(logger.Named("tui")),
			)
			if err != nil {
				return fmt.Errorf("failed to create strategy: %w", err)
			}

			m := terminal.New(s, items, a.cfg.Breakpoints, behavior)
			defer m.Close()

			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 0, "Number of items (default from config)")
	cmd.Flags().BoolVar(&smooth, "smooth", false, "Animate index jumps (default from config)")
	return cmd
}
