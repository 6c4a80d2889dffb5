package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/decker502/portfolio/pkg/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var frameRate int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Preview the portfolio page in the terminal",
	Long: `Renders the same page with terminal cells as pixels.

Keys: arrows / PgUp / PgDn scroll, g toggles pointer glow,
p switches the background preset, q or Esc quits.
Mouse clicks open links when the terminal reports mouse events.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&frameRate, "fps", tui.DefaultFrameRate, "frames per second")
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := loadContent(ctx)
	if err != nil {
		return err
	}
	defer c.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	runner, err := tui.NewRunner(screen, tui.Options{
		Content:   c.cfg,
		Preset:    preset,
		Seed:      seed,
		FrameRate: frameRate,
		Updates:   c.updates(),
	})
	if err != nil {
		return err
	}
	return runner.Run(ctx)
}
