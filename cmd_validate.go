package main

import (
	"fmt"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check portfolio YAML files without opening a window",
	Long: `Parses each file, fills defaults and runs the same validation the
page does on load. Exits non-zero when any file is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		cfg, err := config.LoadPortfolioConfig(path)
		if err != nil {
			fmt.Fprintf(out, "❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "✅ %s: %d labels, %d projects, preset %s\n",
			path, len(cfg.Labels), len(cfg.Projects), cfg.Starfield.Preset)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(args))
	}
	return nil
}
