package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Davincible/gf256gen/pkg/config"
	"github.com/Davincible/gf256gen/pkg/gf256"
)

// loadConfig returns the user config, falling back to defaults when the
// file is missing or unreadable. Config problems are logged, not fatal.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		return config.DefaultConfig()
	}
	if !cfg.UI.UseColor {
		color.NoColor = true
	}
	return cfg
}

// applyVerbosity raises the default log level when --verbose is set.
func applyVerbosity(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}

// jsonOutput reads the persistent --json flag.
func jsonOutput(cmd *cobra.Command) bool {
	j, _ := cmd.Flags().GetBool("json")
	return j
}

// stdoutIsTerminal reports whether stdout is attached to a terminal, so
// that generated code piped to a file or another process stays byte-clean
// while interactive runs still get a summary.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// printGenerateSummary writes a short colored summary to stderr after an
// interactive generate run.
func printGenerateSummary(t *gf256.Tables, format string) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)

	fmt.Fprintln(os.Stderr)
	cyan.Fprintln(os.Stderr, "=== GF(256) TABLES GENERATED ===")
	fmt.Fprintf(os.Stderr, "  Polynomial: %s (0x%X)\n", gf256.PolyString(t.Poly), t.Poly)
	fmt.Fprintf(os.Stderr, "  Format:     %s\n", format)
	green.Fprintln(os.Stderr, "  All table invariants verified")
}
