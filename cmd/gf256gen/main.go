package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/gf256gen/internal/cli"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "gf256gen",
		Short: "GF(256) lookup-table generator for Reed-Solomon error correction",
		Long: `gf256gen computes the Galois Field GF(256) exponent and logarithm lookup
tables used by Reed-Solomon error correction (as in QR codes) and emits
them as static array literals.

Field multiplication then reduces to table lookups:
a*b = EXP[(LOG[a] + LOG[b]) mod 255] for nonzero a and b, and division
works the same way with subtraction of logarithms.

The generator is deterministic: repeated runs with the same polynomial
produce byte-identical output.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewGenerateCommand(),
		cli.NewVerifyCommand(),
		cli.NewScanCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
