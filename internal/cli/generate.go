package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Davincible/gf256gen/internal/validation"
	"github.com/Davincible/gf256gen/pkg/gf256"
	"github.com/Davincible/gf256gen/pkg/render"
)

func NewGenerateCommand() *cobra.Command {
	cfg := loadConfig()

	var (
		polyStr string
		format  string
		output  string
		expName string
		logName string
		pkgName string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate GF(256) exp/log lookup tables as source code",
		Long: `Generate the exponent and logarithm lookup tables for GF(256) under a
primitive polynomial and emit them as a static array literal, ready to be
compiled into a Reed-Solomon encoder or decoder.

The default polynomial 0x11D (x^8 + x^4 + x^3 + x^2 + 1) is the one used by
QR code error correction. Non-primitive polynomials are rejected: they
cannot produce a bijective table pair.`,
		Example: `  # Emit Rust tables for the QR code polynomial
  gf256gen generate

  # Emit a Go source file for a different primitive polynomial
  gf256gen generate --poly 0x12B --format go --package rs --output tables.go

  # Emit C tables with custom names
  gf256gen generate --format c --exp-name gf_exp --log-name gf_log

  # Emit NumPy binary tables (writes tables_exp.npy and tables_log.npy)
  gf256gen generate --format npy --output tables`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbosity(cmd)

			poly, err := validation.ParsePolynomial(polyStr)
			if err != nil {
				return err
			}
			if err := validation.ValidateTableName(expName); err != nil {
				return err
			}
			if err := validation.ValidateTableName(logName); err != nil {
				return err
			}
			if format == render.FormatGo {
				if err := validation.ValidatePackageName(pkgName); err != nil {
					return err
				}
			}

			slog.Debug("Generating tables", "polynomial", fmt.Sprintf("0x%X", poly), "format", format)

			tables, err := gf256.Generate(poly)
			if err != nil {
				return fmt.Errorf("failed to generate tables: %w", err)
			}

			if format == render.FormatNpy {
				if output == "" {
					return fmt.Errorf("npy output requires --output as a file prefix")
				}
				paths, err := render.WriteNpyFiles(tables, output)
				if err != nil {
					return err
				}
				for _, path := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				}
				return nil
			}

			src, err := render.Source(tables, render.Options{
				Format:  format,
				ExpName: expName,
				LogName: logName,
				Package: pkgName,
			})
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(src), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			} else {
				fmt.Fprint(cmd.OutOrStdout(), src)
			}

			if stdoutIsTerminal() || output != "" {
				printGenerateSummary(tables, format)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&polyStr, "poly", "p", cfg.Defaults.Polynomial, "Primitive polynomial (hex or decimal)")
	cmd.Flags().StringVarP(&format, "format", "f", cfg.Defaults.Format, "Output format (rust, go, c, npy)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (npy: file prefix); default stdout")
	cmd.Flags().StringVar(&expName, "exp-name", cfg.Defaults.ExpName, "Name of the emitted exponent table")
	cmd.Flags().StringVar(&logName, "log-name", cfg.Defaults.LogName, "Name of the emitted logarithm table")
	cmd.Flags().StringVar(&pkgName, "package", cfg.Defaults.Package, "Package clause for the go format")

	return cmd
}
