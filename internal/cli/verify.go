package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/gf256gen/internal/validation"
	"github.com/Davincible/gf256gen/pkg/gf256"
)

// checkResult is one verified table property.
type checkResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

func NewVerifyCommand() *cobra.Command {
	cfg := loadConfig()

	var polyStr string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the table invariants for a polynomial",
		Long: `Generate the GF(256) tables for a polynomial and check every structural
invariant: both log/exp round trips, the multiplicative identity, the
full-period permutation property, and the unused zero entries.

A non-primitive polynomial fails generation outright with an explanation.`,
		Example: `  # Verify the QR code polynomial
  gf256gen verify

  # The Rijndael polynomial is irreducible but not primitive
  gf256gen verify --poly 0x11B`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbosity(cmd)
			out := cmd.OutOrStdout()

			poly, err := validation.ParsePolynomial(polyStr)
			if err != nil {
				return err
			}

			tables, err := gf256.Generate(poly)
			if err != nil {
				if jsonOutput(cmd) {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					if encErr := enc.Encode(map[string]interface{}{
						"polynomial": fmt.Sprintf("0x%X", poly),
						"primitive":  false,
						"error":      err.Error(),
					}); encErr != nil {
						return encErr
					}
				} else {
					red := color.New(color.FgRed, color.Bold)
					fmt.Fprintln(out)
					fmt.Fprintln(out, red.Sprint("✗ Polynomial is not primitive"))
					fmt.Fprintf(out, "  %v\n", err)
				}
				return fmt.Errorf("polynomial 0x%X is not usable for GF(256)", poly)
			}

			results := runChecks(tables)

			if jsonOutput(cmd) {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"polynomial": fmt.Sprintf("0x%X", poly),
					"algebraic":  gf256.PolyString(poly),
					"primitive":  true,
					"checks":     results,
				})
			}

			green := color.New(color.FgGreen, color.Bold)
			yellow := color.New(color.FgYellow)

			fmt.Fprintln(out)
			fmt.Fprintln(out, green.Sprintf("✓ Polynomial 0x%X is primitive", poly))
			fmt.Fprintf(out, "  %s\n", gf256.PolyString(poly))
			fmt.Fprintln(out)
			fmt.Fprintln(out, yellow.Sprint("Table invariants:"))
			for _, r := range results {
				fmt.Fprintf(out, "  %s %s\n", green.Sprint("✓"), r.Name)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&polyStr, "poly", "p", cfg.Defaults.Polynomial, "Primitive polynomial (hex or decimal)")

	return cmd
}

// runChecks runs the individual invariant checks on a generated table pair.
// Generation already rejects non-primitive polynomials, so these document
// the guarantees rather than hunt for failures.
func runChecks(t *gf256.Tables) []checkResult {
	results := []checkResult{
		{Name: "multiplicative identity (Exp[0] == 1)", Passed: t.Exp[0] == 1},
		{Name: "unused entries zero (Exp[255], Log[0])", Passed: t.Exp[255] == 0 && t.Log[0] == 0},
	}

	expRoundTrip := true
	for i := 0; i < gf256.Order; i++ {
		if t.Log[t.Exp[i]] != byte(i) {
			expRoundTrip = false
			break
		}
	}
	results = append(results, checkResult{Name: "Log[Exp[i]] == i for all i in [0,254]", Passed: expRoundTrip})

	logRoundTrip := true
	for v := 1; v < 256; v++ {
		if t.Exp[t.Log[v]] != byte(v) {
			logRoundTrip = false
			break
		}
	}
	results = append(results, checkResult{Name: "Exp[Log[v]] == v for all nonzero v", Passed: logRoundTrip})

	var seen [256]bool
	permutation := true
	for i := 0; i < gf256.Order; i++ {
		v := t.Exp[i]
		if v == 0 || seen[v] {
			permutation = false
			break
		}
		seen[v] = true
	}
	results = append(results, checkResult{Name: "Exp[0..254] is a permutation of {1..255}", Passed: permutation})

	return results
}
