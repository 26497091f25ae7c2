package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/gf256gen/pkg/gf256"
)

func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List all degree-8 primitive polynomials over GF(2)",
		Long: `Scan every degree-8 polynomial candidate and list the sixteen primitive
ones, any of which can drive GF(256) table generation. The QR code
polynomial 0x11D is marked.`,
		Example: `  gf256gen scan

  # Machine-readable list
  gf256gen scan --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbosity(cmd)
			out := cmd.OutOrStdout()

			polys := gf256.PrimitivePolynomials()

			if jsonOutput(cmd) {
				type entry struct {
					Polynomial string `json:"polynomial"`
					Algebraic  string `json:"algebraic"`
					QRDefault  bool   `json:"qr_default"`
				}
				entries := make([]entry, 0, len(polys))
				for _, p := range polys {
					entries = append(entries, entry{
						Polynomial: fmt.Sprintf("0x%X", p),
						Algebraic:  gf256.PolyString(p),
						QRDefault:  p == gf256.QRPoly,
					})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			cyan := color.New(color.FgCyan, color.Bold)
			green := color.New(color.FgGreen)

			fmt.Fprintln(out)
			fmt.Fprintln(out, cyan.Sprintf("Primitive polynomials of degree 8 (%d found):", len(polys)))
			fmt.Fprintln(out)
			for _, p := range polys {
				marker := " "
				if p == gf256.QRPoly {
					marker = green.Sprint("*")
				}
				fmt.Fprintf(out, "  %s 0x%X  %s\n", marker, p, gf256.PolyString(p))
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %s = QR code default\n", green.Sprint("*"))

			return nil
		},
	}

	return cmd
}
