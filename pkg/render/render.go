// Package render formats GF(256) lookup tables as source-code array
// literals for several target languages, and as NumPy binary files.
package render

import (
	"fmt"
	"strings"

	"github.com/Davincible/gf256gen/pkg/gf256"
)

// Supported output formats.
const (
	FormatRust = "rust"
	FormatGo   = "go"
	FormatC    = "c"
	FormatNpy  = "npy"
)

// Formats lists every supported output format.
func Formats() []string {
	return []string{FormatRust, FormatGo, FormatC, FormatNpy}
}

// Default table names as they appear in the emitted source.
const (
	DefaultExpName = "EXP_TABLE"
	DefaultLogName = "LOG_TABLE"
)

// Options controls source rendering.
type Options struct {
	Format  string
	ExpName string // name of the emitted exponent table
	LogName string // name of the emitted logarithm table
	Package string // package clause for the go target
}

const valuesPerLine = 16

// Header returns the two comment lines that precede the emitted tables:
// the tool line and the polynomial in algebraic and hex form. All supported
// source targets use line comments.
func Header(poly uint16) string {
	return fmt.Sprintf("// Generated Galois Field GF(256) lookup tables\n// Primitive polynomial: %s (0x%X)\n",
		gf256.PolyString(poly), poly)
}

// FormatTable renders a single 256-entry table as an array literal for the
// given target. Values are emitted 16 per line, right-aligned to 3
// characters, with a trailing comma after every value.
func FormatTable(format, name string, table [256]byte) (string, error) {
	var opening, closing, indent string
	switch format {
	case FormatRust:
		opening = fmt.Sprintf("const %s: [u8; 256] = [", name)
		closing = "];"
		indent = "    "
	case FormatGo:
		opening = fmt.Sprintf("var %s = [256]byte{", name)
		closing = "}"
		indent = "\t"
	case FormatC:
		opening = fmt.Sprintf("static const uint8_t %s[256] = {", name)
		closing = "};"
		indent = "    "
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}

	var b strings.Builder
	b.WriteString(opening)
	b.WriteByte('\n')
	for row := 0; row < 256; row += valuesPerLine {
		b.WriteString(indent)
		for col := 0; col < valuesPerLine; col++ {
			if col > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%3d", table[row+col])
		}
		b.WriteString(",\n")
	}
	b.WriteString(closing)
	b.WriteByte('\n')
	return b.String(), nil
}

// Source renders the complete generated document: header comments, an
// optional package clause for the go target, and both tables separated by a
// blank line. The output is deterministic, so repeated runs are
// byte-identical.
func Source(t *gf256.Tables, opts Options) (string, error) {
	expName := opts.ExpName
	if expName == "" {
		expName = DefaultExpName
	}
	logName := opts.LogName
	if logName == "" {
		logName = DefaultLogName
	}

	exp, err := FormatTable(opts.Format, expName, t.Exp)
	if err != nil {
		return "", err
	}
	log, err := FormatTable(opts.Format, logName, t.Log)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(Header(t.Poly))
	b.WriteByte('\n')
	if opts.Format == FormatGo {
		pkg := opts.Package
		if pkg == "" {
			pkg = "gf256"
		}
		fmt.Fprintf(&b, "package %s\n\n", pkg)
	}
	b.WriteString(exp)
	b.WriteByte('\n')
	b.WriteString(log)
	return b.String(), nil
}
