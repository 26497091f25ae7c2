package render

import (
	"fmt"
	"io"
	"os"

	"github.com/sbinet/npyio"

	"github.com/Davincible/gf256gen/pkg/gf256"
)

// WriteNpy writes a single table to w as a 256-element uint8 NumPy array.
func WriteNpy(w io.Writer, table [256]byte) error {
	return npyio.Write(w, table[:])
}

// WriteNpyFiles writes both tables of t as <prefix>_exp.npy and
// <prefix>_log.npy and returns the two paths written.
func WriteNpyFiles(t *gf256.Tables, prefix string) ([]string, error) {
	paths := []string{prefix + "_exp.npy", prefix + "_log.npy"}
	tables := [][256]byte{t.Exp, t.Log}

	for i, path := range paths {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := WriteNpy(f, tables[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("failed to close %s: %w", path, err)
		}
	}

	return paths, nil
}
