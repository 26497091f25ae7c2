package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/gf256gen/pkg/gf256"
)

func TestWriteNpyRoundTrip(t *testing.T) {
	tables, err := gf256.Generate(gf256.QRPoly)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteNpy(&buf, tables.Exp))

	var got []uint8
	require.NoError(t, npyio.Read(&buf, &got))
	assert.Equal(t, tables.Exp[:], got)
}

func TestWriteNpyFiles(t *testing.T) {
	tables, err := gf256.Generate(gf256.QRPoly)
	require.NoError(t, err)

	prefix := filepath.Join(t.TempDir(), "tables")
	paths, err := WriteNpyFiles(tables, prefix)
	require.NoError(t, err)
	require.Equal(t, []string{prefix + "_exp.npy", prefix + "_log.npy"}, paths)

	for i, want := range [][256]byte{tables.Exp, tables.Log} {
		f, err := os.Open(paths[i])
		require.NoError(t, err)

		var got []uint8
		require.NoError(t, npyio.Read(f, &got))
		require.NoError(t, f.Close())
		assert.Equal(t, want[:], got, paths[i])
	}
}
