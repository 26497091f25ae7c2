package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolynomial(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint16
		wantErr string
	}{
		{name: "Hex QR polynomial", input: "0x11D", want: 0x11D},
		{name: "Hex lowercase", input: "0x11d", want: 0x11D},
		{name: "Decimal", input: "285", want: 0x11D},
		{name: "Whitespace trimmed", input: "  0x11D ", want: 0x11D},
		{name: "Empty", input: "", wantErr: "cannot be empty"},
		{name: "Garbage", input: "poly", wantErr: "invalid polynomial"},
		{name: "Missing degree-8 bit", input: "0x1D", wantErr: "degree-8 bit"},
		{name: "Degree too high", input: "0x21D", wantErr: "degree greater than 8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolynomial(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, ValidateTableName("EXP_TABLE"))
	assert.NoError(t, ValidateTableName("_gf_exp"))
	assert.NoError(t, ValidateTableName("expTable2"))

	assert.Error(t, ValidateTableName(""))
	assert.Error(t, ValidateTableName("2exp"))
	assert.Error(t, ValidateTableName("exp-table"))
	assert.Error(t, ValidateTableName("exp table"))
}

func TestValidatePackageName(t *testing.T) {
	assert.NoError(t, ValidatePackageName("gf256"))
	assert.NoError(t, ValidatePackageName("rs"))

	assert.Error(t, ValidatePackageName(""))
	assert.Error(t, ValidatePackageName("GF256"))
	assert.Error(t, ValidatePackageName("my-pkg"))
}
