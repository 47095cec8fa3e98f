package hdwallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivationPathString(t *testing.T) {
	tests := []struct {
		purpose, coinType, account, change, index uint32
		expected                                  string
	}{
		{44, 0, 0, 0, 0, "m/44'/0'/0'/0/0"},
		{44, 60, 0, 0, 0, "m/44'/60'/0'/0/0"},
		{44, 195, 2, 1, 7, "m/44'/195'/2'/1/7"},
		{49, 0, 0, 1, 3, "m/49'/0'/0'/1/3"},
		{84, 0, 1, 0, 10, "m/84'/0'/1'/0/10"},
		{86, 0, 0, 0, 0, "m/86'/0'/0'/0/0"},
	}

	for _, tt := range tests {
		path := NewBIP44Path(tt.purpose, tt.coinType, tt.account, tt.change, tt.index)
		assert.Equal(t, tt.expected, path.String())
	}

	assert.Equal(t, "", DerivationPath{}.String())
}
