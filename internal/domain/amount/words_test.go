package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{1, "Un"},
		{17, "Dix Sept"},
		{20, "Vingt"},
		{21, "Vingt Et Un"},
		{31, "Trente Et Un"},
		{61, "Soixante Et Un"},
		{70, "Soixante Dix"},
		{71, "Soixante Et Onze"},
		{79, "Soixante Dix Neuf"},
		{80, "Quatre Vingt"},
		{81, "Quatre Vingt Un"},
		{90, "Quatre Vingt Dix"},
		{91, "Quatre Vingt Onze"},
		{99, "Quatre Vingt Dix Neuf"},
		{100, "Cent"},
		{101, "Cent Un"},
		{200, "Deux Cent"},
		{371, "Trois Cent Soixante Et Onze"},
		{1000, "Mille"},
		{1001, "Mille Un"},
		{2000, "Deux Mille"},
		{3760, "Trois Mille Sept Cent Soixante"},
		{80000, "Quatre Vingt Mille"},
		{1_000_000, "Un Million"},
		{2_000_000, "Deux Millions"},
		{1_234_567, "Un Million Deux Cent Trente Quatre Mille Cinq Cent Soixante Sept"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Words(tc.n), "Words(%d)", tc.n)
	}
}

func TestWordsNegativeClampsToZero(t *testing.T) {
	assert.Equal(t, "Zero", Words(-5))
}
