package gamecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Format(t *testing.T) {
	gen := New()

	for i := 0; i < 100; i++ {
		code := gen.Generate()

		assert.Len(t, code, len(Prefix)+6)
		assert.True(t, strings.HasPrefix(code, Prefix))

		for _, r := range code[len(Prefix):] {
			assert.Contains(t, Alphabet, string(r))
		}
	}
}

func TestAlphabet_ExcludesConfusableCharacters(t *testing.T) {
	for _, c := range []string{"0", "O", "1", "I"} {
		assert.NotContains(t, Alphabet, c)
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "FRNDABC234", Canonical("frndabc234"))
	assert.Equal(t, "FRNDABC234", Canonical("  FrndABC234 "))
	assert.Equal(t, "", Canonical(""))
}
