package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArch(t *testing.T) {
	cases := map[string]Arch{
		"i386\n":  X86,
		"i86pc":   X86,
		"amd64":   X86,
		"x86":     X86,
		"sparc\n": Sparc,
		"SPARC":   Sparc,
		" sun4v ": Sparc,
	}
	for input, expected := range cases {
		arch, err := ParseArch(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, arch, input)
	}

	_, err := ParseArch("powerpc\n")
	assert.ErrorContains(t, err, `"powerpc"`)

	_, err = ParseArch("")
	assert.Error(t, err)
}

func TestValidateSupport(t *testing.T) {
	if IsSupported() {
		assert.NoError(t, ValidateSupport())
	} else {
		assert.ErrorContains(t, ValidateSupport(), string(GetOS()))
	}
}
