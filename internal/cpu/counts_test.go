package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	total, err := TotalCount("32\n")
	require.NoError(t, err)
	assert.Equal(t, 32, total)

	physical, err := RealCount("4\n")
	require.NoError(t, err)
	assert.Equal(t, 4, physical)
}

func TestCountsWhitespace(t *testing.T) {
	// wc -l pads its output on Solaris
	total, err := TotalCount("      32\n")
	require.NoError(t, err)
	assert.Equal(t, 32, total)

	zero, err := RealCount("0")
	require.NoError(t, err)
	assert.Equal(t, 0, zero)
}

func TestCountsInvalid(t *testing.T) {
	cases := []string{"", "\n", "-1", "+4", "4 cpus", "four", "3.5", "99999999999999999999999"}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			_, err := TotalCount(input)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			assert.Equal(t, input, parseErr.Line)

			_, err = RealCount(input)
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}
