package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlat(t *testing.T) {
	table, err := ParseFlat(x86Body)
	require.NoError(t, err)

	expected := Table{
		{
			VendorID:  "GenuineIntel",
			Family:    "6",
			Model:     "45",
			Stepping:  "7",
			Mhz:       "2600",
			ModelName: "Intel(r) Xeon(r) CPU E5-2670 0 @ 2.60GHz",
		},
		{
			VendorID:  "CrazyTown",
			Family:    "12",
			Model:     "93",
			Stepping:  "9",
			Mhz:       "2900",
			ModelName: "Intel(r) Xeon(r) CPU E5-2690 0 @ 2.90GHz",
		},
	}
	assert.Equal(t, expected, table)

	for _, p := range table {
		assert.Len(t, p.Fields(), 6)
	}
}

func TestParseFlatBlankLines(t *testing.T) {
	input := "\nx86 (GenuineIntel 206D7 family 6 model 45 step 7 clock 2600 MHz)\n" +
		"  Intel(r) Xeon(r) CPU E5-2670 0 @ 2.60GHz\n\n\n" +
		"x86 (GenuineIntel 206D7 family 6 model 45 step 7 clock 2600 MHz)\r\n" +
		"  Intel(r) Xeon(r) CPU E5-2670 0 @ 2.60GHz\r\n"

	table, err := ParseFlat(input)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, table[0], table[1])
	assert.Equal(t, "Intel(r) Xeon(r) CPU E5-2670 0 @ 2.60GHz", table[1].ModelName)
}

func TestParseFlatEmpty(t *testing.T) {
	table, err := ParseFlat("")
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestParseFlatIdempotent(t *testing.T) {
	first, err := ParseFlat(x86Body)
	require.NoError(t, err)
	second, err := ParseFlat(x86Body)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseFlatErrors(t *testing.T) {
	header := "x86 (GenuineIntel 206D7 family 6 model 45 step 7 clock 2600 MHz)"
	body := "  Intel(r) Xeon(r) CPU E5-2670 0 @ 2.60GHz"

	cases := []struct {
		name   string
		input  string
		lineNo int
		reason string
	}{
		{
			name:   "missing model name at end",
			input:  header + "\n" + body + "\n" + header,
			lineNo: 3,
			reason: "no model name line",
		},
		{
			name:   "header followed by header",
			input:  header + "\n" + header + "\n" + body,
			lineNo: 1,
			reason: "no model name line",
		},
		{
			name:   "unindented model name",
			input:  header + "\nIntel(r) Xeon(r) CPU E5-2670 0 @ 2.60GHz",
			lineNo: 2,
			reason: "not indented",
		},
		{
			name:   "missing stepping",
			input:  "x86 (GenuineIntel 206D7 family 6 model 45 clock 2600 MHz)\n" + body,
			lineNo: 1,
			reason: "unexpected token",
		},
		{
			name:   "body without header",
			input:  body,
			lineNo: 1,
			reason: "unexpected token",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := ParseFlat(tc.input)
			assert.Nil(t, table)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.lineNo, parseErr.LineNo)
			assert.Contains(t, parseErr.Reason, tc.reason)
		})
	}
}
