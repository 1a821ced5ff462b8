package cpu

import (
	"regexp"
	"strings"
	"unicode"
)

// x86 (GenuineIntel 206D7 family 6 model 45 step 7 clock 2600 MHz)
var flatHeaderRe = regexp.MustCompile(
	`^\s*\S+\s+\((\S+)\s+\S+\s+family\s+(\S+)\s+model\s+(\S+)\s+step\s+(\S+)\s+clock\s+(\S+)\s+MHz\)\s*$`)

type flatState int

const (
	flatIdle flatState = iota
	flatAwaitingBody
)

// ParseFlat parses x86 style psrinfo output, where every processor is a
// header line followed by an indented model name line.
func ParseFlat(text string) (Table, error) {
	table := Table{}
	state := flatIdle

	var (
		current    Processor
		headerNo   int
		headerLine string
	)

	for i, line := range splitLines(text) {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch state {
		case flatIdle:
			m := flatHeaderRe.FindStringSubmatch(line)
			if m == nil {
				return nil, parseErrorf(lineNo, line, "unexpected token, want processor header")
			}
			current = Processor{
				VendorID: m[1],
				Family:   m[2],
				Model:    m[3],
				Stepping: m[4],
				Mhz:      m[5],
			}
			headerNo, headerLine = lineNo, line
			state = flatAwaitingBody

		case flatAwaitingBody:
			if flatHeaderRe.MatchString(line) {
				return nil, parseErrorf(headerNo, headerLine, "processor header has no model name line")
			}
			if !startsWithSpace(line) {
				return nil, parseErrorf(lineNo, line, "model name line is not indented")
			}
			current.ModelName = strings.TrimSpace(line)
			table = append(table, current)
			state = flatIdle
		}
	}

	if state == flatAwaitingBody {
		return nil, parseErrorf(headerNo, headerLine, "processor header has no model name line")
	}
	return table, nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func startsWithSpace(line string) bool {
	return line != "" && unicode.IsSpace(rune(line[0]))
}
