package cpu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// The physical processor has 4 cores and 8 virtual processors (32-39)
	physicalRe = regexp.MustCompile(
		`^\s*The physical processor has (?:([0-9]+) cores? and )?([0-9]+) virtual processors? \(([^)]*)\)\s*$`)
	// The core has 2 virtual processors (32 33)
	coreRe = regexp.MustCompile(
		`^\s*The core has ([0-9]+) virtual processors? \(([^)]*)\)\s*$`)
	// SPARC64-VII (portid 1056 impl 0x7 ver 0x91 clock 2400 MHz)
	descriptorRe = regexp.MustCompile(
		`^\s*(\S+)\s+\(.*\bclock\s+(\S+)\s+MHz\)\s*$`)
)

type blockState int

const (
	blockIdle blockState = iota
	blockInside
)

// physicalBlock accumulates one physical processor until its descriptor.
// wantCores is the "N cores and" clause, -1 when the line has none.
type physicalBlock struct {
	lineNo    int
	line      string
	declared  int
	wantCores int
	cores     int
	coreSum   int
}

// ParseHierarchical parses sparc style `psrinfo -v -p` output. Each
// physical processor block yields one record per virtual processor, all
// carrying the block's model name and clock.
func ParseHierarchical(text string) (Table, error) {
	table := Table{}
	state := blockIdle
	var block physicalBlock

	for i, line := range splitLines(text) {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := physicalRe.FindStringSubmatch(line); m != nil {
			if state == blockInside {
				return nil, parseErrorf(block.lineNo, block.line, "physical processor block has no descriptor line")
			}
			declared, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, parseErrorf(lineNo, line, "bad virtual processor count")
			}
			ids, err := countIDs(m[3])
			if err != nil {
				return nil, parseErrorf(lineNo, line, "bad virtual processor ids: %v", err)
			}
			if ids != declared {
				return nil, parseErrorf(lineNo, line, "declares %d virtual processors but lists %d ids", declared, ids)
			}
			wantCores := -1
			if m[1] != "" {
				if wantCores, err = strconv.Atoi(m[1]); err != nil {
					return nil, parseErrorf(lineNo, line, "bad core count")
				}
			}
			block = physicalBlock{lineNo: lineNo, line: line, declared: declared, wantCores: wantCores}
			state = blockInside
			continue
		}

		if m := coreRe.FindStringSubmatch(line); m != nil {
			if state != blockInside {
				return nil, parseErrorf(lineNo, line, "core line outside a physical processor block")
			}
			declared, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, parseErrorf(lineNo, line, "bad virtual processor count")
			}
			ids, err := countIDs(m[2])
			if err != nil {
				return nil, parseErrorf(lineNo, line, "bad virtual processor ids: %v", err)
			}
			if ids != declared {
				return nil, parseErrorf(lineNo, line, "core declares %d virtual processors but lists %d ids", declared, ids)
			}
			block.cores++
			block.coreSum += ids
			continue
		}

		if m := descriptorRe.FindStringSubmatch(line); m != nil {
			if state != blockInside {
				return nil, parseErrorf(lineNo, line, "descriptor line outside a physical processor block")
			}
			// Only lines without a cores clause may omit their core lines.
			if (block.wantCores >= 0 || block.cores > 0) && block.coreSum != block.declared {
				return nil, parseErrorf(block.lineNo, block.line,
					"cores hold %d virtual processors, physical processor declares %d", block.coreSum, block.declared)
			}
			if block.wantCores >= 0 && block.cores != block.wantCores {
				return nil, parseErrorf(block.lineNo, block.line,
					"declares %d cores but lists %d", block.wantCores, block.cores)
			}
			desc := Processor{ModelName: m[1], Mhz: m[2]}
			for n := 0; n < block.declared; n++ {
				table = append(table, desc)
			}
			state = blockIdle
			continue
		}

		return nil, parseErrorf(lineNo, line, "unexpected token")
	}

	if state == blockInside {
		return nil, parseErrorf(block.lineNo, block.line, "physical processor block has no descriptor line")
	}
	return table, nil
}

// countIDs counts the processor ids in a list such as "32 33", "32-39"
// or "0, 4-6".
func countIDs(list string) (int, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	total := 0
	for _, field := range fields {
		lo, hi, isRange := strings.Cut(field, "-")
		first, err := strconv.Atoi(lo)
		if err != nil {
			return 0, fmt.Errorf("invalid id %q", field)
		}
		if !isRange {
			total++
			continue
		}
		last, err := strconv.Atoi(hi)
		if err != nil || last < first {
			return 0, fmt.Errorf("invalid id range %q", field)
		}
		total += last - first + 1
	}
	return total, nil
}
