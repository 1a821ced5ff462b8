package cpu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/astoltz/ohai/internal/platform"
)

// Format selects the psrinfo report grammar.
type Format int

const (
	// Flat is the x86 header plus model name line pairing.
	Flat Format = iota
	// Hierarchical is the sparc physical processor, core, descriptor tree.
	Hierarchical
)

func (f Format) String() string {
	switch f {
	case Flat:
		return "flat"
	case Hierarchical:
		return "hierarchical"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// FormatFor returns the report format psrinfo uses on arch.
func FormatFor(arch platform.Arch) (Format, error) {
	switch arch {
	case platform.X86:
		return Flat, nil
	case platform.Sparc:
		return Hierarchical, nil
	default:
		return 0, fmt.Errorf("no psrinfo format for architecture %q", arch)
	}
}

// CountsText is the captured output of the two count commands.
type CountsText struct {
	Total string
	Real  string
}

// Assemble parses the counts and the processor report into an Inventory.
// The counts are reported as given, even when they disagree with the
// number of records in the table.
func Assemble(counts CountsText, body string, format Format) (*Inventory, error) {
	var parse func(string) (Table, error)
	switch format {
	case Flat:
		parse = ParseFlat
	case Hierarchical:
		parse = ParseHierarchical
	default:
		return nil, fmt.Errorf("cpu: unknown report format %v", format)
	}

	total, err := TotalCount(counts.Total)
	if err != nil {
		return nil, err
	}
	physical, err := RealCount(counts.Real)
	if err != nil {
		return nil, err
	}
	table, err := parse(body)
	if err != nil {
		return nil, err
	}

	return &Inventory{
		Counts: Counts{Total: total, Real: physical},
		Table:  table,
	}, nil
}

// Map renders the inventory the way a host inventory stores it: counts
// under "total" and "real", each processor under its index.
func (inv *Inventory) Map() map[string]any {
	m := make(map[string]any, len(inv.Table)+2)
	m["total"] = inv.Counts.Total
	m["real"] = inv.Counts.Real
	for i, p := range inv.Table {
		m[strconv.Itoa(i)] = p.Fields()
	}
	return m
}

// Publish stores the inventory in host under "cpu".
func (inv *Inventory) Publish(host map[string]any) {
	host["cpu"] = inv.Map()
}

// MarshalJSON writes the Map shape with keys in index order.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"total":%d,"real":%d`, inv.Counts.Total, inv.Counts.Real)
	for i, p := range inv.Table {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, `,"%d":`, i)
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
