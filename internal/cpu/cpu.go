package cpu

import (
	"context"
	"time"

	"github.com/astoltz/ohai/internal/platform"
	"github.com/go-logr/logr"
)

// Record keys used when publishing a Processor into a host inventory.
const (
	KeyVendorID  = "vendor_id"
	KeyFamily    = "family"
	KeyModel     = "model"
	KeyStepping  = "stepping"
	KeyModelName = "model_name"
	KeyMhz       = "mhz"
)

// Counts holds the logical and physical processor counts
type Counts struct {
	Total int `json:"total"`
	Real  int `json:"real"`
}

// Processor describes one logical processor. Fields a report format does
// not carry are left empty and omitted when published.
type Processor struct {
	VendorID  string `json:"vendor_id,omitempty"`
	Family    string `json:"family,omitempty"`
	Model     string `json:"model,omitempty"`
	Stepping  string `json:"stepping,omitempty"`
	ModelName string `json:"model_name,omitempty"`
	Mhz       string `json:"mhz,omitempty"`
}

// Fields returns the processor's attributes keyed by their inventory names.
func (p Processor) Fields() map[string]string {
	fields := make(map[string]string, 6)
	set := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}
	set(KeyVendorID, p.VendorID)
	set(KeyFamily, p.Family)
	set(KeyModel, p.Model)
	set(KeyStepping, p.Stepping)
	set(KeyModelName, p.ModelName)
	set(KeyMhz, p.Mhz)
	return fields
}

// Table is the ordered list of logical processors. A processor's index is
// its position in the table.
type Table []Processor

// Inventory is the CPU section of a host inventory
type Inventory struct {
	Counts Counts
	Table  Table
}

// Reader interface for CPU inventory collection
type Reader interface {
	GetInventory(ctx context.Context) (*Inventory, error)
}

// Options configures the platform reader
type Options struct {
	// Arch skips architecture detection when set.
	Arch platform.Arch
	// Timeout bounds each external command. Zero means DefaultTimeout.
	Timeout time.Duration
	Log     logr.Logger
}

// DefaultTimeout bounds a single external command.
const DefaultTimeout = 10 * time.Second

// NewReader creates a new CPU reader for the current platform
func NewReader(opts Options) Reader {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return newPlatformReader(opts)
}
