//go:build linux || windows

package cpu

import (
	"strconv"

	"github.com/shirou/gopsutil/v3/cpu"
)

// logIgnoredOptions notes options that only the psrinfo reader honours.
func logIgnoredOptions(opts Options) {
	if opts.Arch != "" {
		opts.Log.V(1).Info("Ignoring architecture override, psrinfo is not used on this platform", "arch", opts.Arch)
	}
}

// processorFromInfo converts a gopsutil record to the psrinfo record shape.
func processorFromInfo(info cpu.InfoStat) Processor {
	return Processor{
		VendorID:  info.VendorID,
		Family:    info.Family,
		Model:     info.Model,
		Stepping:  strconv.Itoa(int(info.Stepping)),
		ModelName: info.ModelName,
		Mhz:       strconv.FormatFloat(info.Mhz, 'f', 0, 64),
	}
}
