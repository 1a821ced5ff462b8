//go:build windows

package cpu

import (
	"context"
	"fmt"

	"github.com/StackExchange/wmi"
	"github.com/go-logr/logr"
	"github.com/shirou/gopsutil/v3/cpu"
)

// WindowsReader builds the CPU inventory from WMI
type WindowsReader struct {
	log logr.Logger
}

// newPlatformReader creates a new Windows CPU reader
func newPlatformReader(opts Options) Reader {
	logIgnoredOptions(opts)
	return &WindowsReader{log: opts.Log}
}

// Win32_Processor represents one processor socket in WMI
type Win32_Processor struct {
	DeviceID                  string
	NumberOfLogicalProcessors uint32
}

// GetInventory returns the host's CPU inventory. gopsutil reports one
// InfoStat per socket on Windows, so each socket's record is repeated once
// per logical processor it owns.
func (r *WindowsReader) GetInventory(ctx context.Context) (*Inventory, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU info: %w", err)
	}

	var sockets []Win32_Processor
	query := "SELECT DeviceID, NumberOfLogicalProcessors FROM Win32_Processor"
	if err := wmi.Query(query, &sockets); err != nil {
		return nil, fmt.Errorf("failed to query Win32_Processor: %w", err)
	}
	if len(sockets) != len(infos) {
		return nil, fmt.Errorf("WMI reports %d processors, gopsutil %d", len(sockets), len(infos))
	}

	inv := &Inventory{Table: Table{}}
	for i, socket := range sockets {
		p := processorFromInfo(infos[i])
		for n := uint32(0); n < socket.NumberOfLogicalProcessors; n++ {
			inv.Table = append(inv.Table, p)
		}
	}
	inv.Counts = Counts{Total: len(inv.Table), Real: len(sockets)}

	r.log.V(1).Info("Collected CPU inventory", "total", inv.Counts.Total, "real", inv.Counts.Real)
	return inv, nil
}
