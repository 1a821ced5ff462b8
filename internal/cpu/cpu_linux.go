//go:build linux

package cpu

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/shirou/gopsutil/v3/cpu"
)

// LinuxReader builds the CPU inventory from /proc/cpuinfo via gopsutil
type LinuxReader struct {
	log logr.Logger
}

// newPlatformReader creates a new Linux CPU reader
func newPlatformReader(opts Options) Reader {
	logIgnoredOptions(opts)
	return &LinuxReader{log: opts.Log}
}

// GetInventory returns the host's CPU inventory
func (r *LinuxReader) GetInventory(ctx context.Context) (*Inventory, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU info: %w", err)
	}
	inv := inventoryFromInfos(infos)
	r.log.V(1).Info("Collected CPU inventory", "total", inv.Counts.Total, "real", inv.Counts.Real)
	return inv, nil
}

// inventoryFromInfos expects one InfoStat per logical processor, as
// gopsutil reports on Linux.
func inventoryFromInfos(infos []cpu.InfoStat) *Inventory {
	inv := &Inventory{Table: make(Table, 0, len(infos))}
	sockets := make(map[string]struct{})
	for _, info := range infos {
		inv.Table = append(inv.Table, processorFromInfo(info))
		sockets[info.PhysicalID] = struct{}{}
	}
	inv.Counts = Counts{Total: len(infos), Real: len(sockets)}
	return inv
}
