//go:build !linux && !windows && !solaris

package cpu

import (
	"context"
	"fmt"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback CPU reader for unsupported platforms
func newPlatformReader(Options) Reader {
	return &UnsupportedReader{}
}

// GetInventory returns an error for unsupported platforms
func (r *UnsupportedReader) GetInventory(ctx context.Context) (*Inventory, error) {
	return nil, fmt.Errorf("CPU inventory not supported on this platform")
}
