//go:build linux

// Package driver implements the host-facing side of the driver: the
// versioned init entry point, the dispatch table installed into the
// host context and the operation handlers behind it.
package driver

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/vulkan-va/vavk/internal/backend"
	"github.com/vulkan-va/vavk/internal/logging"
	"github.com/vulkan-va/vavk/pkg/vabackend"
)

// driverDataMagic tags DriverData so handlers can tell their own
// private data from a stale or foreign pointer. Spells "VAVK".
const driverDataMagic uint32 = 0x5641564b

// DriverData is the driver-private state reachable through the host
// context. The struct pins itself for as long as the host holds the
// pointer, which makes storing its address in foreign memory legal.
type DriverData struct {
	magic      uint32
	Capability *backend.Capability

	pinner runtime.Pinner
}

func newDriverData(c *backend.Capability) *DriverData {
	d := &DriverData{magic: driverDataMagic, Capability: c}
	d.pinner.Pin(d)
	return d
}

// pointer returns the address handed to the host's private-data slot.
func (d *DriverData) pointer() unsafe.Pointer {
	return unsafe.Pointer(d)
}

// release tears down the Vulkan state and unpins the data. The host
// must never touch the pointer again afterwards.
func (d *DriverData) release() {
	if d.Capability != nil {
		d.Capability.Close()
	}
	d.magic = 0
	d.pinner.Unpin()
}

// dataFromContext validates the context's private-data slot: non-nil,
// aligned and carrying the driver magic.
func dataFromContext(ctx *vabackend.DriverContext) (*DriverData, error) {
	p := ctx.PDriverData
	if p == nil || !vabackend.PointerAligned(p, unsafe.Alignof(DriverData{})) {
		logging.GetLogger("driver").Error("driver data pointer is nil or misaligned",
			"pointer", fmt.Sprintf("%#x", uintptr(p)))
		return nil, fmt.Errorf("driver data pointer %#x: %w", uintptr(p), vabackend.StatusInvalidParameter)
	}

	d := (*DriverData)(p)
	if d.magic != driverDataMagic {
		logging.GetLogger("driver").Error("driver data magic mismatch",
			"magic", fmt.Sprintf("%#x", d.magic))
		return nil, fmt.Errorf("driver data magic %#x: %w", d.magic, vabackend.StatusInvalidParameter)
	}
	return d, nil
}
