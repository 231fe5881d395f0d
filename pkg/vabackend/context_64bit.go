//go:build linux && (amd64 || arm64)

package vabackend

import "unsafe"

// Compile-time struct size assertions against the libva ABI.
// These will cause build failures if the mirrored layouts drift.
var (
	_ [520]byte = [unsafe.Sizeof(DriverContext{})]byte{}
	_ [944]byte = [unsafe.Sizeof(VTable{})]byte{}
	_ [8]byte   = [unsafe.Sizeof(DRMState{})]byte{}
)
