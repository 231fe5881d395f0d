//go:build linux

// Package vabackend provides pure Go bindings to the VA-API driver
// backend ABI (va_backend.h): the status codes, profile and entrypoint
// enumerations, and the driver context and vtable layouts a driver
// shared object exchanges with libva.
//
// This package does not use cgo. Struct layouts are mirrored by hand
// against libva and guarded with compile-time size assertions, the same
// way the Vulkan structs are mirrored elsewhere in this module.
//
// # Untrusted pointers
//
// Everything libva hands a driver is an untrusted raw pointer. Use the
// checked constructors before touching any field:
//
//	ctx, err := vabackend.ContextFromPointer(p)
//	if err != nil {
//	    return vabackend.AsStatus(err)
//	}
//
// ContextFromPointer rejects nil and misaligned pointers. It performs no
// deeper validation; a checked reference is only meaningful within the
// host call that produced it.
package vabackend
