//go:build linux

package vabackend

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// DriverContext mirrors struct VADriverContext from va_backend.h.
// libva allocates it with calloc and owns it; a driver only ever borrows
// a reference for the duration of one host call.
type DriverContext struct {
	PDriverData          unsafe.Pointer // offset 0, driver-private slot
	VTable               *VTable        // offset 8
	VTableVPP            unsafe.Pointer // offset 16
	VTableProt           unsafe.Pointer // offset 24
	NativeDpy            unsafe.Pointer // offset 32
	X11Screen            int32          // offset 40
	VersionMajor         int32          // offset 44
	VersionMinor         int32          // offset 48
	MaxProfiles          int32          // offset 52
	MaxEntrypoints       int32          // offset 56
	MaxAttributes        int32          // offset 60
	MaxImageFormats      int32          // offset 64
	MaxSubpicFormats     int32          // offset 68
	MaxDisplayAttributes int32          // offset 72
	StrVendor            unsafe.Pointer // offset 80, const char*
	Handle               unsafe.Pointer // offset 88
	PDisplayContext      unsafe.Pointer // offset 96
	ErrorCallback        uintptr        // offset 104
	ErrorCallbackCtx     unsafe.Pointer // offset 112
	InfoCallback         uintptr        // offset 120
	InfoCallbackCtx      unsafe.Pointer // offset 128
	DRMState             unsafe.Pointer // offset 136, struct drm_state*
	GLX                  unsafe.Pointer // offset 144
	EGL                  unsafe.Pointer // offset 152
	OverrideDriverName   unsafe.Pointer // offset 160
	Reserved             [44]uint64     // offset 168
}

// DRMState mirrors struct drm_state from va_drm.h: the platform device
// state libva attaches to the context for DRM-backed displays.
type DRMState struct {
	Fd       int32
	AuthType int32
}

// Op indexes an operation slot in the driver vtable, in declaration
// order of struct VADriverVTable.
type Op int

const (
	OpTerminate Op = iota
	OpQueryConfigProfiles
	OpQueryConfigEntrypoints
	OpGetConfigAttributes
	OpCreateConfig
	OpDestroyConfig
	OpQueryConfigAttributes
	OpCreateSurfaces
	OpDestroySurfaces
	OpCreateContext
	OpDestroyContext
	OpCreateBuffer
	OpBufferSetNumElements
	OpMapBuffer
	OpUnmapBuffer
	OpDestroyBuffer
	OpBeginPicture
	OpRenderPicture
	OpEndPicture
	OpSyncSurface
	OpQuerySurfaceStatus
	OpQuerySurfaceError
	OpPutSurface
	OpQueryImageFormats
	OpCreateImage
	OpDeriveImage
	OpDestroyImage
	OpSetImagePalette
	OpGetImage
	OpPutImage
	OpQuerySubpictureFormats
	OpCreateSubpicture
	OpDestroySubpicture
	OpSetSubpictureImage
	OpSetSubpictureChromakey
	OpSetSubpictureGlobalAlpha
	OpAssociateSubpicture
	OpDeassociateSubpicture
	OpQueryDisplayAttributes
	OpGetDisplayAttributes
	OpSetDisplayAttributes
	OpBufferInfo
	OpLockSurface
	OpUnlockSurface
	OpGetSurfaceAttributes
	OpCreateSurfaces2
	OpQuerySurfaceAttributes
	OpAcquireBufferHandle
	OpReleaseBufferHandle
	OpCreateMFContext
	OpMFAddContext
	OpMFReleaseContext
	OpMFSubmit
	OpCreateBuffer2
	OpQueryProcessingRate
	OpExportSurfaceHandle
	OpSyncSurface2
	OpSyncBuffer
	OpCopy
	OpMapBuffer2

	NumOps
)

var opNames = [NumOps]string{
	"vaTerminate", "vaQueryConfigProfiles", "vaQueryConfigEntrypoints",
	"vaGetConfigAttributes", "vaCreateConfig", "vaDestroyConfig",
	"vaQueryConfigAttributes", "vaCreateSurfaces", "vaDestroySurfaces",
	"vaCreateContext", "vaDestroyContext", "vaCreateBuffer",
	"vaBufferSetNumElements", "vaMapBuffer", "vaUnmapBuffer",
	"vaDestroyBuffer", "vaBeginPicture", "vaRenderPicture", "vaEndPicture",
	"vaSyncSurface", "vaQuerySurfaceStatus", "vaQuerySurfaceError",
	"vaPutSurface", "vaQueryImageFormats", "vaCreateImage", "vaDeriveImage",
	"vaDestroyImage", "vaSetImagePalette", "vaGetImage", "vaPutImage",
	"vaQuerySubpictureFormats", "vaCreateSubpicture", "vaDestroySubpicture",
	"vaSetSubpictureImage", "vaSetSubpictureChromakey",
	"vaSetSubpictureGlobalAlpha", "vaAssociateSubpicture",
	"vaDeassociateSubpicture", "vaQueryDisplayAttributes",
	"vaGetDisplayAttributes", "vaSetDisplayAttributes", "vaBufferInfo",
	"vaLockSurface", "vaUnlockSurface", "vaGetSurfaceAttributes",
	"vaCreateSurfaces2", "vaQuerySurfaceAttributes", "vaAcquireBufferHandle",
	"vaReleaseBufferHandle", "vaCreateMFContext", "vaMFAddContext",
	"vaMFReleaseContext", "vaMFSubmit", "vaCreateBuffer2",
	"vaQueryProcessingRate", "vaExportSurfaceHandle", "vaSyncSurface2",
	"vaSyncBuffer", "vaCopy", "vaMapBuffer2",
}

// String returns the contract name of the operation slot.
func (op Op) String() string {
	if op >= 0 && op < NumOps {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// VTable mirrors struct VADriverVTable: one function pointer per
// operation slot, in declaration order, followed by reserved padding.
type VTable struct {
	Slots    [NumOps]uintptr
	Reserved [58]uintptr
}

// PointerAligned reports whether p satisfies the given natural
// alignment. A nil pointer is trivially aligned; callers must check for
// nil separately.
func PointerAligned(p unsafe.Pointer, align uintptr) bool {
	return uintptr(p)%align == 0
}

// ContextFromPointer validates an opaque pointer claiming to be a
// VADriverContext. It rejects nil and misaligned pointers with
// StatusInvalidParameter and performs no field access of its own; any
// deeper trust in the returned reference is the caller's.
func ContextFromPointer(p unsafe.Pointer) (*DriverContext, error) {
	if p == nil || !PointerAligned(p, unsafe.Alignof(DriverContext{})) {
		slog.With("component", "vabackend").Error("driver context pointer is nil or misaligned",
			"pointer", fmt.Sprintf("%#x", uintptr(p)))
		return nil, StatusInvalidParameter
	}
	return (*DriverContext)(p), nil
}

// DRM validates and returns the context's drm_state sub-structure.
func (c *DriverContext) DRM() (*DRMState, error) {
	if c.DRMState == nil || !PointerAligned(c.DRMState, unsafe.Alignof(DRMState{})) {
		slog.With("component", "vabackend").Error("drm_state pointer is nil or misaligned",
			"pointer", fmt.Sprintf("%#x", uintptr(c.DRMState)))
		return nil, StatusInvalidParameter
	}
	return (*DRMState)(c.DRMState), nil
}
