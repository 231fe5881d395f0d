//go:build linux

package driver

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/vulkan-va/vavk/pkg/vabackend"
)

// stubOps lists the operations wired to a handler that validates the
// context and then reports Unimplemented.
var stubOps = []vabackend.Op{
	vabackend.OpGetConfigAttributes,
	vabackend.OpCreateConfig,
	vabackend.OpDestroyConfig,
	vabackend.OpQueryConfigAttributes,
	vabackend.OpCreateSurfaces,
	vabackend.OpDestroySurfaces,
	vabackend.OpCreateContext,
	vabackend.OpDestroyContext,
	vabackend.OpCreateBuffer,
	vabackend.OpBufferSetNumElements,
	vabackend.OpMapBuffer,
	vabackend.OpUnmapBuffer,
	vabackend.OpDestroyBuffer,
	vabackend.OpBeginPicture,
	vabackend.OpRenderPicture,
	vabackend.OpEndPicture,
	vabackend.OpSyncSurface,
	vabackend.OpQuerySurfaceStatus,
	vabackend.OpQueryImageFormats,
	vabackend.OpCreateImage,
	vabackend.OpDeriveImage,
	vabackend.OpDestroyImage,
	vabackend.OpSetImagePalette,
	vabackend.OpGetImage,
	vabackend.OpPutImage,
	vabackend.OpQuerySubpictureFormats,
	vabackend.OpCreateSubpicture,
	vabackend.OpDestroySubpicture,
	vabackend.OpSetSubpictureImage,
	vabackend.OpSetSubpictureChromakey,
	vabackend.OpSetSubpictureGlobalAlpha,
	vabackend.OpAssociateSubpicture,
	vabackend.OpDeassociateSubpicture,
	vabackend.OpQueryDisplayAttributes,
	vabackend.OpGetDisplayAttributes,
	vabackend.OpSetDisplayAttributes,
}

// absentOps stay unpopulated; the host contract reads an absent slot as
// "not supported". These are the surface/buffer handle and multi-frame
// operations with no implementation path yet.
var absentOps = []vabackend.Op{
	vabackend.OpQuerySurfaceError,
	vabackend.OpPutSurface,
	vabackend.OpBufferInfo,
	vabackend.OpLockSurface,
	vabackend.OpUnlockSurface,
	vabackend.OpGetSurfaceAttributes,
	vabackend.OpCreateSurfaces2,
	vabackend.OpQuerySurfaceAttributes,
	vabackend.OpAcquireBufferHandle,
	vabackend.OpReleaseBufferHandle,
	vabackend.OpCreateMFContext,
	vabackend.OpMFAddContext,
	vabackend.OpMFReleaseContext,
	vabackend.OpMFSubmit,
	vabackend.OpCreateBuffer2,
	vabackend.OpQueryProcessingRate,
	vabackend.OpExportSurfaceHandle,
	vabackend.OpSyncSurface2,
	vabackend.OpSyncBuffer,
	vabackend.OpCopy,
	vabackend.OpMapBuffer2,
}

var (
	callbackOnce sync.Once
	callbackTab  [vabackend.NumOps]uintptr
)

// callbacks builds the C callable slot table once per process;
// callback trampolines are a finite process-wide resource and the
// table never changes after creation.
func callbacks() *[vabackend.NumOps]uintptr {
	callbackOnce.Do(func() {
		callbackTab[vabackend.OpTerminate] = purego.NewCallback(terminate)
		callbackTab[vabackend.OpQueryConfigProfiles] = purego.NewCallback(queryConfigProfiles)
		callbackTab[vabackend.OpQueryConfigEntrypoints] = purego.NewCallback(queryConfigEntrypoints)
		for _, op := range stubOps {
			op := op
			callbackTab[op] = purego.NewCallback(func(ctxp unsafe.Pointer) uintptr {
				return stub(op, ctxp)
			})
		}
	})
	return &callbackTab
}

// fillVTable overwrites every slot of the host's operation table:
// implemented and stub operations get their callbacks, absent
// operations are cleared.
func fillVTable(vt *vabackend.VTable) {
	*vt = vabackend.VTable{Slots: *callbacks()}
}
