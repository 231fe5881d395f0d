//go:build linux

package driver

import (
	"unsafe"

	"github.com/vulkan-va/vavk/internal/catalog"
	"github.com/vulkan-va/vavk/internal/logging"
	"github.com/vulkan-va/vavk/pkg/vabackend"
)

func status(s vabackend.Status) uintptr {
	return uintptr(s)
}

// outPointerValid rejects nil and misaligned host-supplied output
// pointers before anything is written through them.
func outPointerValid(p unsafe.Pointer, align uintptr) bool {
	return p != nil && vabackend.PointerAligned(p, align)
}

// terminate destroys the driver-private data. An already-null slot is
// tolerated with a warning so a double terminate never double-frees.
func terminate(ctxp unsafe.Pointer) uintptr {
	logger := logging.GetLogger("dispatch")

	ctx, err := vabackend.ContextFromPointer(ctxp)
	if err != nil {
		return status(vabackend.AsStatus(err))
	}

	if ctx.PDriverData == nil {
		logger.Warn("driver data already released on terminate")
		return status(vabackend.StatusSuccess)
	}

	data, err := dataFromContext(ctx)
	if err != nil {
		return status(vabackend.AsStatus(err))
	}

	ctx.PDriverData = nil
	data.release()
	logger.Debug("driver terminated")
	return status(vabackend.StatusSuccess)
}

// queryConfigProfiles emits the profile sequence for the bound device
// into the host's output array, honoring the advertised max_profiles.
func queryConfigProfiles(ctxp, profileList, numProfiles unsafe.Pointer) uintptr {
	if !outPointerValid(profileList, unsafe.Alignof(vabackend.Profile(0))) ||
		!outPointerValid(numProfiles, unsafe.Alignof(int32(0))) {
		return status(vabackend.StatusInvalidParameter)
	}

	ctx, err := vabackend.ContextFromPointer(ctxp)
	if err != nil {
		return status(vabackend.AsStatus(err))
	}
	data, err := dataFromContext(ctx)
	if err != nil {
		return status(vabackend.AsStatus(err))
	}

	profiles, err := catalog.Profiles(data.Capability.Codecs, int(ctx.MaxProfiles))
	if err != nil {
		logging.GetLogger("dispatch").Error("profile enumeration failed", "error", err)
		return status(vabackend.AsStatus(err))
	}

	// The host guarantees capacity for vaMaxNumProfiles entries
	out := unsafe.Slice((*vabackend.Profile)(profileList), len(profiles))
	copy(out, profiles)
	*(*int32)(numProfiles) = int32(len(profiles))

	return status(vabackend.StatusSuccess)
}

// queryConfigEntrypoints emits the entrypoint sequence for one profile,
// honoring the advertised max_entrypoints.
func queryConfigEntrypoints(ctxp unsafe.Pointer, profile int32, entrypointList, numEntrypoints unsafe.Pointer) uintptr {
	if !outPointerValid(entrypointList, unsafe.Alignof(vabackend.Entrypoint(0))) ||
		!outPointerValid(numEntrypoints, unsafe.Alignof(int32(0))) {
		return status(vabackend.StatusInvalidParameter)
	}

	ctx, err := vabackend.ContextFromPointer(ctxp)
	if err != nil {
		return status(vabackend.AsStatus(err))
	}
	data, err := dataFromContext(ctx)
	if err != nil {
		return status(vabackend.AsStatus(err))
	}

	entrypoints, err := catalog.Entrypoints(vabackend.Profile(profile), data.Capability.Codecs, int(ctx.MaxEntrypoints))
	if err != nil {
		logging.GetLogger("dispatch").Debug("entrypoint enumeration failed",
			"profile", profile, "error", err)
		return status(vabackend.AsStatus(err))
	}

	out := unsafe.Slice((*vabackend.Entrypoint)(entrypointList), len(entrypoints))
	copy(out, entrypoints)
	*(*int32)(numEntrypoints) = int32(len(entrypoints))

	return status(vabackend.StatusSuccess)
}

// stub validates the context like every real handler would and then
// reports the operation as not implemented.
func stub(op vabackend.Op, ctxp unsafe.Pointer) uintptr {
	if _, err := vabackend.ContextFromPointer(ctxp); err != nil {
		return status(vabackend.AsStatus(err))
	}
	logging.GetLogger("dispatch").Debug("operation not implemented", "op", op.String())
	return status(vabackend.StatusUnimplemented)
}
