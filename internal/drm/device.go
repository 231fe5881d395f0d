//go:build linux

// Package drm resolves the host's DRM file descriptor to a kernel
// device identity. The descriptor is owned by the host; this package
// only ever reads its metadata and never dups or closes it.
package drm

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/vulkan-va/vavk/internal/logging"
	"github.com/vulkan-va/vavk/pkg/vabackend"
)

// DeviceID is a kernel (major, minor) pair identifying a DRM character
// device node. Fields are int64 to match the types Vulkan reports in
// VkPhysicalDeviceDrmPropertiesEXT; uint32 major/minor convert into
// int64 trivially but not the other way around.
type DeviceID struct {
	Major int64
	Minor int64
}

// String formats the identity as "major/minor".
func (id DeviceID) String() string {
	return fmt.Sprintf("%d/%d", id.Major, id.Minor)
}

// DeviceIDFromFd extracts the device identity of an open DRM node.
// Purely observational: a single fstat, no writes, no close.
func DeviceIDFromFd(fd int) (DeviceID, error) {
	logger := logging.GetLogger("drm")

	if fd < 0 {
		logger.Error("invalid DRM file descriptor", "fd", fd)
		return DeviceID{}, vabackend.StatusInvalidParameter
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		logger.Error("failed to stat DRM fd", "fd", fd, "error", err)
		return DeviceID{}, fmt.Errorf("fstat on DRM fd %d: %w", fd, vabackend.StatusOperationFailed)
	}

	if stat.Mode&unix.S_IFMT != unix.S_IFCHR {
		logger.Error("DRM fd is not a character device", "fd", fd)
		return DeviceID{}, vabackend.StatusInvalidParameter
	}

	// See libdrm's drmGetDevice2 for the st_rdev based identification
	rdev := uint64(stat.Rdev)
	id := DeviceID{
		Major: int64(unix.Major(rdev)),
		Minor: int64(unix.Minor(rdev)),
	}

	logger.Info("resolved DRM device identity",
		"fd", fd, "rdev", fmt.Sprintf("%#x", rdev), "major", id.Major, "minor", id.Minor)

	return id, nil
}

// DeviceIDFromContext validates the context's drm_state sub-structure
// and extracts the device identity from the descriptor it carries.
func DeviceIDFromContext(ctx *vabackend.DriverContext) (DeviceID, error) {
	state, err := ctx.DRM()
	if err != nil {
		return DeviceID{}, err
	}

	logging.GetLogger("drm").Debug("drm_state", "fd", state.Fd, "auth_type", state.AuthType)

	return DeviceIDFromFd(int(state.Fd))
}
