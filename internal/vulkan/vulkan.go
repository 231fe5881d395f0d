//go:build linux

// Package vulkan carries the minimal Vulkan bindings the driver needs
// for capability discovery: instance lifecycle, physical device
// enumeration, DRM identity properties, device extensions and queue
// family video properties. The loader binds libvulkan at runtime via
// purego, so no SDK headers are needed at build time.
package vulkan

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/vulkan-va/vavk/internal/logging"
)

// DefaultLibrary is the soname the loader falls back to when the
// configuration does not name an explicit path.
const DefaultLibrary = "libvulkan.so.1"

var (
	loadOnce sync.Once
	loadErr  error
	handle   uintptr
)

// libvulkan entry points resolved at load time.
var (
	vkCreateInstance                          func(*InstanceCreateInfo, unsafe.Pointer, *Instance) Result
	vkDestroyInstance                         func(Instance, unsafe.Pointer)
	vkEnumerateInstanceLayerProperties        func(*uint32, *LayerProperties) Result
	vkEnumeratePhysicalDevices                func(Instance, *uint32, *PhysicalDevice) Result
	vkGetPhysicalDeviceProperties2            func(PhysicalDevice, *PhysicalDeviceProperties2)
	vkEnumerateDeviceExtensionProperties      func(PhysicalDevice, *byte, *uint32, *ExtensionProperties) Result
	vkGetPhysicalDeviceQueueFamilyProperties2 func(PhysicalDevice, *uint32, *QueueFamilyProperties2)
	vkGetInstanceProcAddr                     func(Instance, *byte) uintptr
)

// Load opens the Vulkan loader library and resolves the entry points
// this package uses. The first call wins; later calls return the same
// result regardless of path. An empty path selects DefaultLibrary.
func Load(path string) error {
	loadOnce.Do(func() {
		if path == "" {
			path = DefaultLibrary
		}
		logger := logging.GetLogger("vulkan")

		h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = fmt.Errorf("loading %s: %w", path, err)
			logger.Error("failed to load Vulkan library", "path", path, "error", err)
			return
		}
		handle = h

		purego.RegisterLibFunc(&vkCreateInstance, handle, "vkCreateInstance")
		purego.RegisterLibFunc(&vkDestroyInstance, handle, "vkDestroyInstance")
		purego.RegisterLibFunc(&vkEnumerateInstanceLayerProperties, handle, "vkEnumerateInstanceLayerProperties")
		purego.RegisterLibFunc(&vkEnumeratePhysicalDevices, handle, "vkEnumeratePhysicalDevices")
		purego.RegisterLibFunc(&vkGetPhysicalDeviceProperties2, handle, "vkGetPhysicalDeviceProperties2")
		purego.RegisterLibFunc(&vkEnumerateDeviceExtensionProperties, handle, "vkEnumerateDeviceExtensionProperties")
		purego.RegisterLibFunc(&vkGetPhysicalDeviceQueueFamilyProperties2, handle, "vkGetPhysicalDeviceQueueFamilyProperties2")
		purego.RegisterLibFunc(&vkGetInstanceProcAddr, handle, "vkGetInstanceProcAddr")

		logger.Debug("Vulkan library loaded", "path", path)
	})
	return loadErr
}

// CString converts a Go string into a NUL terminated byte buffer and
// returns a pointer to its first byte. The caller must keep the
// returned pointer alive for the duration of the foreign call.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// GoString copies a NUL terminated C string into a Go string. Returns
// the empty string for a nil pointer.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	var n int
	for ptr := unsafe.Pointer(p); *(*byte)(ptr) != 0; ptr = unsafe.Add(ptr, 1) {
		n++
	}
	return string(unsafe.Slice(p, n))
}
