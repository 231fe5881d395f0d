//go:build linux && (amd64 || arm64)

package vulkan

import "unsafe"

// Compile-time struct size assertions.
// These will cause build failures if struct layouts drift from the
// Vulkan C ABI on LP64 targets.
var (
	_ [48]byte  = [unsafe.Sizeof(ApplicationInfo{})]byte{}
	_ [64]byte  = [unsafe.Sizeof(InstanceCreateInfo{})]byte{}
	_ [48]byte  = [unsafe.Sizeof(DebugUtilsMessengerCreateInfoEXT{})]byte{}
	_ [96]byte  = [unsafe.Sizeof(DebugUtilsMessengerCallbackDataEXT{})]byte{}
	_ [824]byte = [unsafe.Sizeof(PhysicalDeviceProperties{})]byte{}
	_ [840]byte = [unsafe.Sizeof(PhysicalDeviceProperties2{})]byte{}
	_ [56]byte  = [unsafe.Sizeof(PhysicalDeviceDrmPropertiesEXT{})]byte{}
	_ [260]byte = [unsafe.Sizeof(ExtensionProperties{})]byte{}
	_ [520]byte = [unsafe.Sizeof(LayerProperties{})]byte{}
	_ [24]byte  = [unsafe.Sizeof(QueueFamilyProperties{})]byte{}
	_ [40]byte  = [unsafe.Sizeof(QueueFamilyProperties2{})]byte{}
	_ [24]byte  = [unsafe.Sizeof(QueueFamilyVideoPropertiesKHR{})]byte{}
	_ [24]byte  = [unsafe.Sizeof(QueueFamilyQueryResultStatusPropertiesKHR{})]byte{}
)
