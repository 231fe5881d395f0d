//go:build linux

package vulkan

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// CreateInstance creates a Vulkan instance from a fully populated
// create info. The loader must have been opened with Load first.
func CreateInstance(info *InstanceCreateInfo) (Instance, error) {
	var instance Instance
	if err := vkCreateInstance(info, nil, &instance).Check(); err != nil {
		return 0, fmt.Errorf("vkCreateInstance: %w", err)
	}
	runtime.KeepAlive(info)
	return instance, nil
}

// Destroy tears the instance down. All child objects must already be
// destroyed.
func (i Instance) Destroy() {
	vkDestroyInstance(i, nil)
}

// InstanceLayers enumerates the layers available to instance creation.
func InstanceLayers() ([]LayerProperties, error) {
	var count uint32
	if err := vkEnumerateInstanceLayerProperties(&count, nil).Check(); err != nil {
		return nil, fmt.Errorf("vkEnumerateInstanceLayerProperties: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	layers := make([]LayerProperties, count)
	if err := vkEnumerateInstanceLayerProperties(&count, &layers[0]).Check(); err != nil {
		return nil, fmt.Errorf("vkEnumerateInstanceLayerProperties: %w", err)
	}
	return layers[:count], nil
}

// HasInstanceLayer reports whether a layer with the given name is
// available. Enumeration failures count as absence.
func HasInstanceLayer(name string) bool {
	layers, err := InstanceLayers()
	if err != nil {
		return false
	}
	for i := range layers {
		if layers[i].Name() == name {
			return true
		}
	}
	return false
}

// PhysicalDevices enumerates the physical devices visible through the
// instance.
func (i Instance) PhysicalDevices() ([]PhysicalDevice, error) {
	var count uint32
	if err := vkEnumeratePhysicalDevices(i, &count, nil).Check(); err != nil {
		return nil, fmt.Errorf("vkEnumeratePhysicalDevices: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	devices := make([]PhysicalDevice, count)
	if err := vkEnumeratePhysicalDevices(i, &count, &devices[0]).Check(); err != nil {
		return nil, fmt.Errorf("vkEnumeratePhysicalDevices: %w", err)
	}
	return devices[:count], nil
}

// Properties2 fills props, following whatever pNext chain the caller
// has attached. The caller owns sType and pNext setup.
func (d PhysicalDevice) Properties2(props *PhysicalDeviceProperties2) {
	vkGetPhysicalDeviceProperties2(d, props)
	runtime.KeepAlive(props)
}

// ExtensionProperties enumerates the device level extensions the
// implementation supports.
func (d PhysicalDevice) ExtensionProperties() ([]ExtensionProperties, error) {
	var count uint32
	if err := vkEnumerateDeviceExtensionProperties(d, nil, &count, nil).Check(); err != nil {
		return nil, fmt.Errorf("vkEnumerateDeviceExtensionProperties: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	exts := make([]ExtensionProperties, count)
	if err := vkEnumerateDeviceExtensionProperties(d, nil, &count, &exts[0]).Check(); err != nil {
		return nil, fmt.Errorf("vkEnumerateDeviceExtensionProperties: %w", err)
	}
	return exts[:count], nil
}

// QueueFamilyCount returns the number of queue families on the device.
func (d PhysicalDevice) QueueFamilyCount() uint32 {
	var count uint32
	vkGetPhysicalDeviceQueueFamilyProperties2(d, &count, nil)
	return count
}

// QueueFamilies fills the caller-provided slice of properties. The
// caller pre-populates each element's sType and pNext chain; len(props)
// bounds how many families are written.
func (d PhysicalDevice) QueueFamilies(props []QueueFamilyProperties2) {
	if len(props) == 0 {
		return
	}
	count := uint32(len(props))
	vkGetPhysicalDeviceQueueFamilyProperties2(d, &count, &props[0])
	runtime.KeepAlive(props)
}

// procAddr resolves an instance level entry point, returning 0 when the
// loader does not know it.
func (i Instance) procAddr(name string) uintptr {
	p := CString(name)
	addr := vkGetInstanceProcAddr(i, p)
	runtime.KeepAlive(p)
	return addr
}

// CreateDebugUtilsMessenger registers a debug messenger on the
// instance. Requires VK_EXT_debug_utils to have been enabled at
// instance creation.
func (i Instance) CreateDebugUtilsMessenger(info *DebugUtilsMessengerCreateInfoEXT) (DebugUtilsMessengerEXT, error) {
	addr := i.procAddr("vkCreateDebugUtilsMessengerEXT")
	if addr == 0 {
		return 0, fmt.Errorf("vkCreateDebugUtilsMessengerEXT: %w", ErrorExtensionNotPresent)
	}
	var messenger DebugUtilsMessengerEXT
	r, _, _ := purego.SyscallN(addr,
		uintptr(i),
		uintptr(unsafe.Pointer(info)),
		0,
		uintptr(unsafe.Pointer(&messenger)))
	runtime.KeepAlive(info)
	if err := Result(int32(r)).Check(); err != nil {
		return 0, fmt.Errorf("vkCreateDebugUtilsMessengerEXT: %w", err)
	}
	return messenger, nil
}

// DestroyDebugUtilsMessenger destroys a messenger previously created on
// the instance. A zero messenger is a no-op.
func (i Instance) DestroyDebugUtilsMessenger(messenger DebugUtilsMessengerEXT) {
	if messenger == 0 {
		return
	}
	addr := i.procAddr("vkDestroyDebugUtilsMessengerEXT")
	if addr == 0 {
		return
	}
	purego.SyscallN(addr,
		uintptr(i),
		uintptr(messenger),
		0)
}
