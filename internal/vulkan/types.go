//go:build linux

package vulkan

import "unsafe"

// Dispatchable and non-dispatchable Vulkan handles.
type (
	Instance               uintptr
	PhysicalDevice         uintptr
	DebugUtilsMessengerEXT uint64
)

// Bool32 is a VkBool32.
type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// StructureType identifies the sType of an extensible struct.
type StructureType int32

const (
	StructureTypeApplicationInfo                           StructureType = 0
	StructureTypeInstanceCreateInfo                        StructureType = 1
	StructureTypeQueueFamilyVideoPropertiesKHR             StructureType = 1000023012
	StructureTypeQueueFamilyQueryResultStatusPropertiesKHR StructureType = 1000023016
	StructureTypePhysicalDeviceProperties2                 StructureType = 1000059001
	StructureTypeQueueFamilyProperties2                    StructureType = 1000059005
	StructureTypeDebugUtilsMessengerCreateInfoEXT          StructureType = 1000128004
	StructureTypePhysicalDeviceDrmPropertiesEXT            StructureType = 1000353000
)

// PhysicalDeviceType is a VkPhysicalDeviceType.
type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGPU PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGPU   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGPU    PhysicalDeviceType = 3
	PhysicalDeviceTypeCPU           PhysicalDeviceType = 4
)

// QueueFlags is a VkQueueFlags bitmask.
type QueueFlags uint32

const (
	QueueGraphics       QueueFlags = 0x001
	QueueCompute        QueueFlags = 0x002
	QueueTransfer       QueueFlags = 0x004
	QueueVideoDecodeKHR QueueFlags = 0x020
	QueueVideoEncodeKHR QueueFlags = 0x040
)

// VideoCodecOperationFlagsKHR is a VkVideoCodecOperationFlagsKHR
// bitmask reported per queue family.
type VideoCodecOperationFlagsKHR uint32

const (
	VideoCodecOperationNone       VideoCodecOperationFlagsKHR = 0
	VideoCodecOperationDecodeH264 VideoCodecOperationFlagsKHR = 0x00000001
	VideoCodecOperationDecodeH265 VideoCodecOperationFlagsKHR = 0x00000002
	VideoCodecOperationDecodeAV1  VideoCodecOperationFlagsKHR = 0x00000004
	VideoCodecOperationDecodeVP9  VideoCodecOperationFlagsKHR = 0x00000008
	VideoCodecOperationEncodeH264 VideoCodecOperationFlagsKHR = 0x00010000
	VideoCodecOperationEncodeH265 VideoCodecOperationFlagsKHR = 0x00020000
	VideoCodecOperationEncodeAV1  VideoCodecOperationFlagsKHR = 0x00040000
)

// Debug utils messenger flag types.
type (
	DebugUtilsMessageSeverityFlagsEXT uint32
	DebugUtilsMessageTypeFlagsEXT     uint32
)

const (
	DebugSeverityVerbose DebugUtilsMessageSeverityFlagsEXT = 0x0001
	DebugSeverityInfo    DebugUtilsMessageSeverityFlagsEXT = 0x0010
	DebugSeverityWarning DebugUtilsMessageSeverityFlagsEXT = 0x0100
	DebugSeverityError   DebugUtilsMessageSeverityFlagsEXT = 0x1000

	DebugTypeGeneral     DebugUtilsMessageTypeFlagsEXT = 0x1
	DebugTypeValidation  DebugUtilsMessageTypeFlagsEXT = 0x2
	DebugTypePerformance DebugUtilsMessageTypeFlagsEXT = 0x4
)

// APIVersion13 is VK_API_VERSION_1_3.
const APIVersion13 = uint32(1)<<22 | uint32(3)<<12

// MakeAPIVersion packs a version triple the way VK_MAKE_API_VERSION does.
func MakeAPIVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// Names of the layer and extension the driver optionally enables.
const (
	ValidationLayerName  = "VK_LAYER_KHRONOS_validation"
	DebugUtilsExtension  = "VK_EXT_debug_utils"
	VideoQueueExtension  = "VK_KHR_video_queue"
	VideoDecodeExtension = "VK_KHR_video_decode_queue"
	VideoEncodeExtension = "VK_KHR_video_encode_queue"
)

// ApplicationInfo has size 48 bytes.
type ApplicationInfo struct {
	SType              StructureType  // offset 0
	_                  uint32         // offset 4
	PNext              unsafe.Pointer // offset 8
	PApplicationName   *byte          // offset 16
	ApplicationVersion uint32         // offset 24
	_                  uint32         // offset 28
	PEngineName        *byte          // offset 32
	EngineVersion      uint32         // offset 40
	APIVersion         uint32         // offset 44
}

// InstanceCreateInfo has size 64 bytes.
type InstanceCreateInfo struct {
	SType                   StructureType  // offset 0
	_                       uint32         // offset 4
	PNext                   unsafe.Pointer // offset 8
	Flags                   uint32         // offset 16
	_                       uint32         // offset 20
	PApplicationInfo        *ApplicationInfo // offset 24
	EnabledLayerCount       uint32         // offset 32
	_                       uint32         // offset 36
	PPEnabledLayerNames     **byte         // offset 40
	EnabledExtensionCount   uint32         // offset 48
	_                       uint32         // offset 52
	PPEnabledExtensionNames **byte         // offset 56
}

// DebugUtilsMessengerCreateInfoEXT has size 48 bytes.
type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType  // offset 0
	_               uint32         // offset 4
	PNext           unsafe.Pointer // offset 8
	Flags           uint32         // offset 16
	MessageSeverity DebugUtilsMessageSeverityFlagsEXT // offset 20
	MessageType     DebugUtilsMessageTypeFlagsEXT     // offset 24
	_               uint32         // offset 28
	PfnUserCallback uintptr        // offset 32
	PUserData       unsafe.Pointer // offset 40
}

// DebugUtilsMessengerCallbackDataEXT has size 96 bytes. The label and
// object arrays are opaque here; the driver only reads the message.
type DebugUtilsMessengerCallbackDataEXT struct {
	SType            StructureType  // offset 0
	_                uint32         // offset 4
	PNext            unsafe.Pointer // offset 8
	Flags            uint32         // offset 16
	_                uint32         // offset 20
	PMessageIdName   *byte          // offset 24
	MessageIdNumber  int32          // offset 32
	_                uint32         // offset 36
	PMessage         *byte          // offset 40
	QueueLabelCount  uint32         // offset 48
	_                uint32         // offset 52
	PQueueLabels     unsafe.Pointer // offset 56
	CmdBufLabelCount uint32         // offset 64
	_                uint32         // offset 68
	PCmdBufLabels    unsafe.Pointer // offset 72
	ObjectCount      uint32         // offset 80
	_                uint32         // offset 84
	PObjects         unsafe.Pointer // offset 88
}

// PhysicalDeviceProperties has size 824 bytes. Limits and sparse
// properties are carried as raw bytes; nothing here reads them.
type PhysicalDeviceProperties struct {
	APIVersion        uint32             // offset 0
	DriverVersion     uint32             // offset 4
	VendorID          uint32             // offset 8
	DeviceID          uint32             // offset 12
	DeviceType        PhysicalDeviceType // offset 16
	DeviceName        [256]byte          // offset 20
	PipelineCacheUUID [16]byte           // offset 276
	_                 [4]byte            // offset 292
	Limits            [504]byte          // offset 296
	SparseProperties  [20]byte           // offset 800
	_                 [4]byte            // offset 820
}

// Name returns the device name as a Go string.
func (p *PhysicalDeviceProperties) Name() string {
	return GoString(&p.DeviceName[0])
}

// PhysicalDeviceProperties2 has size 840 bytes.
type PhysicalDeviceProperties2 struct {
	SType      StructureType  // offset 0
	_          uint32         // offset 4
	PNext      unsafe.Pointer // offset 8
	Properties PhysicalDeviceProperties // offset 16
}

// PhysicalDeviceDrmPropertiesEXT has size 56 bytes.
type PhysicalDeviceDrmPropertiesEXT struct {
	SType        StructureType  // offset 0
	_            uint32         // offset 4
	PNext        unsafe.Pointer // offset 8
	HasPrimary   Bool32         // offset 16
	HasRender    Bool32         // offset 20
	PrimaryMajor int64          // offset 24
	PrimaryMinor int64          // offset 32
	RenderMajor  int64          // offset 40
	RenderMinor  int64          // offset 48
}

// ExtensionProperties has size 260 bytes.
type ExtensionProperties struct {
	ExtensionName [256]byte // offset 0
	SpecVersion   uint32    // offset 256
}

// Name returns the extension name as a Go string.
func (e *ExtensionProperties) Name() string {
	return GoString(&e.ExtensionName[0])
}

// LayerProperties has size 520 bytes.
type LayerProperties struct {
	LayerName             [256]byte // offset 0
	SpecVersion           uint32    // offset 256
	ImplementationVersion uint32    // offset 260
	Description           [256]byte // offset 264
}

// Name returns the layer name as a Go string.
func (l *LayerProperties) Name() string {
	return GoString(&l.LayerName[0])
}

// Extent3D has size 12 bytes.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// QueueFamilyProperties has size 24 bytes.
type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags // offset 0
	QueueCount                  uint32     // offset 4
	TimestampValidBits          uint32     // offset 8
	MinImageTransferGranularity Extent3D   // offset 12
}

// QueueFamilyProperties2 has size 40 bytes.
type QueueFamilyProperties2 struct {
	SType                 StructureType  // offset 0
	_                     uint32         // offset 4
	PNext                 unsafe.Pointer // offset 8
	QueueFamilyProperties QueueFamilyProperties // offset 16
}

// QueueFamilyVideoPropertiesKHR has size 24 bytes.
type QueueFamilyVideoPropertiesKHR struct {
	SType                StructureType  // offset 0
	_                    uint32         // offset 4
	PNext                unsafe.Pointer // offset 8
	VideoCodecOperations VideoCodecOperationFlagsKHR // offset 16
	_                    uint32         // offset 20
}

// QueueFamilyQueryResultStatusPropertiesKHR has size 24 bytes.
type QueueFamilyQueryResultStatusPropertiesKHR struct {
	SType                    StructureType  // offset 0
	_                        uint32         // offset 4
	PNext                    unsafe.Pointer // offset 8
	QueryResultStatusSupport Bool32         // offset 16
	_                        uint32         // offset 20
}
