//go:build linux

// Package backend owns the Vulkan side of driver initialization: it
// resolves the host's DRM device identity to a physical device, reads
// the device's video codec extensions and selects the queue family
// capability discovery reports on.
package backend

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/vulkan-va/vavk/internal/config"
	"github.com/vulkan-va/vavk/internal/drm"
	"github.com/vulkan-va/vavk/internal/logging"
	"github.com/vulkan-va/vavk/internal/version"
	"github.com/vulkan-va/vavk/internal/vulkan"
	"github.com/vulkan-va/vavk/pkg/vabackend"
)

const applicationName = "Vulkan Video VA-API Driver"

// QueueFamily describes the queue family selected for video work.
type QueueFamily struct {
	Index                uint32                             `toml:"index"`
	Flags                vulkan.QueueFlags                  `toml:"-"`
	VideoCodecOperations vulkan.VideoCodecOperationFlagsKHR `toml:"-"`
	QueryResultStatus    bool                               `toml:"query_result_status"`
}

// Capability is the resolved Vulkan state for one DRM device. It owns
// the instance and the optional debug messenger until Close.
type Capability struct {
	Device        vulkan.PhysicalDevice
	DeviceName    string
	DeviceType    vulkan.PhysicalDeviceType
	APIVersion    uint32
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	Codecs        SupportedCodecs
	DecodeQueue   QueueFamily

	instance  vulkan.Instance
	messenger vulkan.DebugUtilsMessengerEXT
	closeOnce sync.Once
}

// Initialize loads the Vulkan runtime, creates an instance and binds
// the physical device whose DRM identity matches id. Every failure maps
// to a driver status the dispatch layer can hand back to the host.
func Initialize(id drm.DeviceID, cfg config.Config) (*Capability, error) {
	logger := logging.GetLogger("backend")

	if err := vulkan.Load(cfg.Vulkan.Library); err != nil {
		return nil, fmt.Errorf("%v: %w", err, vabackend.StatusOperationFailed)
	}

	validation := cfg.Vulkan.Validation && vulkan.HasInstanceLayer(vulkan.ValidationLayerName)
	if cfg.Vulkan.Validation && !validation {
		logger.Warn("validation requested but layer unavailable", "layer", vulkan.ValidationLayerName)
	}

	instance, err := createInstance(validation)
	if err != nil {
		logger.Error("instance creation failed", "error", err)
		return nil, fmt.Errorf("%v: %w", err, vabackend.StatusOperationFailed)
	}

	c := &Capability{instance: instance}

	if validation {
		info := vulkan.NewDebugMessengerCreateInfo()
		messenger, err := instance.CreateDebugUtilsMessenger(&info)
		if err != nil {
			// Discovery can proceed without validation output
			logger.Warn("debug messenger unavailable", "error", err)
		} else {
			c.messenger = messenger
		}
	}

	if err := c.bindDevice(id); err != nil {
		c.Close()
		return nil, err
	}

	logger.Info("backend initialized",
		"device", c.DeviceName,
		"drm", id,
		"queue_family", c.DecodeQueue.Index,
		"codecs", c.Codecs)

	return c, nil
}

func createInstance(validation bool) (vulkan.Instance, error) {
	appInfo := vulkan.ApplicationInfo{
		SType:              vulkan.StructureTypeApplicationInfo,
		PApplicationName:   vulkan.CString(applicationName),
		ApplicationVersion: vulkan.MakeAPIVersion(0, 1, 0),
		PEngineName:        vulkan.CString(version.Vendor()),
		EngineVersion:      vulkan.MakeAPIVersion(0, 1, 0),
		APIVersion:         vulkan.APIVersion13,
	}

	createInfo := vulkan.InstanceCreateInfo{
		SType:            vulkan.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &appInfo,
	}

	var (
		layers []*byte
		exts   []*byte
		debug  vulkan.DebugUtilsMessengerCreateInfoEXT
	)
	if validation {
		layers = []*byte{vulkan.CString(vulkan.ValidationLayerName)}
		exts = []*byte{vulkan.CString(vulkan.DebugUtilsExtension)}
		createInfo.EnabledLayerCount = 1
		createInfo.PPEnabledLayerNames = &layers[0]
		createInfo.EnabledExtensionCount = 1
		createInfo.PPEnabledExtensionNames = &exts[0]

		// Chained so messages from vkCreateInstance itself are captured
		debug = vulkan.NewDebugMessengerCreateInfo()
		createInfo.PNext = unsafe.Pointer(&debug)
	}

	return vulkan.CreateInstance(&createInfo)
}

// bindDevice walks the physical devices looking for the one whose DRM
// properties match the host's device node, then fills in its codec and
// queue family capabilities.
func (c *Capability) bindDevice(id drm.DeviceID) error {
	logger := logging.GetLogger("backend")

	devices, err := c.instance.PhysicalDevices()
	if err != nil {
		return fmt.Errorf("%v: %w", err, vabackend.StatusOperationFailed)
	}

	for _, device := range devices {
		var drmProps vulkan.PhysicalDeviceDrmPropertiesEXT
		drmProps.SType = vulkan.StructureTypePhysicalDeviceDrmPropertiesEXT

		var props vulkan.PhysicalDeviceProperties2
		props.SType = vulkan.StructureTypePhysicalDeviceProperties2
		props.PNext = unsafe.Pointer(&drmProps)
		device.Properties2(&props)

		name := props.Properties.Name()
		logger.Debug("considering physical device",
			"name", name,
			"primary", fmt.Sprintf("%d/%d", drmProps.PrimaryMajor, drmProps.PrimaryMinor),
			"render", fmt.Sprintf("%d/%d", drmProps.RenderMajor, drmProps.RenderMinor))

		if !matchesDRMIdentity(&drmProps, id) {
			continue
		}

		c.Device = device
		c.DeviceName = name
		c.DeviceType = props.Properties.DeviceType
		c.APIVersion = props.Properties.APIVersion
		c.DriverVersion = props.Properties.DriverVersion
		c.VendorID = props.Properties.VendorID
		c.DeviceID = props.Properties.DeviceID

		exts, err := device.ExtensionProperties()
		if err != nil {
			return fmt.Errorf("%v: %w", err, vabackend.StatusOperationFailed)
		}
		c.Codecs = codecsFromExtensions(exts)

		queue, ok := selectDecodeQueue(device)
		if !ok {
			logger.Error("no video decode capable queue family", "device", name)
			return fmt.Errorf("device %s has no video decode queue: %w", name, vabackend.StatusOperationFailed)
		}
		c.DecodeQueue = queue
		return nil
	}

	logger.Error("no physical device matches DRM identity", "drm", id, "devices", len(devices))
	return fmt.Errorf("no Vulkan device for DRM node %s: %w", id, vabackend.StatusOperationFailed)
}

// matchesDRMIdentity implements the device selection rule: the target
// node may be either the primary or the render node of the device.
func matchesDRMIdentity(props *vulkan.PhysicalDeviceDrmPropertiesEXT, id drm.DeviceID) bool {
	if props.HasPrimary == vulkan.True &&
		props.PrimaryMajor == id.Major && props.PrimaryMinor == id.Minor {
		return true
	}
	if props.HasRender == vulkan.True &&
		props.RenderMajor == id.Major && props.RenderMinor == id.Minor {
		return true
	}
	return false
}

// selectDecodeQueue picks the first queue family that can both decode
// video and transfer, which is the combination surface and image
// operations need.
func selectDecodeQueue(device vulkan.PhysicalDevice) (QueueFamily, bool) {
	count := device.QueueFamilyCount()
	if count == 0 {
		return QueueFamily{}, false
	}

	props := make([]vulkan.QueueFamilyProperties2, count)
	video := make([]vulkan.QueueFamilyVideoPropertiesKHR, count)
	status := make([]vulkan.QueueFamilyQueryResultStatusPropertiesKHR, count)
	for i := range props {
		props[i].SType = vulkan.StructureTypeQueueFamilyProperties2
		props[i].PNext = unsafe.Pointer(&video[i])
		video[i].SType = vulkan.StructureTypeQueueFamilyVideoPropertiesKHR
		video[i].PNext = unsafe.Pointer(&status[i])
		status[i].SType = vulkan.StructureTypeQueueFamilyQueryResultStatusPropertiesKHR
	}
	device.QueueFamilies(props)

	return pickDecodeQueue(props, video, status)
}

// pickDecodeQueue scans filled queue family properties in index order
// and returns the first usable family.
func pickDecodeQueue(props []vulkan.QueueFamilyProperties2, video []vulkan.QueueFamilyVideoPropertiesKHR, status []vulkan.QueueFamilyQueryResultStatusPropertiesKHR) (QueueFamily, bool) {
	const wanted = vulkan.QueueVideoDecodeKHR | vulkan.QueueTransfer

	for i := range props {
		p := props[i].QueueFamilyProperties
		if p.QueueCount == 0 || p.QueueFlags&wanted != wanted {
			continue
		}
		return QueueFamily{
			Index:                uint32(i),
			Flags:                p.QueueFlags,
			VideoCodecOperations: video[i].VideoCodecOperations,
			QueryResultStatus:    status[i].QueryResultStatusSupport == vulkan.True,
		}, true
	}
	return QueueFamily{}, false
}

// Close releases the Vulkan objects. The messenger goes down before the
// instance that owns it. Safe to call more than once.
func (c *Capability) Close() {
	c.closeOnce.Do(func() {
		if c.instance == 0 {
			return
		}
		c.instance.DestroyDebugUtilsMessenger(c.messenger)
		c.instance.Destroy()
	})
}
