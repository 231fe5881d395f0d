//go:build linux

package driver

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/vulkan-va/vavk/internal/backend"
	"github.com/vulkan-va/vavk/internal/catalog"
	"github.com/vulkan-va/vavk/internal/config"
	"github.com/vulkan-va/vavk/internal/drm"
	"github.com/vulkan-va/vavk/internal/logging"
	"github.com/vulkan-va/vavk/internal/version"
	"github.com/vulkan-va/vavk/pkg/vabackend"
)

// Capacities advertised through the context at init. The host treats
// them as upper bounds on all subsequent output arrays.
const (
	maxAttributes    = 1
	maxImageFormats  = 1
	maxSubpicFormats = 1
)

var (
	vendorOnce   sync.Once
	vendorPtr    unsafe.Pointer
	vendorPinner runtime.Pinner

	setupOnce sync.Once
	setupCfg  config.Config
)

// vendorString returns a NUL terminated vendor string pinned for the
// process lifetime, as the contract requires of str_vendor.
func vendorString() unsafe.Pointer {
	vendorOnce.Do(func() {
		b := append([]byte(version.Vendor()), 0)
		vendorPinner.Pin(&b[0])
		vendorPtr = unsafe.Pointer(&b[0])
	})
	return vendorPtr
}

// setup loads configuration and brings up logging exactly once per
// process, however many times the host re-enters init.
func setup() config.Config {
	setupOnce.Do(func() {
		cfg, err := config.Load(config.Path())
		if err != nil {
			cfg = config.Default()
		}
		if !logging.Initialized() {
			logging.Initialize(cfg.Logging)
		}
		if err != nil {
			logging.GetLogger("config").Warn("config file unusable, using defaults",
				"path", config.Path(), "error", err)
		}
		setupCfg = cfg

		if cfg.Watch {
			startConfigWatcher()
		}
	})
	return setupCfg
}

// startConfigWatcher retunes log levels when the config file changes.
// The watcher lives for the rest of the process.
func startConfigWatcher() {
	logger := logging.GetLogger("config")
	w := config.NewWatcher(config.Path(), config.Load, logger)
	w.OnReload(func(cfg config.Config) {
		logging.Initialize(cfg.Logging)
		logger.Info("logging configuration reloaded")
	})
	if err := w.Start(); err != nil {
		logger.Warn("config watcher failed to start", "error", err)
	}
}

// Init implements the versioned init entry point the host locates via
// dlsym. It validates the context, advertises capacities and the vendor
// string, installs the dispatch table and binds the Vulkan backend to
// the context's DRM device. On any failure no driver data is attached.
func Init(p unsafe.Pointer) vabackend.Status {
	cfg := setup()
	logger := logging.GetLogger("driver")
	logger.Debug("driver init entered", "version", version.String())

	ctx, err := vabackend.ContextFromPointer(p)
	if err != nil {
		return vabackend.AsStatus(err)
	}

	if ctx.VTable == nil || !vabackend.PointerAligned(unsafe.Pointer(ctx.VTable), unsafe.Alignof(vabackend.VTable{})) {
		logger.Error("vtable pointer is nil or misaligned")
		return vabackend.StatusInvalidParameter
	}

	ctx.MaxProfiles = int32(len(vabackend.Profiles))
	ctx.MaxEntrypoints = catalog.MaxEntrypointsPerProfile
	ctx.MaxAttributes = maxAttributes
	ctx.MaxImageFormats = maxImageFormats
	ctx.MaxSubpicFormats = maxSubpicFormats
	ctx.StrVendor = vendorString()

	fillVTable(ctx.VTable)

	id, err := drm.DeviceIDFromContext(ctx)
	if err != nil {
		return vabackend.AsStatus(err)
	}

	capability, err := backend.Initialize(id, cfg)
	if err != nil {
		logger.Error("backend initialization failed", "error", err)
		return vabackend.AsStatus(err)
	}

	ctx.PDriverData = newDriverData(capability).pointer()

	logger.Info("driver initialized",
		"vendor", version.Vendor(),
		"device", capability.DeviceName,
		"drm", id)

	return vabackend.StatusSuccess
}
