//go:build linux

package vulkan

import (
	"log/slog"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/vulkan-va/vavk/internal/logging"
)

var (
	debugCallbackOnce sync.Once
	debugCallbackPtr  uintptr
)

// DebugCallback returns a C callable pointer routing validation layer
// messages into the "vulkan" module logger. The callback is created
// once and reused; callback slots are a finite process-wide resource.
func DebugCallback() uintptr {
	debugCallbackOnce.Do(func() {
		debugCallbackPtr = purego.NewCallback(debugMessage)
	})
	return debugCallbackPtr
}

func debugMessage(severity DebugUtilsMessageSeverityFlagsEXT, types DebugUtilsMessageTypeFlagsEXT, data *DebugUtilsMessengerCallbackDataEXT, _ unsafe.Pointer) uintptr {
	logger := logging.GetLogger("vulkan")

	var msg, id string
	if data != nil {
		msg = GoString(data.PMessage)
		id = GoString(data.PMessageIdName)
	}

	level := slog.LevelDebug
	switch {
	case severity&DebugSeverityError != 0:
		level = slog.LevelError
	case severity&DebugSeverityWarning != 0:
		level = slog.LevelWarn
	case severity&DebugSeverityInfo != 0:
		level = slog.LevelInfo
	}

	logger.Log(nil, level, msg, "id", id, "types", debugTypeString(types))

	// VK_FALSE: never abort the triggering call
	return 0
}

func debugTypeString(types DebugUtilsMessageTypeFlagsEXT) string {
	switch {
	case types&DebugTypeValidation != 0:
		return "validation"
	case types&DebugTypePerformance != 0:
		return "performance"
	default:
		return "general"
	}
}

// NewDebugMessengerCreateInfo builds the create info used both for
// instance creation pNext chaining and for the standalone messenger.
func NewDebugMessengerCreateInfo() DebugUtilsMessengerCreateInfoEXT {
	return DebugUtilsMessengerCreateInfoEXT{
		SType: StructureTypeDebugUtilsMessengerCreateInfoEXT,
		MessageSeverity: DebugSeverityVerbose | DebugSeverityInfo |
			DebugSeverityWarning | DebugSeverityError,
		MessageType:     DebugTypeGeneral | DebugTypeValidation | DebugTypePerformance,
		PfnUserCallback: DebugCallback(),
	}
}
