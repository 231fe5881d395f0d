//go:build linux

// Command shared builds the driver as a c-shared object the host loads
// with dlopen. Build with:
//
//	go build -buildmode=c-shared -o vulkan_video_drv_video.so ./shared
//
// The host locates the init entry point by its versioned symbol name.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/vulkan-va/vavk/internal/driver"
)

//export __vaDriverInit_1_22
func __vaDriverInit_1_22(driverContext unsafe.Pointer) C.int32_t {
	return C.int32_t(driver.Init(driverContext))
}

// main is required for c-shared build mode and never runs.
func main() {}
