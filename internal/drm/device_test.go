//go:build linux

package drm

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/vulkan-va/vavk/pkg/vabackend"
)

func TestDeviceIDFromFd(t *testing.T) {
	t.Run("negative fd", func(t *testing.T) {
		if _, err := DeviceIDFromFd(-1); vabackend.AsStatus(err) != vabackend.StatusInvalidParameter {
			t.Errorf("negative fd: got %v, want invalid parameter", err)
		}
	})

	t.Run("closed fd", func(t *testing.T) {
		f, err := os.Open(os.DevNull)
		if err != nil {
			t.Fatal(err)
		}
		fd := int(f.Fd())
		f.Close()
		if _, err := DeviceIDFromFd(fd); vabackend.AsStatus(err) != vabackend.StatusOperationFailed {
			t.Errorf("closed fd: got %v, want operation failed", err)
		}
	})

	t.Run("regular file rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "not-a-device")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		if _, err := DeviceIDFromFd(int(f.Fd())); vabackend.AsStatus(err) != vabackend.StatusInvalidParameter {
			t.Errorf("regular file: got %v, want invalid parameter", err)
		}
	})

	t.Run("character device", func(t *testing.T) {
		// /dev/null is mem major 1, minor 3 on Linux
		f, err := os.Open(os.DevNull)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		id, err := DeviceIDFromFd(int(f.Fd()))
		if err != nil {
			t.Fatalf("DeviceIDFromFd(/dev/null) error: %v", err)
		}
		if id.Major != 1 || id.Minor != 3 {
			t.Errorf("identity = %v, want 1/3", id)
		}
	})

	t.Run("fd survives extraction", func(t *testing.T) {
		f, err := os.Open(os.DevNull)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		if _, err := DeviceIDFromFd(int(f.Fd())); err != nil {
			t.Fatal(err)
		}
		// The host-owned descriptor must still be usable
		if _, err := f.Stat(); err != nil {
			t.Errorf("descriptor unusable after extraction: %v", err)
		}
	})
}

func TestDeviceIDFromContext(t *testing.T) {
	t.Run("nil drm_state", func(t *testing.T) {
		var ctx vabackend.DriverContext
		if _, err := DeviceIDFromContext(&ctx); vabackend.AsStatus(err) != vabackend.StatusInvalidParameter {
			t.Errorf("nil drm_state: got %v, want invalid parameter", err)
		}
	})

	t.Run("valid state", func(t *testing.T) {
		f, err := os.Open(os.DevNull)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		state := vabackend.DRMState{Fd: int32(f.Fd())}
		ctx := vabackend.DriverContext{DRMState: unsafe.Pointer(&state)}

		id, err := DeviceIDFromContext(&ctx)
		if err != nil {
			t.Fatalf("DeviceIDFromContext() error: %v", err)
		}
		if id.Major != 1 || id.Minor != 3 {
			t.Errorf("identity = %v, want 1/3", id)
		}
	})
}

func TestDeviceIDString(t *testing.T) {
	id := DeviceID{Major: 226, Minor: 128}
	if id.String() != "226/128" {
		t.Errorf("String() = %q, want 226/128", id.String())
	}
}
