//go:build linux

package driver

import (
	"testing"
	"unsafe"

	"github.com/vulkan-va/vavk/internal/backend"
	"github.com/vulkan-va/vavk/internal/catalog"
	"github.com/vulkan-va/vavk/pkg/vabackend"
)

func testContext(t *testing.T, codecs backend.SupportedCodecs) *vabackend.DriverContext {
	t.Helper()
	data := newDriverData(&backend.Capability{Codecs: codecs})
	ctx := &vabackend.DriverContext{
		PDriverData:    data.pointer(),
		MaxProfiles:    int32(len(vabackend.Profiles)),
		MaxEntrypoints: catalog.MaxEntrypointsPerProfile,
	}
	t.Cleanup(func() {
		// Terminate may already have released it
		if ctx.PDriverData != nil {
			data.release()
		}
	})
	return ctx
}

func TestDriverDataRoundTrip(t *testing.T) {
	ctx := testContext(t, backend.SupportedCodecs{DecodeH264: true})

	data, err := dataFromContext(ctx)
	if err != nil {
		t.Fatalf("dataFromContext() error: %v", err)
	}
	if !data.Capability.Codecs.DecodeH264 {
		t.Error("capability record lost through the round trip")
	}
}

func TestDataFromContextRejectsNil(t *testing.T) {
	var ctx vabackend.DriverContext
	if _, err := dataFromContext(&ctx); vabackend.AsStatus(err) != vabackend.StatusInvalidParameter {
		t.Errorf("nil private data: got %v, want invalid parameter", err)
	}
}

func TestDataFromContextRejectsForeignPointer(t *testing.T) {
	// Correctly aligned memory that does not carry the driver magic
	foreign := struct {
		magic uint32
		_     [64]byte
	}{magic: 0xdeadbeef}

	ctx := vabackend.DriverContext{PDriverData: unsafe.Pointer(&foreign)}
	if _, err := dataFromContext(&ctx); vabackend.AsStatus(err) != vabackend.StatusInvalidParameter {
		t.Errorf("foreign pointer: got %v, want invalid parameter", err)
	}
}

func TestTerminate(t *testing.T) {
	t.Run("releases driver data", func(t *testing.T) {
		ctx := testContext(t, backend.SupportedCodecs{})

		if got := terminate(unsafe.Pointer(ctx)); got != uintptr(vabackend.StatusSuccess) {
			t.Fatalf("terminate = %#x, want success", got)
		}
		if ctx.PDriverData != nil {
			t.Error("private data slot should be cleared")
		}
	})

	t.Run("tolerates null private data", func(t *testing.T) {
		var ctx vabackend.DriverContext
		if got := terminate(unsafe.Pointer(&ctx)); got != uintptr(vabackend.StatusSuccess) {
			t.Errorf("terminate on empty context = %#x, want success", got)
		}
	})

	t.Run("double terminate never double frees", func(t *testing.T) {
		ctx := testContext(t, backend.SupportedCodecs{})

		if got := terminate(unsafe.Pointer(ctx)); got != uintptr(vabackend.StatusSuccess) {
			t.Fatalf("first terminate = %#x", got)
		}
		if got := terminate(unsafe.Pointer(ctx)); got != uintptr(vabackend.StatusSuccess) {
			t.Errorf("second terminate = %#x, want success", got)
		}
	})

	t.Run("nil context", func(t *testing.T) {
		if got := terminate(nil); got != uintptr(vabackend.StatusInvalidParameter) {
			t.Errorf("terminate(nil) = %#x, want invalid parameter", got)
		}
	})
}

func TestQueryConfigProfiles(t *testing.T) {
	ctx := testContext(t, backend.SupportedCodecs{DecodeH264: true, DecodeVP9: true})

	var profiles [64]vabackend.Profile
	var num int32

	got := queryConfigProfiles(unsafe.Pointer(ctx),
		unsafe.Pointer(&profiles[0]), unsafe.Pointer(&num))
	if got != uintptr(vabackend.StatusSuccess) {
		t.Fatalf("queryConfigProfiles = %#x, want success", got)
	}

	want := []vabackend.Profile{
		vabackend.ProfileH264ConstrainedBaseline,
		vabackend.ProfileH264Main,
		vabackend.ProfileH264High,
		vabackend.ProfileVP9Profile0,
		vabackend.ProfileVP9Profile1,
		vabackend.ProfileVP9Profile2,
		vabackend.ProfileVP9Profile3,
	}
	if int(num) != len(want) {
		t.Fatalf("num_profiles = %d, want %d", num, len(want))
	}
	for i, p := range want {
		if profiles[i] != p {
			t.Errorf("profiles[%d] = %d, want %d", i, profiles[i], p)
		}
	}
}

func TestQueryConfigProfilesValidation(t *testing.T) {
	ctx := testContext(t, backend.SupportedCodecs{DecodeH264: true})
	var profiles [64]vabackend.Profile
	var num int32

	t.Run("nil profile list", func(t *testing.T) {
		got := queryConfigProfiles(unsafe.Pointer(ctx), nil, unsafe.Pointer(&num))
		if got != uintptr(vabackend.StatusInvalidParameter) {
			t.Errorf("got %#x, want invalid parameter", got)
		}
	})

	t.Run("nil count", func(t *testing.T) {
		got := queryConfigProfiles(unsafe.Pointer(ctx), unsafe.Pointer(&profiles[0]), nil)
		if got != uintptr(vabackend.StatusInvalidParameter) {
			t.Errorf("got %#x, want invalid parameter", got)
		}
	})

	t.Run("nil context", func(t *testing.T) {
		got := queryConfigProfiles(nil, unsafe.Pointer(&profiles[0]), unsafe.Pointer(&num))
		if got != uintptr(vabackend.StatusInvalidParameter) {
			t.Errorf("got %#x, want invalid parameter", got)
		}
	})

	t.Run("capacity invariant violated", func(t *testing.T) {
		ctx := testContext(t, backend.SupportedCodecs{DecodeH264: true})
		ctx.MaxProfiles = 1

		got := queryConfigProfiles(unsafe.Pointer(ctx),
			unsafe.Pointer(&profiles[0]), unsafe.Pointer(&num))
		if got != uintptr(vabackend.StatusOperationFailed) {
			t.Errorf("got %#x, want operation failed", got)
		}
	})
}

func TestQueryConfigEntrypoints(t *testing.T) {
	ctx := testContext(t, backend.SupportedCodecs{DecodeH265: true, EncodeH265: true})

	var entrypoints [catalog.MaxEntrypointsPerProfile]vabackend.Entrypoint
	var num int32

	t.Run("decode and encode", func(t *testing.T) {
		got := queryConfigEntrypoints(unsafe.Pointer(ctx), int32(vabackend.ProfileHEVCMain),
			unsafe.Pointer(&entrypoints[0]), unsafe.Pointer(&num))
		if got != uintptr(vabackend.StatusSuccess) {
			t.Fatalf("queryConfigEntrypoints = %#x, want success", got)
		}
		if num != 2 || entrypoints[0] != vabackend.EntrypointVLD || entrypoints[1] != vabackend.EntrypointEncSlice {
			t.Errorf("entrypoints = %v (n=%d), want [VLD EncSlice]", entrypoints, num)
		}
	})

	t.Run("unsupported profile", func(t *testing.T) {
		got := queryConfigEntrypoints(unsafe.Pointer(ctx), int32(vabackend.ProfileMPEG2Main),
			unsafe.Pointer(&entrypoints[0]), unsafe.Pointer(&num))
		if got != uintptr(vabackend.StatusUnsupportedProfile) {
			t.Errorf("got %#x, want unsupported profile", got)
		}
	})

	t.Run("capacity invariant violated", func(t *testing.T) {
		ctx := testContext(t, backend.SupportedCodecs{DecodeH265: true})
		ctx.MaxEntrypoints = 1

		got := queryConfigEntrypoints(unsafe.Pointer(ctx), int32(vabackend.ProfileHEVCMain),
			unsafe.Pointer(&entrypoints[0]), unsafe.Pointer(&num))
		if got != uintptr(vabackend.StatusOperationFailed) {
			t.Errorf("got %#x, want operation failed", got)
		}
	})
}

func TestStub(t *testing.T) {
	ctx := testContext(t, backend.SupportedCodecs{})

	if got := stub(vabackend.OpCreateConfig, unsafe.Pointer(ctx)); got != uintptr(vabackend.StatusUnimplemented) {
		t.Errorf("stub = %#x, want unimplemented", got)
	}
	if got := stub(vabackend.OpCreateConfig, nil); got != uintptr(vabackend.StatusInvalidParameter) {
		t.Errorf("stub(nil) = %#x, want invalid parameter", got)
	}
}

func TestFillVTable(t *testing.T) {
	var vt vabackend.VTable
	// Dirty every slot to prove fillVTable overwrites, not merges
	for i := range vt.Slots {
		vt.Slots[i] = 1
	}

	fillVTable(&vt)

	implemented := []vabackend.Op{
		vabackend.OpTerminate,
		vabackend.OpQueryConfigProfiles,
		vabackend.OpQueryConfigEntrypoints,
	}
	for _, op := range implemented {
		if vt.Slots[op] == 0 || vt.Slots[op] == 1 {
			t.Errorf("%s slot should carry a fresh callback", op)
		}
	}
	for _, op := range stubOps {
		if vt.Slots[op] == 0 || vt.Slots[op] == 1 {
			t.Errorf("%s slot should carry a stub callback", op)
		}
	}
	for _, op := range absentOps {
		if vt.Slots[op] != 0 {
			t.Errorf("%s slot should stay absent", op)
		}
	}

	if len(implemented)+len(stubOps)+len(absentOps) != int(vabackend.NumOps) {
		t.Errorf("slot partition covers %d ops, vtable has %d",
			len(implemented)+len(stubOps)+len(absentOps), vabackend.NumOps)
	}
}

func TestVendorStringStable(t *testing.T) {
	first := vendorString()
	if first == nil {
		t.Fatal("vendor string pointer is nil")
	}
	if vendorString() != first {
		t.Error("vendor string pointer must be stable for the process lifetime")
	}
	if *(*byte)(first) == 0 {
		t.Error("vendor string should not be empty")
	}
}
