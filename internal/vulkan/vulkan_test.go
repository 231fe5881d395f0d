//go:build linux

package vulkan

import "testing"

func TestCStringRoundTrip(t *testing.T) {
	tests := []string{"", "libvulkan.so.1", "VK_LAYER_KHRONOS_validation"}
	for _, s := range tests {
		t.Run("value "+s, func(t *testing.T) {
			if got := GoString(CString(s)); got != s {
				t.Errorf("GoString(CString(%q)) = %q", s, got)
			}
		})
	}
}

func TestGoStringNil(t *testing.T) {
	if got := GoString(nil); got != "" {
		t.Errorf("GoString(nil) = %q, want empty", got)
	}
}

func TestMakeAPIVersion(t *testing.T) {
	if MakeAPIVersion(1, 3, 0) != APIVersion13 {
		t.Errorf("MakeAPIVersion(1,3,0) = %#x, want %#x", MakeAPIVersion(1, 3, 0), APIVersion13)
	}
	if got := MakeAPIVersion(1, 2, 189); got != 1<<22|2<<12|189 {
		t.Errorf("MakeAPIVersion(1,2,189) = %#x", got)
	}
}

func TestResultStrings(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Success, "VK_SUCCESS"},
		{ErrorInitializationFailed, "VK_ERROR_INITIALIZATION_FAILED"},
		{Result(-1000023000), "VkResult(-1000023000)"},
	}
	for _, tt := range tests {
		if tt.r.String() != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", int32(tt.r), tt.r.String(), tt.want)
		}
	}
}

func TestResultCheck(t *testing.T) {
	if err := Success.Check(); err != nil {
		t.Errorf("Success.Check() = %v, want nil", err)
	}
	if err := ErrorOutOfHostMemory.Check(); err == nil {
		t.Error("error result should fail Check")
	}
}

func TestDebugMessengerCreateInfo(t *testing.T) {
	info := NewDebugMessengerCreateInfo()
	if info.SType != StructureTypeDebugUtilsMessengerCreateInfoEXT {
		t.Errorf("sType = %d", info.SType)
	}
	if info.PfnUserCallback == 0 {
		t.Error("callback pointer must be populated")
	}
	if info.MessageSeverity&DebugSeverityError == 0 {
		t.Error("error severity must be subscribed")
	}
	// The callback is a process-wide singleton
	if again := NewDebugMessengerCreateInfo(); again.PfnUserCallback != info.PfnUserCallback {
		t.Error("callback pointer should be stable across calls")
	}
}
