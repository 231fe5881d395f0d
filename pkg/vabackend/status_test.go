//go:build linux

package vabackend

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusValues(t *testing.T) {
	// Spot-check bit-exact compatibility with va.h.
	tests := []struct {
		name   string
		status Status
		want   int32
	}{
		{"success", StatusSuccess, 0x00000000},
		{"operation failed", StatusOperationFailed, 0x00000001},
		{"allocation failed", StatusAllocationFailed, 0x00000002},
		{"max num exceeded", StatusMaxNumExceeded, 0x0000000b},
		{"unsupported profile", StatusUnsupportedProfile, 0x0000000c},
		{"unsupported entrypoint", StatusUnsupportedEntrypoint, 0x0000000d},
		{"invalid parameter", StatusInvalidParameter, 0x00000012},
		{"unimplemented", StatusUnimplemented, 0x00000014},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int32(tt.status) != tt.want {
				t.Errorf("%s = %#x, want %#x", tt.name, int32(tt.status), tt.want)
			}
		})
	}
}

func TestAsStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"nil is success", nil, StatusSuccess},
		{"bare status", StatusUnsupportedProfile, StatusUnsupportedProfile},
		{"wrapped status", fmt.Errorf("query failed: %w", StatusInvalidParameter), StatusInvalidParameter},
		{"deeply wrapped", fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", StatusUnimplemented)), StatusUnimplemented},
		{"foreign error collapses", errors.New("vulkan exploded"), StatusOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsStatus(tt.err); got != tt.want {
				t.Errorf("AsStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusErrorStrings(t *testing.T) {
	if StatusUnimplemented.Error() != "the requested function is not implemented" {
		t.Errorf("unexpected message: %q", StatusUnimplemented.Error())
	}
	if Status(0x7fff).Error() != "unknown libva error" {
		t.Errorf("unknown code should map to generic message, got %q", Status(0x7fff).Error())
	}
}
