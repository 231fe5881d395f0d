//go:build linux

package backend

import (
	"testing"

	"github.com/vulkan-va/vavk/internal/drm"
	"github.com/vulkan-va/vavk/internal/vulkan"
)

func TestMatchesDRMIdentity(t *testing.T) {
	props := vulkan.PhysicalDeviceDrmPropertiesEXT{
		HasPrimary:   vulkan.True,
		HasRender:    vulkan.True,
		PrimaryMajor: 226, PrimaryMinor: 0,
		RenderMajor: 226, RenderMinor: 128,
	}

	tests := []struct {
		name  string
		props vulkan.PhysicalDeviceDrmPropertiesEXT
		id    drm.DeviceID
		want  bool
	}{
		{"primary node", props, drm.DeviceID{Major: 226, Minor: 0}, true},
		{"render node", props, drm.DeviceID{Major: 226, Minor: 128}, true},
		{"unrelated node", props, drm.DeviceID{Major: 226, Minor: 129}, false},
		{"wrong major", props, drm.DeviceID{Major: 13, Minor: 128}, false},
		{
			"primary flag cleared",
			vulkan.PhysicalDeviceDrmPropertiesEXT{
				HasRender:    vulkan.True,
				PrimaryMajor: 226, PrimaryMinor: 0,
				RenderMajor: 226, RenderMinor: 128,
			},
			drm.DeviceID{Major: 226, Minor: 0},
			false,
		},
		{
			"render flag cleared",
			vulkan.PhysicalDeviceDrmPropertiesEXT{
				HasPrimary:   vulkan.True,
				PrimaryMajor: 226, PrimaryMinor: 0,
				RenderMajor: 226, RenderMinor: 128,
			},
			drm.DeviceID{Major: 226, Minor: 128},
			false,
		},
		{"no nodes at all", vulkan.PhysicalDeviceDrmPropertiesEXT{}, drm.DeviceID{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesDRMIdentity(&tt.props, tt.id); got != tt.want {
				t.Errorf("matchesDRMIdentity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func queueFamily(flags vulkan.QueueFlags, count uint32) vulkan.QueueFamilyProperties2 {
	var p vulkan.QueueFamilyProperties2
	p.QueueFamilyProperties.QueueFlags = flags
	p.QueueFamilyProperties.QueueCount = count
	return p
}

func TestPickDecodeQueue(t *testing.T) {
	decode := vulkan.QueueVideoDecodeKHR | vulkan.QueueTransfer

	t.Run("first qualifying family wins", func(t *testing.T) {
		props := []vulkan.QueueFamilyProperties2{
			queueFamily(vulkan.QueueGraphics|vulkan.QueueCompute|vulkan.QueueTransfer, 4),
			queueFamily(decode, 2),
			queueFamily(decode, 1),
		}
		video := []vulkan.QueueFamilyVideoPropertiesKHR{
			{}, {VideoCodecOperations: vulkan.VideoCodecOperationDecodeH264}, {},
		}
		status := []vulkan.QueueFamilyQueryResultStatusPropertiesKHR{
			{}, {QueryResultStatusSupport: vulkan.True}, {},
		}

		queue, ok := pickDecodeQueue(props, video, status)
		if !ok {
			t.Fatal("expected a queue family")
		}
		if queue.Index != 1 {
			t.Errorf("index = %d, want 1", queue.Index)
		}
		if queue.VideoCodecOperations != vulkan.VideoCodecOperationDecodeH264 {
			t.Errorf("operations = %#x", queue.VideoCodecOperations)
		}
		if !queue.QueryResultStatus {
			t.Error("query result status should carry over")
		}
	})

	t.Run("decode without transfer is not enough", func(t *testing.T) {
		props := []vulkan.QueueFamilyProperties2{
			queueFamily(vulkan.QueueVideoDecodeKHR, 1),
		}
		if _, ok := pickDecodeQueue(props, make([]vulkan.QueueFamilyVideoPropertiesKHR, 1), make([]vulkan.QueueFamilyQueryResultStatusPropertiesKHR, 1)); ok {
			t.Error("family without transfer should be skipped")
		}
	})

	t.Run("zero queue count is skipped", func(t *testing.T) {
		props := []vulkan.QueueFamilyProperties2{
			queueFamily(decode, 0),
		}
		if _, ok := pickDecodeQueue(props, make([]vulkan.QueueFamilyVideoPropertiesKHR, 1), make([]vulkan.QueueFamilyQueryResultStatusPropertiesKHR, 1)); ok {
			t.Error("family with no queues should be skipped")
		}
	})

	t.Run("no families", func(t *testing.T) {
		if _, ok := pickDecodeQueue(nil, nil, nil); ok {
			t.Error("empty input should not select a family")
		}
	})
}
