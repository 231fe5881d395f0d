//go:build linux

// Package catalog holds the static mapping tables between the host
// contract's profile and entrypoint enumerations and the codec
// operations the Vulkan side reports. Everything here is pure and
// deterministic; the tables are compiled-in constants.
package catalog

import (
	"fmt"

	"github.com/vulkan-va/vavk/internal/backend"
	"github.com/vulkan-va/vavk/internal/vulkan"
	"github.com/vulkan-va/vavk/pkg/vabackend"
)

// MaxEntrypointsPerProfile bounds what Entrypoints can emit: at most
// one decode and one encode entrypoint.
const MaxEntrypointsPerProfile = 2

// profileGroups lists, per codec in emission order, the profiles
// advertised when that codec supports any operation. Profile
// enumeration does not distinguish decode-only from encode-only
// capability; only entrypoint enumeration does.
var profileGroups = []struct {
	codec    backend.Codec
	profiles []vabackend.Profile
}{
	{backend.CodecH264, []vabackend.Profile{
		vabackend.ProfileH264ConstrainedBaseline,
		vabackend.ProfileH264Main,
		vabackend.ProfileH264High,
	}},
	{backend.CodecH265, []vabackend.Profile{
		vabackend.ProfileHEVCMain,
		vabackend.ProfileHEVCMain10,
	}},
	{backend.CodecAV1, []vabackend.Profile{
		vabackend.ProfileAV1Profile0,
		vabackend.ProfileAV1Profile1,
	}},
	{backend.CodecVP9, []vabackend.Profile{
		vabackend.ProfileVP9Profile0,
		vabackend.ProfileVP9Profile1,
		vabackend.ProfileVP9Profile2,
		vabackend.ProfileVP9Profile3,
	}},
}

func codecOps(codec backend.Codec, s backend.SupportedCodecs) (decode, encode bool) {
	switch codec {
	case backend.CodecH264:
		return s.DecodeH264, s.EncodeH264
	case backend.CodecH265:
		return s.DecodeH265, s.EncodeH265
	case backend.CodecAV1:
		return s.DecodeAV1, s.EncodeAV1
	case backend.CodecVP9:
		return s.DecodeVP9, false
	}
	return false, false
}

// Profiles emits the profile sequence for the supported codec set, in
// fixed codec-group order. The capacity is the host's advertised
// maximum; a sequence longer than capacity signals OperationFailed
// rather than truncating.
func Profiles(s backend.SupportedCodecs, capacity int) ([]vabackend.Profile, error) {
	var out []vabackend.Profile
	for _, group := range profileGroups {
		decode, encode := codecOps(group.codec, s)
		if !decode && !encode {
			continue
		}
		out = append(out, group.profiles...)
	}
	if len(out) > capacity {
		return nil, fmt.Errorf("profile sequence of %d exceeds advertised capacity %d: %w",
			len(out), capacity, vabackend.StatusOperationFailed)
	}
	return out, nil
}

// profileCodec is the fixed case table from profile to codec. Profiles
// outside it are unknown to this driver.
func profileCodec(p vabackend.Profile) (backend.Codec, bool) {
	switch p {
	case vabackend.ProfileH264Baseline,
		vabackend.ProfileH264ConstrainedBaseline,
		vabackend.ProfileH264Main,
		vabackend.ProfileH264High:
		return backend.CodecH264, true
	case vabackend.ProfileHEVCMain, vabackend.ProfileHEVCMain10:
		return backend.CodecH265, true
	case vabackend.ProfileAV1Profile0, vabackend.ProfileAV1Profile1:
		return backend.CodecAV1, true
	case vabackend.ProfileVP9Profile0,
		vabackend.ProfileVP9Profile1,
		vabackend.ProfileVP9Profile2,
		vabackend.ProfileVP9Profile3:
		return backend.CodecVP9, true
	}
	return 0, false
}

// Entrypoints emits the entrypoint sequence for a profile: the decode
// entrypoint first when decode is supported, then the encode
// entrypoint when encode is supported. An unknown profile signals
// UnsupportedProfile. Capacity below MaxEntrypointsPerProfile signals
// OperationFailed regardless of what would actually be emitted.
func Entrypoints(p vabackend.Profile, s backend.SupportedCodecs, capacity int) ([]vabackend.Entrypoint, error) {
	codec, ok := profileCodec(p)
	if !ok {
		return nil, fmt.Errorf("profile %d: %w", p, vabackend.StatusUnsupportedProfile)
	}

	if capacity < MaxEntrypointsPerProfile {
		return nil, fmt.Errorf("entrypoint capacity %d below required %d: %w",
			capacity, MaxEntrypointsPerProfile, vabackend.StatusOperationFailed)
	}

	decode, encode := codecOps(codec, s)
	var out []vabackend.Entrypoint
	if decode {
		out = append(out, vabackend.EntrypointVLD)
	}
	if encode {
		out = append(out, vabackend.EntrypointEncSlice)
	}
	if len(out) == 0 {
		// A profile the catalog knows but the device cannot serve
		// would never have been listed by Profiles in the first place
		return nil, fmt.Errorf("profile %d has no supported operations: %w", p, vabackend.StatusUnsupportedProfile)
	}
	return out, nil
}

// VideoProfileInfo is the per-codec profile descriptor used to build a
// Vulkan video profile for session creation.
type VideoProfileInfo struct {
	Operation vulkan.VideoCodecOperationFlagsKHR
	// StdProfileIDC is the profile_idc (H264), general_profile_idc
	// (H265) or seq_profile (AV1) value from the codec's std header.
	StdProfileIDC int32
}

// VideoProfileInfoFor maps a profile to its Vulkan video profile
// descriptor. Only the decode profiles with a session path defined get
// a descriptor; everything else reports not applicable.
func VideoProfileInfoFor(p vabackend.Profile) (VideoProfileInfo, bool) {
	switch p {
	case vabackend.ProfileH264Baseline, vabackend.ProfileH264ConstrainedBaseline:
		return VideoProfileInfo{vulkan.VideoCodecOperationDecodeH264, 66}, true
	case vabackend.ProfileH264Main:
		return VideoProfileInfo{vulkan.VideoCodecOperationDecodeH264, 77}, true
	case vabackend.ProfileH264High:
		return VideoProfileInfo{vulkan.VideoCodecOperationDecodeH264, 100}, true
	case vabackend.ProfileHEVCMain:
		return VideoProfileInfo{vulkan.VideoCodecOperationDecodeH265, 1}, true
	case vabackend.ProfileHEVCMain10:
		return VideoProfileInfo{vulkan.VideoCodecOperationDecodeH265, 2}, true
	case vabackend.ProfileAV1Profile0:
		return VideoProfileInfo{vulkan.VideoCodecOperationDecodeAV1, 0}, true
	case vabackend.ProfileAV1Profile1:
		return VideoProfileInfo{vulkan.VideoCodecOperationDecodeAV1, 1}, true
	}
	return VideoProfileInfo{}, false
}
