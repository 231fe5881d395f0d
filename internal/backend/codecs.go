//go:build linux

package backend

import (
	"sort"

	"github.com/vulkan-va/vavk/internal/vulkan"
)

// Codec identifies a compressed video format.
type Codec int

const (
	CodecH264 Codec = iota
	CodecH265
	CodecAV1
	CodecVP9
)

var codecNames = [...]string{
	CodecH264: "h264",
	CodecH265: "h265",
	CodecAV1:  "av1",
	CodecVP9:  "vp9",
}

func (c Codec) String() string {
	if int(c) < len(codecNames) {
		return codecNames[c]
	}
	return "unknown"
}

// SupportedCodecs records which codec operations the physical device
// advertises through its video extensions.
type SupportedCodecs struct {
	DecodeH264 bool `toml:"decode_h264"`
	DecodeH265 bool `toml:"decode_h265"`
	DecodeAV1  bool `toml:"decode_av1"`
	DecodeVP9  bool `toml:"decode_vp9"`
	EncodeH264 bool `toml:"encode_h264"`
	EncodeH265 bool `toml:"encode_h265"`
	EncodeAV1  bool `toml:"encode_av1"`
}

// Any reports whether at least one codec operation is available.
func (s SupportedCodecs) Any() bool {
	return s != SupportedCodecs{}
}

type codecExtension struct {
	name   string
	codec  Codec
	encode bool
}

// codecExtensions maps device extension names to codec operations.
// Kept sorted by name so lookup can binary search.
var codecExtensions = [...]codecExtension{
	{"VK_KHR_video_decode_av1", CodecAV1, false},
	{"VK_KHR_video_decode_h264", CodecH264, false},
	{"VK_KHR_video_decode_h265", CodecH265, false},
	{"VK_KHR_video_decode_vp9", CodecVP9, false},
	{"VK_KHR_video_encode_av1", CodecAV1, true},
	{"VK_KHR_video_encode_h264", CodecH264, true},
	{"VK_KHR_video_encode_h265", CodecH265, true},
}

func lookupCodecExtension(name string) (codecExtension, bool) {
	i := sort.Search(len(codecExtensions), func(i int) bool {
		return codecExtensions[i].name >= name
	})
	if i < len(codecExtensions) && codecExtensions[i].name == name {
		return codecExtensions[i], true
	}
	return codecExtension{}, false
}

// codecsFromExtensions folds a device extension list into the codec
// support set. Unrelated extensions are ignored.
func codecsFromExtensions(exts []vulkan.ExtensionProperties) SupportedCodecs {
	var s SupportedCodecs
	for i := range exts {
		ext, ok := lookupCodecExtension(exts[i].Name())
		if !ok {
			continue
		}
		switch {
		case ext.codec == CodecH264 && !ext.encode:
			s.DecodeH264 = true
		case ext.codec == CodecH265 && !ext.encode:
			s.DecodeH265 = true
		case ext.codec == CodecAV1 && !ext.encode:
			s.DecodeAV1 = true
		case ext.codec == CodecVP9 && !ext.encode:
			s.DecodeVP9 = true
		case ext.codec == CodecH264 && ext.encode:
			s.EncodeH264 = true
		case ext.codec == CodecH265 && ext.encode:
			s.EncodeH265 = true
		case ext.codec == CodecAV1 && ext.encode:
			s.EncodeAV1 = true
		}
	}
	return s
}
