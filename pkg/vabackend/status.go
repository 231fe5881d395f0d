//go:build linux

package vabackend

import "errors"

// Status is a VA-API status code as returned across the driver ABI.
// The zero value is VA_STATUS_SUCCESS. Status implements error so that
// driver internals can return and wrap codes directly; AsStatus folds
// any error chain back into the single code the host receives.
type Status int32

// Status codes, bit-exact with va.h.
const (
	StatusSuccess                Status = 0x00000000
	StatusOperationFailed        Status = 0x00000001
	StatusAllocationFailed       Status = 0x00000002
	StatusInvalidDisplay         Status = 0x00000003
	StatusInvalidConfig          Status = 0x00000004
	StatusInvalidContext         Status = 0x00000005
	StatusInvalidSurface         Status = 0x00000006
	StatusInvalidBuffer          Status = 0x00000007
	StatusInvalidImage           Status = 0x00000008
	StatusInvalidSubpicture      Status = 0x00000009
	StatusAttrNotSupported       Status = 0x0000000a
	StatusMaxNumExceeded         Status = 0x0000000b
	StatusUnsupportedProfile     Status = 0x0000000c
	StatusUnsupportedEntrypoint  Status = 0x0000000d
	StatusUnsupportedRTFormat    Status = 0x0000000e
	StatusUnsupportedBufferType  Status = 0x0000000f
	StatusSurfaceBusy            Status = 0x00000010
	StatusFlagNotSupported       Status = 0x00000011
	StatusInvalidParameter       Status = 0x00000012
	StatusResolutionNotSupported Status = 0x00000013
	StatusUnimplemented          Status = 0x00000014
	StatusSurfaceInDisplaying    Status = 0x00000015
	StatusInvalidImageFormat     Status = 0x00000016
	StatusDecodingError          Status = 0x00000017
	StatusEncodingError          Status = 0x00000018
	StatusInvalidValue           Status = 0x00000019
	StatusUnknown                Status = -1
)

var statusNames = map[Status]string{
	StatusSuccess:                "success",
	StatusOperationFailed:        "operation failed",
	StatusAllocationFailed:       "allocation failed",
	StatusInvalidDisplay:         "invalid VADisplay",
	StatusInvalidConfig:          "invalid VAConfigID",
	StatusInvalidContext:         "invalid VAContextID",
	StatusInvalidSurface:         "invalid VASurfaceID",
	StatusInvalidBuffer:          "invalid VABufferID",
	StatusInvalidImage:           "invalid VAImageID",
	StatusInvalidSubpicture:      "invalid VASubpictureID",
	StatusAttrNotSupported:       "attribute not supported",
	StatusMaxNumExceeded:         "list argument exceeds maximum number",
	StatusUnsupportedProfile:     "the requested VAProfile is not supported",
	StatusUnsupportedEntrypoint:  "the requested VAEntrypoint is not supported",
	StatusUnsupportedRTFormat:    "the requested RT format is not supported",
	StatusUnsupportedBufferType:  "the requested VABufferType is not supported",
	StatusSurfaceBusy:            "surface is in use",
	StatusFlagNotSupported:       "flag not supported",
	StatusInvalidParameter:       "invalid parameter",
	StatusResolutionNotSupported: "resolution not supported",
	StatusUnimplemented:          "the requested function is not implemented",
	StatusSurfaceInDisplaying:    "surface is in displaying",
	StatusInvalidImageFormat:     "invalid VAImageFormat",
	StatusDecodingError:          "decoding error",
	StatusEncodingError:          "encoding error",
	StatusInvalidValue:           "an invalid/unsupported value was supplied",
	StatusUnknown:                "unknown libva error",
}

// Error implements error.
func (s Status) Error() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown libva error"
}

// AsStatus reduces an error chain to the single status code that crosses
// the driver ABI. A nil error is success; an error chain that does not
// carry a Status collapses to StatusOperationFailed so that no internal
// representation can leak to the host.
func AsStatus(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return StatusOperationFailed
}
