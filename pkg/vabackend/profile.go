//go:build linux

package vabackend

import "fmt"

// Profile identifies a codec plus constraint set (VAProfile).
type Profile int32

// Profile values, bit-exact with va.h.
const (
	ProfileNone                 Profile = -1
	ProfileMPEG2Simple          Profile = 0
	ProfileMPEG2Main            Profile = 1
	ProfileMPEG4Simple          Profile = 2
	ProfileMPEG4AdvancedSimple  Profile = 3
	ProfileMPEG4Main            Profile = 4
	ProfileH264Baseline         Profile = 5 // deprecated, treated as constrained baseline
	ProfileH264Main             Profile = 6
	ProfileH264High             Profile = 7
	ProfileVC1Simple            Profile = 8
	ProfileVC1Main              Profile = 9
	ProfileVC1Advanced          Profile = 10
	ProfileH263Baseline         Profile = 11
	ProfileJPEGBaseline         Profile = 12
	ProfileH264ConstrainedBaseline Profile = 13
	ProfileVP8Version0_3        Profile = 14
	ProfileH264MultiviewHigh    Profile = 15
	ProfileH264StereoHigh       Profile = 16
	ProfileHEVCMain             Profile = 17
	ProfileHEVCMain10           Profile = 18
	ProfileVP9Profile0          Profile = 19
	ProfileVP9Profile1          Profile = 20
	ProfileVP9Profile2          Profile = 21
	ProfileVP9Profile3          Profile = 22
	ProfileHEVCMain12           Profile = 23
	ProfileHEVCMain422_10       Profile = 24
	ProfileHEVCMain422_12       Profile = 25
	ProfileHEVCMain444          Profile = 26
	ProfileHEVCMain444_10       Profile = 27
	ProfileHEVCMain444_12       Profile = 28
	ProfileHEVCSccMain          Profile = 29
	ProfileHEVCSccMain10        Profile = 30
	ProfileHEVCSccMain444       Profile = 31
	ProfileAV1Profile0          Profile = 32
	ProfileAV1Profile1          Profile = 33
	ProfileHEVCSccMain444_10    Profile = 34
	ProfileProtected            Profile = 35
	ProfileH264High10           Profile = 36
	ProfileVVCMain10            Profile = 37
	ProfileVVCMultilayerMain10  Profile = 38
)

// Profiles lists every profile value defined by the contract version this
// driver targets. Its length is what init advertises as max_profiles.
var Profiles = []Profile{
	ProfileNone,
	ProfileMPEG2Simple,
	ProfileMPEG2Main,
	ProfileMPEG4Simple,
	ProfileMPEG4AdvancedSimple,
	ProfileMPEG4Main,
	ProfileH264Main,
	ProfileH264High,
	ProfileVC1Simple,
	ProfileVC1Main,
	ProfileVC1Advanced,
	ProfileH263Baseline,
	ProfileJPEGBaseline,
	ProfileH264ConstrainedBaseline,
	ProfileVP8Version0_3,
	ProfileH264MultiviewHigh,
	ProfileH264StereoHigh,
	ProfileHEVCMain,
	ProfileHEVCMain10,
	ProfileVP9Profile0,
	ProfileVP9Profile1,
	ProfileVP9Profile2,
	ProfileVP9Profile3,
	ProfileHEVCMain12,
	ProfileHEVCMain422_10,
	ProfileHEVCMain422_12,
	ProfileHEVCMain444,
	ProfileHEVCMain444_10,
	ProfileHEVCMain444_12,
	ProfileHEVCSccMain,
	ProfileHEVCSccMain10,
	ProfileHEVCSccMain444,
	ProfileAV1Profile0,
	ProfileAV1Profile1,
	ProfileHEVCSccMain444_10,
	ProfileProtected,
	ProfileH264High10,
	ProfileVVCMain10,
	ProfileVVCMultilayerMain10,
}

// Entrypoint identifies the kind of operation requested for a profile
// (VAEntrypoint).
type Entrypoint int32

// Entrypoint values, bit-exact with va.h.
const (
	EntrypointVLD              Entrypoint = 1
	EntrypointIZZ              Entrypoint = 2
	EntrypointIDCT             Entrypoint = 3
	EntrypointMoComp           Entrypoint = 4
	EntrypointDeblocking       Entrypoint = 5
	EntrypointEncSlice         Entrypoint = 6
	EntrypointEncPicture       Entrypoint = 7
	EntrypointEncSliceLP       Entrypoint = 8
	EntrypointVideoProc        Entrypoint = 10
	EntrypointFEI              Entrypoint = 11
	EntrypointStats            Entrypoint = 12
	EntrypointProtectedTEEComm Entrypoint = 13
	EntrypointProtectedContent Entrypoint = 14
)

var profileNames = map[Profile]string{
	ProfileNone:                    "VAProfileNone",
	ProfileMPEG2Simple:             "VAProfileMPEG2Simple",
	ProfileMPEG2Main:               "VAProfileMPEG2Main",
	ProfileMPEG4Simple:             "VAProfileMPEG4Simple",
	ProfileMPEG4AdvancedSimple:     "VAProfileMPEG4AdvancedSimple",
	ProfileMPEG4Main:               "VAProfileMPEG4Main",
	ProfileH264Baseline:            "VAProfileH264Baseline",
	ProfileH264Main:                "VAProfileH264Main",
	ProfileH264High:                "VAProfileH264High",
	ProfileVC1Simple:               "VAProfileVC1Simple",
	ProfileVC1Main:                 "VAProfileVC1Main",
	ProfileVC1Advanced:             "VAProfileVC1Advanced",
	ProfileH263Baseline:            "VAProfileH263Baseline",
	ProfileJPEGBaseline:            "VAProfileJPEGBaseline",
	ProfileH264ConstrainedBaseline: "VAProfileH264ConstrainedBaseline",
	ProfileVP8Version0_3:           "VAProfileVP8Version0_3",
	ProfileH264MultiviewHigh:       "VAProfileH264MultiviewHigh",
	ProfileH264StereoHigh:          "VAProfileH264StereoHigh",
	ProfileHEVCMain:                "VAProfileHEVCMain",
	ProfileHEVCMain10:              "VAProfileHEVCMain10",
	ProfileVP9Profile0:             "VAProfileVP9Profile0",
	ProfileVP9Profile1:             "VAProfileVP9Profile1",
	ProfileVP9Profile2:             "VAProfileVP9Profile2",
	ProfileVP9Profile3:             "VAProfileVP9Profile3",
	ProfileHEVCMain12:              "VAProfileHEVCMain12",
	ProfileHEVCMain422_10:          "VAProfileHEVCMain422_10",
	ProfileHEVCMain422_12:          "VAProfileHEVCMain422_12",
	ProfileHEVCMain444:             "VAProfileHEVCMain444",
	ProfileHEVCMain444_10:          "VAProfileHEVCMain444_10",
	ProfileHEVCMain444_12:          "VAProfileHEVCMain444_12",
	ProfileHEVCSccMain:             "VAProfileHEVCSccMain",
	ProfileHEVCSccMain10:           "VAProfileHEVCSccMain10",
	ProfileHEVCSccMain444:          "VAProfileHEVCSccMain444",
	ProfileAV1Profile0:             "VAProfileAV1Profile0",
	ProfileAV1Profile1:             "VAProfileAV1Profile1",
	ProfileHEVCSccMain444_10:       "VAProfileHEVCSccMain444_10",
	ProfileProtected:               "VAProfileProtected",
	ProfileH264High10:              "VAProfileH264High10",
	ProfileVVCMain10:               "VAProfileVVCMain10",
	ProfileVVCMultilayerMain10:     "VAProfileVVCMultilayerMain10",
}

// String returns the contract name of the profile.
func (p Profile) String() string {
	if name, ok := profileNames[p]; ok {
		return name
	}
	return fmt.Sprintf("VAProfile(%d)", int32(p))
}

var entrypointNames = map[Entrypoint]string{
	EntrypointVLD:              "VAEntrypointVLD",
	EntrypointIZZ:              "VAEntrypointIZZ",
	EntrypointIDCT:             "VAEntrypointIDCT",
	EntrypointMoComp:           "VAEntrypointMoComp",
	EntrypointDeblocking:       "VAEntrypointDeblocking",
	EntrypointEncSlice:         "VAEntrypointEncSlice",
	EntrypointEncPicture:       "VAEntrypointEncPicture",
	EntrypointEncSliceLP:       "VAEntrypointEncSliceLP",
	EntrypointVideoProc:        "VAEntrypointVideoProc",
	EntrypointFEI:              "VAEntrypointFEI",
	EntrypointStats:            "VAEntrypointStats",
	EntrypointProtectedTEEComm: "VAEntrypointProtectedTEEComm",
	EntrypointProtectedContent: "VAEntrypointProtectedContent",
}

// String returns the contract name of the entrypoint.
func (e Entrypoint) String() string {
	if name, ok := entrypointNames[e]; ok {
		return name
	}
	return fmt.Sprintf("VAEntrypoint(%d)", int32(e))
}
