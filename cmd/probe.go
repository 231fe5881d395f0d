//go:build linux

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/vulkan-va/vavk/internal/backend"
	"github.com/vulkan-va/vavk/internal/catalog"
	"github.com/vulkan-va/vavk/internal/drm"
	"github.com/vulkan-va/vavk/internal/logging"
	"github.com/vulkan-va/vavk/internal/version"
	"github.com/vulkan-va/vavk/pkg/vabackend"
)

var (
	probeDevice  string
	probeOutput  string
	probeFormat  string
	probeLogDump bool
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe Vulkan Video capabilities for a DRM device",
	Long: `Runs the driver's device-identity and capability discovery path
against a DRM node and reports the result. This exercises exactly the
code the host's init entry point runs, minus the host itself.`,
	RunE: runProbe,
}

// profileReport is one row of the enumerated profile table.
type profileReport struct {
	Profile     string   `toml:"profile"`
	Entrypoints []string `toml:"entrypoints"`
}

type deviceReport struct {
	Node        string `toml:"node"`
	DRMIdentity string `toml:"drm_identity"`
	Name        string `toml:"name"`
	APIVersion  string `toml:"api_version"`
	VendorID    uint32 `toml:"vendor_id"`
	DeviceID    uint32 `toml:"device_id"`
}

type probeReport struct {
	Version  version.Info            `toml:"version"`
	Device   deviceReport            `toml:"device"`
	Codecs   backend.SupportedCodecs `toml:"codecs"`
	Queue    backend.QueueFamily     `toml:"queue_family"`
	Profiles []profileReport         `toml:"profiles"`
}

func runProbe(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cli")

	f, err := os.Open(probeDevice)
	if err != nil {
		return fmt.Errorf("opening DRM node: %w", err)
	}
	defer f.Close()

	id, err := drm.DeviceIDFromFd(int(f.Fd()))
	if err != nil {
		return fmt.Errorf("resolving device identity for %s: %w", probeDevice, err)
	}

	capability, err := backend.Initialize(id, loadedConfig)
	if err != nil {
		dumpLogsIfRequested()
		return fmt.Errorf("capability discovery failed: %w", err)
	}
	defer capability.Close()

	report, err := buildReport(probeDevice, id, capability)
	if err != nil {
		return err
	}

	out := os.Stdout
	if probeOutput != "" {
		out, err = os.Create(probeOutput)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer out.Close()
		logger.Info("writing report", "path", probeOutput, "format", probeFormat)
	}

	switch probeFormat {
	case "toml":
		enc := toml.NewEncoder(out)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	case "text":
		printTextReport(out, report)
	default:
		return fmt.Errorf("unknown format %q, want text or toml", probeFormat)
	}

	dumpLogsIfRequested()
	return nil
}

func buildReport(node string, id drm.DeviceID, c *backend.Capability) (*probeReport, error) {
	report := &probeReport{
		Version: version.Get(),
		Device: deviceReport{
			Node:        node,
			DRMIdentity: id.String(),
			Name:        c.DeviceName,
			APIVersion: fmt.Sprintf("%d.%d.%d",
				c.APIVersion>>22, (c.APIVersion>>12)&0x3ff, c.APIVersion&0xfff),
			VendorID: c.VendorID,
			DeviceID: c.DeviceID,
		},
		Codecs: c.Codecs,
		Queue:  c.DecodeQueue,
	}

	profiles, err := catalog.Profiles(c.Codecs, len(vabackend.Profiles))
	if err != nil {
		return nil, fmt.Errorf("enumerating profiles: %w", err)
	}
	for _, p := range profiles {
		entrypoints, err := catalog.Entrypoints(p, c.Codecs, catalog.MaxEntrypointsPerProfile)
		if err != nil {
			return nil, fmt.Errorf("enumerating entrypoints for %s: %w", p, err)
		}
		row := profileReport{Profile: p.String()}
		for _, e := range entrypoints {
			row.Entrypoints = append(row.Entrypoints, e.String())
		}
		report.Profiles = append(report.Profiles, row)
	}
	return report, nil
}

func printTextReport(out *os.File, r *probeReport) {
	fmt.Fprintf(out, "Device:       %s\n", r.Device.Name)
	fmt.Fprintf(out, "DRM node:     %s (%s)\n", r.Device.Node, r.Device.DRMIdentity)
	fmt.Fprintf(out, "Vulkan:       %s (vendor %#04x, device %#04x)\n",
		r.Device.APIVersion, r.Device.VendorID, r.Device.DeviceID)
	fmt.Fprintf(out, "Queue family: %d (query result status: %v)\n",
		r.Queue.Index, r.Queue.QueryResultStatus)

	fmt.Fprintln(out, "Codecs:")
	codecLines := []struct {
		name           string
		decode, encode bool
	}{
		{"h264", r.Codecs.DecodeH264, r.Codecs.EncodeH264},
		{"h265", r.Codecs.DecodeH265, r.Codecs.EncodeH265},
		{"av1", r.Codecs.DecodeAV1, r.Codecs.EncodeAV1},
		{"vp9", r.Codecs.DecodeVP9, false},
	}
	for _, c := range codecLines {
		var ops []string
		if c.decode {
			ops = append(ops, "decode")
		}
		if c.encode {
			ops = append(ops, "encode")
		}
		if len(ops) == 0 {
			ops = append(ops, "none")
		}
		fmt.Fprintf(out, "  %-5s %s\n", c.name+":", strings.Join(ops, "+"))
	}

	fmt.Fprintln(out, "Profiles:")
	if len(r.Profiles) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, p := range r.Profiles {
		fmt.Fprintf(out, "  %-34s %s\n", p.Profile+":", strings.Join(p.Entrypoints, ", "))
	}
}

// dumpLogsIfRequested prints the in-memory log history, which captures
// debug detail from the discovery path even when stdout logging runs at
// a higher level.
func dumpLogsIfRequested() {
	if !probeLogDump {
		return
	}
	fmt.Fprintln(os.Stderr, "--- log history ---")
	for _, entry := range logging.GetBuffer().ReadAll() {
		fmt.Fprintln(os.Stderr, logging.FormatLogLine(entry))
	}
}

func init() {
	probeCmd.Flags().StringVarP(&probeDevice, "device", "d", "/dev/dri/renderD128", "DRM device node to probe")
	probeCmd.Flags().StringVarP(&probeOutput, "output", "o", "", "Write the report to a file instead of stdout")
	probeCmd.Flags().StringVarP(&probeFormat, "format", "f", "text", "Report format (text, toml)")
	probeCmd.Flags().BoolVar(&probeLogDump, "log-dump", false, "Dump the in-memory log history after probing")
	rootCmd.AddCommand(probeCmd)
}
