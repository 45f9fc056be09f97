package collector

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

const linuxHardwareUSBURL = "https://linux-hardware.org/?id=usb:%s-%s"

var usbLineRe = regexp.MustCompile(`^Bus\s+(\d+)\s+Device\s+(\d+):\s+ID\s+([0-9a-fA-F]{4}):([0-9a-fA-F]{4})\s*(.*)`)

// collectUSB enumerates USB devices with lsusb and attaches the verbose
// dump, which can take a while on busy hubs.
func collectUSB(ctx context.Context) *model.USBScan {
	scan := &model.USBScan{Devices: []model.USBScanDevice{}}

	if !commandExists("lsusb") {
		scan.Error = "lsusb command not found"
		return scan
	}

	out, err := runCommand(ctx, defaultTimeout, "lsusb")
	if err != nil {
		scan.Error = err.Error()
		return scan
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if dev, ok := parseUSBLine(line); ok {
			scan.Devices = append(scan.Devices, dev)
		}
	}
	scan.Count = len(scan.Devices)

	if detailed, err := runCommand(ctx, 60*time.Second, "lsusb", "-v"); err == nil {
		scan.Detailed = detailed
	}
	return scan
}

// parseUSBLine splits one lsusb line such as
//
//	Bus 001 Device 004: ID 17ef:4831 Lenovo FHD Webcam Audio
//
// into its bus, device, id, and name parts.
func parseUSBLine(line string) (model.USBScanDevice, bool) {
	m := usbLineRe.FindStringSubmatch(line)
	if m == nil {
		return model.USBScanDevice{}, false
	}

	vendorID, deviceID := m[3], m[4]
	name := strings.TrimSpace(m[5])
	if name == "" {
		name = "Unknown Device"
	}

	return model.USBScanDevice{
		Bus:              m[1],
		Device:           m[2],
		VendorID:         vendorID,
		DeviceID:         deviceID,
		FullID:           vendorID + ":" + deviceID,
		Name:             cleanDuplicateName(name),
		LinuxHardwareURL: fmt.Sprintf(linuxHardwareUSBURL, strings.ToLower(vendorID), strings.ToLower(deviceID)),
		Raw:              line,
	}, true
}

// cleanDuplicateName collapses names where the descriptor repeats the
// vendor or the whole product string, such as "Lenovo Lenovo FHD Webcam
// Audio" or "AKG C44-USB Microphone AKG C44-USB Microphone".
func cleanDuplicateName(name string) string {
	words := strings.Fields(name)

	if len(words) >= 4 {
		mid := len(words) / 2
		first := strings.Join(words[:mid], " ")
		second := strings.Join(words[mid:], " ")
		if first == second {
			return first
		}
	}
	if len(words) >= 2 && strings.EqualFold(words[0], words[1]) {
		return strings.Join(words[1:], " ")
	}
	return name
}
