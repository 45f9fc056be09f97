package collector

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

const linuxHardwarePCIURL = "https://linux-hardware.org/?id=pci:%s-%s"

var (
	pciCategoryRe = regexp.MustCompile(`^([^[]+)`)
	pciClassRe    = regexp.MustCompile(`\[([0-9a-fA-F]{4})\]`)
	pciNameRe     = regexp.MustCompile(`:\s*(.+?)\s*\[[0-9a-fA-F]{4}:[0-9a-fA-F]{4}\]`)
	pciIDRe       = regexp.MustCompile(`\[([0-9a-fA-F]{4}):([0-9a-fA-F]{4})\]`)
	pciRevRe      = regexp.MustCompile(`\(rev\s+([0-9a-fA-F]+)\)`)
)

// Devices matching these are plumbing rather than hardware a user cares
// about: bridges, hubs, bus and storage controllers, platform timers.
var pciInfrastructureKeywords = []string{
	"bridge", "bus", "usb controller", "hub", "host bridge",
	"isa bridge", "pci bridge", "pcie", "smbus", "communication controller",
	"signal processing", "serial bus", "system peripheral", "pic", "dma",
	"rtc", "timer", "watchdog", "sd host", "sd/mmc",
	"sata controller", "ahci", "sata ahci",
}

// collectPCI enumerates PCI devices with lspci and attaches the verbose
// dump. Command failures land in the scan's error field.
func collectPCI(ctx context.Context) *model.PCIScan {
	scan := &model.PCIScan{Devices: []model.PCIScanDevice{}}

	if !commandExists("lspci") {
		scan.Error = "lspci command not found"
		return scan
	}

	out, err := runCommand(ctx, defaultTimeout, "lspci", "-nn")
	if err != nil {
		scan.Error = err.Error()
		return scan
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if dev, ok := parsePCILine(line); ok {
			scan.Devices = append(scan.Devices, dev)
		}
	}
	scan.Count = len(scan.Devices)

	if detailed, err := runCommand(ctx, defaultTimeout, "lspci", "-nvv"); err == nil {
		scan.Detailed = detailed
	}
	return scan
}

// parsePCILine splits one `lspci -nn` line such as
//
//	00:02.0 VGA compatible controller [0300]: Intel Corporation Raptor Lake-P [Iris Xe Graphics] [8086:a7a0] (rev 04)
//
// into its slot, category, class, name, and id parts.
func parsePCILine(line string) (model.PCIScanDevice, bool) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) < 2 {
		return model.PCIScanDevice{}, false
	}
	slot, rest := parts[0], parts[1]

	category := "Unknown"
	if m := pciCategoryRe.FindStringSubmatch(rest); m != nil {
		category = strings.TrimSpace(m[1])
		rest = rest[len(category):]
	}

	var classID string
	if m := pciClassRe.FindStringSubmatch(rest); m != nil {
		classID = m[1]
	}

	name := category
	if m := pciNameRe.FindStringSubmatch(rest); m != nil {
		name = strings.TrimSpace(m[1])
	}

	var vendorID, deviceID string
	if m := pciIDRe.FindStringSubmatch(rest); m != nil {
		vendorID, deviceID = m[1], m[2]
	}

	var revision string
	if m := pciRevRe.FindStringSubmatch(rest); m != nil {
		revision = m[1]
	}

	var hwURL, fullID string
	if vendorID != "" && deviceID != "" {
		hwURL = fmt.Sprintf(linuxHardwarePCIURL, strings.ToLower(vendorID), strings.ToLower(deviceID))
		fullID = vendorID + ":" + deviceID
	}

	return model.PCIScanDevice{
		Slot:             slot,
		Category:         category,
		Name:             name,
		ClassID:          classID,
		VendorID:         vendorID,
		DeviceID:         deviceID,
		FullID:           fullID,
		Revision:         revision,
		LinuxHardwareURL: hwURL,
		Infrastructure:   isInfrastructure(name, category),
		Raw:              line,
	}, true
}

func isInfrastructure(name, category string) bool {
	name = strings.ToLower(name)
	category = strings.ToLower(category)
	for _, kw := range pciInfrastructureKeywords {
		if strings.Contains(name, kw) || strings.Contains(category, kw) {
			return true
		}
	}
	return false
}
