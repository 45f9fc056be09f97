package inxi

import (
	"sort"
	"strings"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// ExtractPCIDevices builds the synthesized PCI view from devices already
// parsed into the graphics, audio and network categories. The first device
// seen at a bus address wins, and GPUs outrank audio and network functions
// at the same address.
func ExtractPCIDevices(hw *model.HardwareInfo) model.PCIInfo {
	out := model.NewPCIInfo()
	seen := map[string]bool{}

	for _, d := range hw.GPU.Devices {
		if d.BusID == "" || seen[d.BusID] {
			continue
		}
		seen[d.BusID] = true
		out.Devices = append(out.Devices, model.PCIDevice{
			Name:     d.Name,
			Vendor:   d.Vendor,
			Driver:   d.Driver,
			BusID:    d.BusID,
			ChipID:   d.ChipID,
			ClassID:  "0300",
			Category: "Graphics",
		})
	}

	for _, d := range hw.Audio.Devices {
		if !isPCIBusID(d.BusID) || seen[d.BusID] {
			continue
		}
		seen[d.BusID] = true
		classID := d.ClassID
		if classID == "" {
			classID = "0403"
		}
		out.Devices = append(out.Devices, model.PCIDevice{
			Name:      d.Name,
			Vendor:    d.Vendor,
			Driver:    d.Driver,
			BusID:     d.BusID,
			ChipID:    d.ChipID,
			ClassID:   classID,
			Category:  "Audio",
			PCIeGen:   d.PCIeGen,
			PCIeSpeed: d.PCIeSpeed,
			PCIeLanes: d.PCIeLanes,
		})
	}

	for _, d := range hw.Network.Devices {
		if !isPCIBusID(d.BusID) || seen[d.BusID] {
			continue
		}
		seen[d.BusID] = true
		classID := d.ClassID
		if classID == "" {
			classID = "0200"
		}
		out.Devices = append(out.Devices, model.PCIDevice{
			Name:      d.Name,
			Vendor:    d.Vendor,
			Driver:    d.Driver,
			BusID:     d.BusID,
			ChipID:    d.ChipID,
			ClassID:   classID,
			Category:  "Network",
			PCIeGen:   d.PCIeGen,
			PCIeSpeed: d.PCIeSpeed,
			PCIeLanes: d.PCIeLanes,
		})
	}

	sort.Slice(out.Devices, func(i, j int) bool {
		return out.Devices[i].BusID < out.Devices[j].BusID
	})
	out.Count = len(out.Devices)

	return out
}

// isPCIBusID reports whether a bus id looks like a PCI address rather than
// a USB path. USB bus ids use dashes (1-3:2), PCI addresses use colons.
func isPCIBusID(busID string) bool {
	return busID != "" && strings.Contains(busID, ":") && !strings.Contains(busID, "-")
}
