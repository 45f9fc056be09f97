package inxi

import (
	"strings"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// parseAudio collects Audio section Device entries. USB devices report
// bus speed and revision, PCIe devices report generation, speed, and lane
// count; the two attribute sets never mix.
func parseAudio(items []model.RawItem) model.AudioInfo {
	out := model.NewAudioInfo()

	for _, raw := range items {
		cleaned := cleanItem(raw)
		if _, ok := cleaned["Device"]; !ok {
			continue
		}

		deviceType := strings.ToUpper(asString(cleaned["type"]))
		dev := model.AudioDevice{
			Name:    asString(cleaned["Device"]),
			Vendor:  asString(cleaned["vendor"]),
			Driver:  asString(cleaned["driver"]),
			BusID:   asString(cleaned["bus-ID"]),
			ChipID:  asString(cleaned["chip-ID"]),
			ClassID: asString(cleaned["class-ID"]),
			Type:    deviceType,
			Serial:  asString(cleaned["serial"]),
		}
		if dev.Type == "" {
			dev.Type = "PCI"
		}
		if deviceType == "USB" {
			dev.USBSpeed = asString(cleaned["speed"])
			dev.USBRev = asString(cleaned["rev"])
		} else {
			dev.PCIeGen = asString(cleaned["gen"])
			dev.PCIeSpeed = asString(cleaned["speed"])
			dev.PCIeLanes = asString(cleaned["lanes"])
		}
		out.Devices = append(out.Devices, dev)
	}

	return out
}
