package inxi

import (
	"strings"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// VirtualIfaceKeywords classify interface names belonging to virtual
// devices: bridges, container veths, VM adapters.
var VirtualIfaceKeywords = []string{"veth", "docker", "virbr", "br-", "vbox", "vmnet"}

// parseNetwork walks the Network section with a current-device accumulator.
// A Device item opens a hardware context; the IF item that follows merges
// into it and the combined record is emitted. An IF item with no open
// context stands alone: virtual when its name matches VirtualIfaceKeywords,
// physical otherwise. Gateway and DNS stay empty here, the enrich package
// fills them from the live system.
func parseNetwork(items []model.RawItem) model.NetworkInfo {
	out := model.NewNetworkInfo()

	var current *model.NetworkDevice

	for _, raw := range items {
		cleaned := cleanItem(raw)

		if _, ok := cleaned["Device"]; ok {
			if current != nil {
				out.Devices = append(out.Devices, *current)
			}

			deviceType := strings.ToUpper(asString(cleaned["type"]))
			dev := model.NetworkDevice{
				Name:    asString(cleaned["Device"]),
				Vendor:  asString(cleaned["vendor"]),
				Driver:  asString(cleaned["driver"]),
				BusID:   asString(cleaned["bus-ID"]),
				ChipID:  asString(cleaned["chip-ID"]),
				ClassID: asString(cleaned["class-ID"]),
				Port:    asString(cleaned["port"]),
				MAC:     asString(cleaned["mac"]),
				Type:    deviceType,
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
			current = &dev
			continue
		}

		_, hasIF := cleaned["IF"]
		_, hasIFID := cleaned["IF-ID"]
		if !hasIF && !hasIFID {
			continue
		}

		name := asString(firstOf(cleaned, "IF", "IF-ID"))

		if current != nil {
			// The interface readings win over whatever the hardware item
			// carried, including an empty MAC.
			current.IF = name
			current.State = asString(cleaned["state"])
			current.MAC = asString(cleaned["mac"])
			current.Speed = asString(cleaned["speed"])
			current.Duplex = asString(cleaned["duplex"])
			current.IP = asString(cleaned["ip"])
			current.IPv6 = asString(cleaned["ipv6"])
			out.Devices = append(out.Devices, *current)
			current = nil
			continue
		}

		standalone := model.NetworkDevice{
			Name:   name,
			IF:     name,
			State:  asString(cleaned["state"]),
			MAC:    asString(cleaned["mac"]),
			Speed:  asString(cleaned["speed"]),
			Duplex: asString(cleaned["duplex"]),
			IP:     asString(cleaned["ip"]),
			IPv6:   asString(cleaned["ipv6"]),
		}
		if containsAny(strings.ToLower(name), VirtualIfaceKeywords) {
			out.VirtualDevices = append(out.VirtualDevices, standalone)
		} else {
			out.Devices = append(out.Devices, standalone)
		}
	}

	if current != nil {
		out.Devices = append(out.Devices, *current)
	}

	return out
}
