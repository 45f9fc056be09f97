package inxi

import "github.com/go-tangra/go-tangra-hwinfo/internal/model"

// parseUSB splits the USB section into hubs and devices.
func parseUSB(items []model.RawItem) *model.USBInfo {
	out := model.NewUSBInfo()

	for _, raw := range items {
		cleaned := cleanItem(raw)

		if _, ok := cleaned["Hub"]; ok {
			out.Hubs = append(out.Hubs, model.USBHub{
				Name:    asString(cleaned["Hub"]),
				Info:    asString(cleaned["info"]),
				Ports:   asString(cleaned["ports"]),
				Rev:     asString(cleaned["rev"]),
				Speed:   asString(cleaned["speed"]),
				Lanes:   asString(cleaned["lanes"]),
				Mode:    asString(cleaned["mode"]),
				ChipID:  asString(cleaned["chip-ID"]),
				ClassID: asString(cleaned["class-ID"]),
			})
			continue
		}

		if _, ok := cleaned["Device"]; ok {
			out.Devices = append(out.Devices, model.USBDevice{
				Name:       asString(cleaned["Device"]),
				Info:       asString(cleaned["info"]),
				Type:       asString(cleaned["type"]),
				Driver:     asString(cleaned["driver"]),
				Interfaces: asString(cleaned["interfaces"]),
				Rev:        asString(cleaned["rev"]),
				Speed:      asString(cleaned["speed"]),
				Lanes:      asString(cleaned["lanes"]),
				Mode:       asString(cleaned["mode"]),
				Power:      asString(cleaned["power"]),
				ChipID:     asString(cleaned["chip-ID"]),
				ClassID:    asString(cleaned["class-ID"]),
				Serial:     asString(cleaned["serial"]),
			})
		}
	}

	return out
}

// parseBluetooth collects Bluetooth adapters.
func parseBluetooth(items []model.RawItem) model.BluetoothInfo {
	out := model.NewBluetoothInfo()

	for _, raw := range items {
		cleaned := cleanItem(raw)
		if _, ok := cleaned["Device"]; !ok {
			continue
		}
		out.Devices = append(out.Devices, model.BluetoothDevice{
			Name:      asString(cleaned["Device"]),
			Vendor:    asString(cleaned["vendor"]),
			Driver:    asString(cleaned["driver"]),
			BusID:     asString(cleaned["bus-ID"]),
			ChipID:    asString(cleaned["chip-ID"]),
			ClassID:   asString(cleaned["class-ID"]),
			State:     asString(cleaned["state"]),
			BTVersion: asString(cleaned["bt-v"]),
		})
	}

	return out
}
