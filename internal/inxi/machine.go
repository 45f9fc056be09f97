package inxi

import "github.com/go-tangra/go-tangra-hwinfo/internal/model"

// machineContext tracks which hardware block the current Machine item is
// describing. The probe reuses the same short keys (v, model, vendor) for
// the product, the motherboard, and the firmware; only the block header key
// seen most recently disambiguates them.
type machineContext int

const (
	ctxNone machineContext = iota
	ctxMobo
	ctxFirmware
)

// parseMachine reads chassis, motherboard, and firmware identity. Keys are
// visited in document order; the context resets per item.
func parseMachine(items []model.RawItem) model.MachineInfo {
	var out model.MachineInfo

	for _, item := range items {
		ctx := ctxNone
		moboVersionSet := false

		for _, rawKey := range sortedKeys(item) {
			value := item[rawKey]
			if emptyValue(value) {
				continue
			}

			switch CleanKey(rawKey) {
			case "Type":
				out.Type = asString(value)
			case "System":
				out.System = asString(value)
			case "product":
				out.Product = asString(value)
			case "Mobo":
				out.Mobo = asString(value)
				ctx = ctxMobo
			case "model":
				if ctx == ctxMobo {
					out.MoboModel = asString(value)
				}
			case "v":
				switch ctx {
				case ctxMobo:
					if !moboVersionSet {
						out.MoboVersion = asString(value)
						moboVersionSet = true
					}
				case ctxFirmware:
					out.FirmwareVersion = asString(value)
				}
			case "Firmware":
				out.FirmwareType = asString(value)
				ctx = ctxFirmware
			case "vendor":
				if ctx == ctxFirmware {
					out.FirmwareVendor = asString(value)
				}
			case "date":
				out.FirmwareDate = asString(value)
			}
		}
	}

	return out
}
