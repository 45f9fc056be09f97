package inxi

import (
	"strconv"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// parseBattery reads battery entries. The record keeps the full list plus a
// flattened view of the first battery for older consumers.
func parseBattery(items []model.RawItem) model.BatteryInfo {
	out := model.NewBatteryInfo()

	for _, raw := range items {
		cleaned := cleanItem(raw)

		_, hasID := cleaned["ID"]
		_, hasCharge := cleaned["charge"]
		if !hasID && !hasCharge {
			continue
		}
		out.Present = true

		var charge float64
		if v, ok := cleaned["charge"]; ok {
			if m := chargeRe.FindString(asString(v)); m != "" {
				if f, err := strconv.ParseFloat(m, 64); err == nil {
					charge = f
				}
			}
		}

		// Numeric voltages get a unit suffix, free text passes through.
		volts := ""
		if v, ok := cleaned["volts"]; ok {
			volts = asString(v)
			if isNumber(v) {
				volts += " V"
			}
		}

		out.Batteries = append(out.Batteries, model.Battery{
			ID:        asString(cleaned["ID"]),
			Charge:    charge,
			Condition: asString(cleaned["condition"]),
			Volts:     volts,
			VoltsMin:  asString(cleaned["min"]),
			Model:     asString(cleaned["model"]),
			Type:      asString(cleaned["type"]),
			Serial:    asString(cleaned["serial"]),
			Charging:  asString(cleaned["charging"]),
			Status:    asString(cleaned["status"]),
			Cycles:    asString(cleaned["cycles"]),
		})
	}

	if len(out.Batteries) > 0 {
		first := out.Batteries[0]
		out.Charge = first.Charge
		out.Status = first.Status
		out.Condition = first.Condition
		out.Model = first.Model
		out.Volts = first.Volts
		out.Serial = first.Serial
		out.Type = first.Type
		out.Cycles = first.Cycles
	}

	return out
}
