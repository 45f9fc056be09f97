package inxi

import (
	"math"
	"strings"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// parseMemory folds the Memory section into the RAM summary and the
// per-slot module list. The summary totals are first-wins because the probe
// may repeat them per controller; array details are last-wins.
func parseMemory(items []model.RawItem) model.MemoryInfo {
	out := model.NewMemoryInfo()

	for _, raw := range items {
		cleaned := cleanItem(raw)

		_, isDevice := cleaned["Device"]

		if v, ok := cleaned["total"]; ok && !isDevice {
			total := asString(v)
			if (strings.Contains(total, "GiB") || strings.Contains(total, "GB")) && out.Total == "" {
				out.Total = total
			}
		}
		if v, ok := cleaned["used"]; ok && out.Used == "" {
			out.Used = asString(v)
		}
		if v, ok := cleaned["available"]; ok && out.Available == "" {
			out.Available = asString(v)
		}

		if v, ok := cleaned["capacity"]; ok {
			out.Capacity = asString(v)
		}
		if v, ok := cleaned["slots"]; ok {
			out.Slots = asString(v)
		}
		if v, ok := cleaned["EC"]; ok {
			out.EC = asString(v)
		}
		if v, ok := cleaned["note"]; ok {
			out.Note = asString(v)
		}
		if v, ok := cleaned["max-module-size"]; ok {
			out.MaxModuleSize = asString(v)
		}
		if v, ok := cleaned["modules"]; ok {
			out.ModulesCount = asString(v)
		}

		if isDevice {
			if size, ok := cleaned["size"]; ok {
				sizeStr := asString(size)
				if !strings.Contains(sizeStr, "No Module") {
					out.Modules = append(out.Modules, model.MemoryModule{
						Size:         sizeStr,
						Speed:        asString(firstOf(cleaned, "spec", "speed")),
						ActualSpeed:  asString(firstOf(cleaned, "actual", "configured")),
						Type:         asString(cleaned["type"]),
						Slot:         asString(cleaned["Device"]),
						Manufacturer: asString(cleaned["manufacturer"]),
						Volts:        asString(cleaned["volts"]),
						PartNo:       asString(cleaned["part-no"]),
						Serial:       asString(cleaned["serial"]),
					})
				}
			}
		}
	}

	// Totals are free text like "31.25 GiB"; mine the leading numbers for
	// a percentage.
	if out.Total != "" && out.Used != "" {
		if totalVal, ok := firstNumber(out.Total); ok && totalVal > 0 {
			if usedVal, ok := firstNumber(out.Used); ok {
				out.UsedPercent = round1(usedVal / totalVal * 100)
			}
		}
	}

	return out
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
