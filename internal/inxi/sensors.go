package inxi

import "github.com/go-tangra/go-tangra-hwinfo/internal/model"

// parseSensors reads temperature readings. The probe reports the CPU value
// loosely (number or free text with a unit), motherboard and GPU strictly
// numeric. Fan data stays empty here and the raw sensors command output is
// attached afterwards by the enrich package.
func parseSensors(items []model.RawItem) model.SensorsInfo {
	out := model.NewSensorsInfo()

	for _, raw := range items {
		cleaned := cleanItem(raw)

		if v, ok := cleaned["cpu"]; ok {
			if isNumber(v) {
				out.Temps = append(out.Temps, model.TempReading{Name: "CPU", Temp: asFloat(v, 0)})
			} else if s, isStr := v.(string); isStr {
				if f, found := firstNumber(s); found {
					out.Temps = append(out.Temps, model.TempReading{Name: "CPU", Temp: f})
				}
			}
		}
		if v, ok := cleaned["mobo"]; ok && isNumber(v) {
			out.Temps = append(out.Temps, model.TempReading{Name: "Motherboard", Temp: asFloat(v, 0)})
		}
		if v, ok := cleaned["gpu"]; ok && isNumber(v) {
			out.Temps = append(out.Temps, model.TempReading{Name: "GPU", Temp: asFloat(v, 0)})
		}
	}

	return out
}
