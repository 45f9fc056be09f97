package enrich

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// applySensors attaches the raw `sensors` output and, when the parse found
// no temperature readings, falls back to the host thermal sensors.
func applySensors(ctx context.Context, sensors *model.SensorsInfo) {
	if sensors.SensorsCmd == "" {
		out, err := run(ctx, "sensors")
		if err != nil {
			log.Debug().Err(err).Msg("sensors command failed")
		} else {
			sensors.SensorsCmd = out
		}
	}

	if len(sensors.Temps) > 0 {
		return
	}
	readings, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("host temperature lookup failed")
		return
	}
	sensors.Temps = append(sensors.Temps, fallbackTemps(readings)...)
}

// fallbackTemps maps host sensor readings onto the names the primary probe
// would have used. Keys are tried in order of reliability and the first
// reading that matches wins.
func fallbackTemps(readings []host.TemperatureStat) []model.TempReading {
	var out []model.TempReading
	if t, ok := matchTemp(readings, "package", "tctl", "cpu", "core"); ok {
		out = append(out, model.TempReading{Name: "CPU", Temp: t})
	}
	if t, ok := matchTemp(readings, "edge", "junction", "gpu"); ok {
		out = append(out, model.TempReading{Name: "GPU", Temp: t})
	}
	return out
}

func matchTemp(readings []host.TemperatureStat, keys ...string) (float64, bool) {
	for _, key := range keys {
		for _, r := range readings {
			if r.Temperature > 0 && strings.Contains(strings.ToLower(r.SensorKey), key) {
				return r.Temperature, true
			}
		}
	}
	return 0, false
}
