package enrich

import (
	"testing"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackTemps(t *testing.T) {
	t.Run("test cpu and gpu picked from host sensors", func(t *testing.T) {
		temps := fallbackTemps([]host.TemperatureStat{
			{SensorKey: "nvme_composite", Temperature: 38.9},
			{SensorKey: "coretemp_core_0", Temperature: 48.0},
			{SensorKey: "coretemp_packageid0", Temperature: 52.0},
			{SensorKey: "amdgpu_edge", Temperature: 61.0},
		})

		require.Len(t, temps, 2)
		assert.Equal(t, "CPU", temps[0].Name)
		assert.Equal(t, 52.0, temps[0].Temp)
		assert.Equal(t, "GPU", temps[1].Name)
		assert.Equal(t, 61.0, temps[1].Temp)
	})

	t.Run("test zero readings skipped", func(t *testing.T) {
		temps := fallbackTemps([]host.TemperatureStat{
			{SensorKey: "coretemp_packageid0", Temperature: 0},
			{SensorKey: "k10temp_tctl", Temperature: 44.5},
		})

		require.Len(t, temps, 1)
		assert.Equal(t, 44.5, temps[0].Temp)
	})

	t.Run("test no matching sensors", func(t *testing.T) {
		temps := fallbackTemps([]host.TemperatureStat{
			{SensorKey: "acpitz", Temperature: 27.8},
		})
		assert.Empty(t, temps)
	})
}
