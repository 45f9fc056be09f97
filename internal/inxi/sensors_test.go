package inxi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSensors(t *testing.T) {
	t.Run("test numeric readings", func(t *testing.T) {
		sensors := parseSensors(decodeItems(t, `[
			{"001#1#1#System Temperatures": "", "002#1#1#cpu": 46.5, "003#1#1#mobo": 38.0, "004#1#1#gpu": 52.0}
		]`))

		require.Len(t, sensors.Temps, 3)
		assert.Equal(t, "CPU", sensors.Temps[0].Name)
		assert.Equal(t, 46.5, sensors.Temps[0].Temp)
		assert.Equal(t, "Motherboard", sensors.Temps[1].Name)
		assert.Equal(t, 38.0, sensors.Temps[1].Temp)
		assert.Equal(t, "GPU", sensors.Temps[2].Name)
	})

	t.Run("test cpu reading mined from text", func(t *testing.T) {
		sensors := parseSensors(decodeItems(t, `[{"001#1#1#cpu": "46.5 C"}]`))

		require.Len(t, sensors.Temps, 1)
		assert.Equal(t, 46.5, sensors.Temps[0].Temp)
	})

	t.Run("test text without number skipped", func(t *testing.T) {
		sensors := parseSensors(decodeItems(t, `[{"001#1#1#cpu": "N/A"}]`))
		assert.Empty(t, sensors.Temps)
	})

	t.Run("test mobo and gpu accept numbers only", func(t *testing.T) {
		sensors := parseSensors(decodeItems(t, `[
			{"001#1#1#mobo": "38.0 C", "002#1#1#gpu": "N/A"}
		]`))

		assert.Empty(t, sensors.Temps)
	})

	t.Run("test command output left for enrichment", func(t *testing.T) {
		sensors := parseSensors(nil)
		assert.Empty(t, sensors.SensorsCmd)
		assert.NotNil(t, sensors.Fans)
	})
}
