package inxi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBattery(t *testing.T) {
	t.Run("test absent section means not present", func(t *testing.T) {
		bat := parseBattery(nil)
		assert.False(t, bat.Present)
		assert.Empty(t, bat.Batteries)
	})

	t.Run("test charge percent mined from text", func(t *testing.T) {
		bat := parseBattery(decodeItems(t, `[
			{"001#1#1#ID": "BAT0", "002#1#1#charge": "45.2 Wh (89.0%)", "003#1#1#condition": "50.8/56.0 Wh (90.7%)",
			 "004#1#1#volts": 12.8, "005#1#1#min": 11.4, "006#1#1#model": "DELL VN3N047",
			 "007#1#1#type": "Li-poly", "008#1#1#serial": "1234", "009#1#1#status": "charging",
			 "010#1#1#cycles": 117}
		]`))

		assert.True(t, bat.Present)
		require.Len(t, bat.Batteries, 1)

		b := bat.Batteries[0]
		assert.Equal(t, "BAT0", b.ID)
		assert.Equal(t, 45.2, b.Charge)
		assert.Equal(t, "50.8/56.0 Wh (90.7%)", b.Condition)
		assert.Equal(t, "12.8 V", b.Volts)
		assert.Equal(t, "11.4", b.VoltsMin)
		assert.Equal(t, "DELL VN3N047", b.Model)
		assert.Equal(t, "Li-poly", b.Type)
		assert.Equal(t, "charging", b.Status)
		assert.Equal(t, "117", b.Cycles)
	})

	t.Run("test first battery flattened", func(t *testing.T) {
		bat := parseBattery(decodeItems(t, `[
			{"001#1#1#ID": "BAT0", "002#1#1#charge": "45.2 Wh (89.0%)", "003#1#1#status": "discharging"},
			{"004#2#1#ID": "hidpp_battery_0", "005#2#1#charge": "55%", "006#2#1#status": "N/A"}
		]`))

		require.Len(t, bat.Batteries, 2)
		assert.Equal(t, 45.2, bat.Charge)
		assert.Equal(t, "discharging", bat.Status)
		assert.Equal(t, 55.0, bat.Batteries[1].Charge)
	})

	t.Run("test text volts pass through without unit", func(t *testing.T) {
		bat := parseBattery(decodeItems(t, `[
			{"001#1#1#charge": "80%", "002#1#1#volts": "N/A"}
		]`))

		require.Len(t, bat.Batteries, 1)
		assert.Equal(t, "N/A", bat.Batteries[0].Volts)
	})

	t.Run("test items without id or charge skipped", func(t *testing.T) {
		bat := parseBattery(decodeItems(t, `[{"001#1#1#Device": "wireless mouse"}]`))
		assert.False(t, bat.Present)
	})
}
