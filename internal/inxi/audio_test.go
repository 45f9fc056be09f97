package inxi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAudio(t *testing.T) {
	t.Run("test pcie device", func(t *testing.T) {
		audio := parseAudio(decodeItems(t, `[
			{"001#1#1#Device": "AMD Navi 21/23 HDMI/DP Audio", "002#1#1#driver": "snd_hda_intel",
			 "003#1#1#v": "kernel", "004#1#1#bus-ID": "03:00.1", "005#1#1#chip-ID": "1002:ab28",
			 "006#1#1#class-ID": "0403", "007#1#1#gen": 4, "008#1#1#speed": "16 GT/s", "009#1#1#lanes": 16},
			{"010#2#1#API": "ALSA", "011#2#1#v": "k6.6.10-arch1-1"}
		]`))

		require.Len(t, audio.Devices, 1)
		dev := audio.Devices[0]
		assert.Equal(t, "AMD Navi 21/23 HDMI/DP Audio", dev.Name)
		assert.Equal(t, "PCI", dev.Type)
		assert.Equal(t, "0403", dev.ClassID)
		assert.Equal(t, "4", dev.PCIeGen)
		assert.Equal(t, "16 GT/s", dev.PCIeSpeed)
		assert.Equal(t, "16", dev.PCIeLanes)
		assert.Empty(t, dev.USBSpeed)
	})

	t.Run("test usb device", func(t *testing.T) {
		audio := parseAudio(decodeItems(t, `[
			{"001#1#1#Device": "Blue Microphones Yeti", "002#1#1#type": "USB",
			 "003#1#1#driver": "snd-usb-audio", "004#1#1#bus-ID": "5-1:2",
			 "005#1#1#chip-ID": "b58e:9e84", "006#1#1#speed": "12 Mb/s", "007#1#1#rev": "1.1"}
		]`))

		require.Len(t, audio.Devices, 1)
		dev := audio.Devices[0]
		assert.Equal(t, "USB", dev.Type)
		assert.Equal(t, "12 Mb/s", dev.USBSpeed)
		assert.Equal(t, "1.1", dev.USBRev)
		assert.Empty(t, dev.PCIeGen)
	})
}
