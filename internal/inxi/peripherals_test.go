package inxi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUSB(t *testing.T) {
	usb := parseUSB(decodeItems(t, `[
		{"001#1#1#Hub": "1-0:1", "002#1#1#info": "hi-speed hub with single TT", "003#1#1#ports": 16,
		 "004#1#1#rev": "2.0", "005#1#1#speed": "480 Mb/s", "006#1#1#chip-ID": "1d6b:0002",
		 "007#1#1#class-ID": "0900"},
		{"010#2#1#Device": "Logitech G502 HERO", "011#2#1#type": "mouse,keyboard",
		 "012#2#1#driver": "hid-generic,usbhid", "013#2#1#interfaces": 2, "014#2#1#rev": "2.0",
		 "015#2#1#speed": "12 Mb/s", "016#2#1#power": "300mA", "017#2#1#chip-ID": "046d:c08b",
		 "018#2#1#class-ID": "0300"},
		{"020#3#1#Device": "Integrated Camera", "021#3#1#type": "video", "022#3#1#driver": "uvcvideo"}
	]`))

	require.Len(t, usb.Hubs, 1)
	hub := usb.Hubs[0]
	assert.Equal(t, "1-0:1", hub.Name)
	assert.Equal(t, "16", hub.Ports)
	assert.Equal(t, "480 Mb/s", hub.Speed)
	assert.Equal(t, "1d6b:0002", hub.ChipID)

	require.Len(t, usb.Devices, 2)
	dev := usb.Devices[0]
	assert.Equal(t, "Logitech G502 HERO", dev.Name)
	assert.Equal(t, "mouse,keyboard", dev.Type)
	assert.Equal(t, "2", dev.Interfaces)
	assert.Equal(t, "300mA", dev.Power)
	assert.Equal(t, "046d:c08b", dev.ChipID)
}

func TestParseBluetooth(t *testing.T) {
	bt := parseBluetooth(decodeItems(t, `[
		{"001#1#1#Device": "Intel AX200 Bluetooth", "002#1#1#vendor": "Intel", "003#1#1#driver": "btusb",
		 "004#1#1#bus-ID": "1-14:5", "005#1#1#chip-ID": "8087:0029", "006#1#1#class-ID": "e001"},
		{"010#2#1#Report": "rfkill", "011#2#1#ID": "hci0", "012#2#1#state": "up"}
	]`))

	require.Len(t, bt.Devices, 1)
	dev := bt.Devices[0]
	assert.Equal(t, "Intel AX200 Bluetooth", dev.Name)
	assert.Equal(t, "btusb", dev.Driver)
	assert.Equal(t, "1-14:5", dev.BusID)
	assert.Equal(t, "8087:0029", dev.ChipID)
}
