package inxi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiskSummaryAndDrives(t *testing.T) {
	disk := parseDisk(decodeItems(t, `[
		{"001#1#0#Local Storage": "", "002#1#1#total": "1.82 TiB", "003#1#2#used": "850.41 GiB (45.6%)"},
		{"010#2#1#ID": "/dev/nvme0n1", "011#2#1#vendor": "Samsung", "012#2#1#model": "SSD 980 PRO 1TB",
		 "013#2#1#size": "931.51 GiB", "014#2#1#tech": "SSD", "015#2#1#serial": "S5GXNX0T123456",
		 "016#2#1#fw-rev": "5B2QGXA7", "017#2#1#temp": "42.9 C", "018#2#1#speed": "63.2 Gb/s",
		 "019#2#1#lanes": 4, "020#2#1#scheme": "GPT", "021#2#1#maj-min": "259:0"},
		{"030#3#1#ID": "/dev/sda", "031#3#1#vendor": "Western Digital", "032#3#1#model": "WD10EZEX",
		 "033#3#1#size": "931.51 GiB", "034#3#1#tech": "N/A"}
	]`), nil)

	assert.Equal(t, "1.82 TiB", disk.TotalSize)
	assert.Equal(t, "850.41 GiB (45.6%)", disk.Used)
	assert.Equal(t, 45.6, disk.UsedPercent)

	require.Len(t, disk.Drives, 2)

	nvme := disk.Drives[0]
	assert.Equal(t, "/dev/nvme0n1", nvme.ID)
	assert.Equal(t, "NVMe", nvme.Type)
	assert.Equal(t, "Samsung", nvme.Vendor)
	assert.Equal(t, "5B2QGXA7", nvme.Firmware)
	assert.Equal(t, "GPT", nvme.Scheme)
	assert.Equal(t, "259:0", nvme.MajMin)

	hdd := disk.Drives[1]
	assert.Equal(t, "/dev/sda", hdd.ID)
	assert.Equal(t, "HDD", hdd.Type)
}

func TestParseDiskDriveTypes(t *testing.T) {
	t.Run("test ssd from tech", func(t *testing.T) {
		disk := parseDisk(decodeItems(t, `[
			{"001#1#1#ID": "/dev/sdb", "002#1#1#model": "Samsung SSD 870", "003#1#1#size": "465.76 GiB", "004#1#1#tech": "SSD"}
		]`), nil)
		require.Len(t, disk.Drives, 1)
		assert.Equal(t, "SSD", disk.Drives[0].Type)
	})

	t.Run("test nvme id overrides tech", func(t *testing.T) {
		disk := parseDisk(decodeItems(t, `[
			{"001#1#1#ID": "/dev/nvme1n1", "002#1#1#model": "WD Black SN850", "003#1#1#size": "931.51 GiB", "004#1#1#tech": "SSD"}
		]`), nil)
		require.Len(t, disk.Drives, 1)
		assert.Equal(t, "NVMe", disk.Drives[0].Type)
	})

	t.Run("test drive needs model and size", func(t *testing.T) {
		disk := parseDisk(decodeItems(t, `[{"001#1#1#model": "orphan"}]`), nil)
		assert.Empty(t, disk.Drives)
	})
}

func TestParseDiskPartitionsAndSwap(t *testing.T) {
	doc := decodeDoc(t, `[
		{"100#1#0#Drives": [
			{"101#1#1#Local Storage": "", "102#1#1#total": "931.51 GiB", "103#1#1#used": "243.75 GiB (26.2%)"}
		]},
		{"200#1#0#Partition": [
			{"201#1#1#ID": "/", "202#1#1#raw-size": "465.26 GiB", "203#1#1#size": "456.89 GiB",
			 "204#1#1#used": "120.13 GiB (26.3%)", "205#1#1#fs": "ext4", "206#1#1#dev": "/dev/nvme0n1p2"},
			{"210#2#1#ID": "/boot/efi", "211#2#1#size": "511 MiB", "212#2#1#used": "152 KiB (0.1%)",
			 "213#2#1#fs": "vfat", "214#2#1#dev": "/dev/nvme0n1p1"},
			{"220#3#1#note": "no mounted partitions"}
		]},
		{"300#1#0#Swap": [
			{"301#1#1#Kernel": "", "302#1#1#swappiness": "60 (default)", "303#1#1#cache-pressure": "100 (default)"},
			{"310#2#1#ID": "swap-1", "311#2#1#type": "zram", "312#2#1#size": "8 GiB",
			 "313#2#1#used": "0 KiB (0.0%)", "314#2#1#dev": "/dev/zram0"}
		]}
	]`)

	hw := NewParser().ParseDocument(doc)

	assert.Equal(t, "931.51 GiB", hw.Disk.TotalSize)
	assert.Equal(t, 26.2, hw.Disk.UsedPercent)

	require.Len(t, hw.Disk.Partitions, 2)
	root := hw.Disk.Partitions[0]
	assert.Equal(t, "/", root.ID)
	assert.Equal(t, "465.26 GiB", root.RawSize)
	assert.Equal(t, "ext4", root.FS)
	assert.Equal(t, "/dev/nvme0n1p2", root.Dev)
	assert.Equal(t, 26.3, root.UsedPercent)

	assert.Equal(t, "60 (default)", hw.Disk.SwapKernel.Swappiness)
	assert.Equal(t, "100 (default)", hw.Disk.SwapKernel.CachePressure)

	require.Len(t, hw.Disk.Swap, 1)
	assert.Equal(t, "zram", hw.Disk.Swap[0].Type)
	assert.Equal(t, "/dev/zram0", hw.Disk.Swap[0].Dev)
}

func TestParseDiskSwapFileDevice(t *testing.T) {
	doc := decodeDoc(t, `[
		{"100#1#0#Drives": []},
		{"300#1#0#Swap": [
			{"301#1#1#ID": "swap-1", "302#1#1#type": "file", "303#1#1#size": "2 GiB", "304#1#1#file": "/swapfile"}
		]}
	]`)

	hw := NewParser().ParseDocument(doc)

	require.Len(t, hw.Disk.Swap, 1)
	assert.Equal(t, "/swapfile", hw.Disk.Swap[0].Dev)
}
