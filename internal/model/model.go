package model

// RawDocument is the decoded inxi JSON output: a list of single-key objects
// mapping a prefixed section name (like "004#1#0#CPU") to the section's value,
// usually a list of items.
type RawDocument []map[string]any

// RawItem is one key/value entry inside a section's item list. Keys still
// carry the inxi ordering prefix until cleaned.
type RawItem map[string]any

// HardwareInfo is the normalized hardware model produced by a full parse.
// The primary categories are always present, even when the source document
// lacked the matching section; processes, repos, and usb_inxi appear only
// when their sections were seen.
type HardwareInfo struct {
	CPU       CPUInfo        `json:"cpu"`
	GPU       GPUInfo        `json:"gpu"`
	Memory    MemoryInfo     `json:"memory"`
	Audio     AudioInfo      `json:"audio"`
	Network   NetworkInfo    `json:"network"`
	Disk      DiskInfo       `json:"disk"`
	Machine   MachineInfo    `json:"machine"`
	System    SystemInfo     `json:"system"`
	Battery   BatteryInfo    `json:"battery"`
	Sensors   SensorsInfo    `json:"sensors"`
	Bluetooth BluetoothInfo  `json:"bluetooth"`
	Processes *ProcessesInfo `json:"processes,omitempty"`
	Repos     *ReposInfo     `json:"repos,omitempty"`
	USB       *USBInfo       `json:"usb_inxi,omitempty"`
	PCI       PCIInfo        `json:"pci_inxi"`
}

// NewHardwareInfo returns a model with every primary category pre-seeded to
// its empty shape, so consumers never see nil slices or maps.
func NewHardwareInfo() *HardwareInfo {
	return &HardwareInfo{
		CPU:       NewCPUInfo(),
		GPU:       NewGPUInfo(),
		Memory:    NewMemoryInfo(),
		Audio:     NewAudioInfo(),
		Network:   NewNetworkInfo(),
		Disk:      NewDiskInfo(),
		Battery:   NewBatteryInfo(),
		Sensors:   NewSensorsInfo(),
		Bluetooth: NewBluetoothInfo(),
		PCI:       NewPCIInfo(),
	}
}
