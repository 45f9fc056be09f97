package model

// CPUInfo holds processor identity, topology, speeds, and vulnerabilities.
type CPUInfo struct {
	Model           string             `json:"model"`
	Cores           int                `json:"cores"`
	Threads         int                `json:"threads"`
	Type            string             `json:"type"`
	Bits            int                `json:"bits"`
	Arch            string             `json:"arch"`
	Gen             string             `json:"gen"`
	Built           string             `json:"built"`
	Process         string             `json:"process"`
	Family          string             `json:"family"`
	ModelID         string             `json:"model_id"`
	Stepping        string             `json:"stepping"`
	Microcode       string             `json:"microcode"`
	CacheL1         string             `json:"cache_l1"`
	CacheL2         string             `json:"cache_l2"`
	CacheL3         string             `json:"cache_l3"`
	SpeedCurrent    int                `json:"speed_current"`
	SpeedMin        int                `json:"speed_min"`
	SpeedMax        int                `json:"speed_max"`
	Bogomips        int                `json:"bogomips"`
	ScalingDriver   string             `json:"scaling_driver"`
	ScalingGovernor string             `json:"scaling_governor"`
	CoreSpeeds      map[int]int        `json:"core_speeds"`
	Flags           string             `json:"flags"`
	Vulnerabilities []CPUVulnerability `json:"vulnerabilities"`
	Raw             string             `json:"raw"`
}

// CPUVulnerability is one speculative-execution vulnerability entry.
type CPUVulnerability struct {
	Type       string `json:"type"`
	Status     string `json:"status"`
	Mitigation string `json:"mitigation"`
}

// NewCPUInfo returns an empty CPU record.
func NewCPUInfo() CPUInfo {
	return CPUInfo{
		CoreSpeeds:      map[int]int{},
		Vulnerabilities: []CPUVulnerability{},
	}
}

// GPUInfo holds graphics devices, webcams, display server and 3D API details.
type GPUInfo struct {
	Devices     []GPUDevice   `json:"devices"`
	Webcams     []GPUWebcam   `json:"webcams"`
	Displays    []MonitorInfo `json:"displays"`
	DisplayInfo DisplayInfo   `json:"display_info"`
	OpenGL      OpenGLInfo    `json:"opengl"`
	Vulkan      VulkanInfo    `json:"vulkan"`
	EGL         EGLInfo       `json:"egl"`
	Monitors    []MonitorInfo `json:"monitors"`
}

// GPUDevice is one graphics adapter.
type GPUDevice struct {
	Name          string `json:"name"`
	Vendor        string `json:"vendor"`
	Driver        string `json:"driver"`
	DriverVersion string `json:"driver_version"`
	BusID         string `json:"bus_id"`
	Arch          string `json:"arch"`
	ChipID        string `json:"chip_id"`
	PortsActive   string `json:"ports_active"`
	PortsEmpty    string `json:"ports_empty"`
}

// GPUWebcam is a camera device reported inside the graphics section.
type GPUWebcam struct {
	Name   string `json:"name"`
	Driver string `json:"driver"`
	Type   string `json:"type"`
	BusID  string `json:"bus_id"`
	ChipID string `json:"chip_id"`
	Serial string `json:"serial"`
	Speed  string `json:"speed"`
	Mode   string `json:"mode"`
}

// DisplayInfo describes the running display server.
type DisplayInfo struct {
	Display       string `json:"display"`
	Server        string `json:"server"`
	ServerVersion string `json:"server_version"`
	With          string `json:"with"`
	Compositor    string `json:"compositor"`
	DriverLoaded  string `json:"driver_loaded"`
	GPU           string `json:"gpu"`
}

// MonitorInfo describes one attached monitor.
type MonitorInfo struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	Resolution string `json:"resolution"`
	Size       string `json:"size"`
	Diagonal   string `json:"diagonal"`
	DPI        string `json:"dpi"`
	Gamma      string `json:"gamma"`
	Ratio      string `json:"ratio"`
}

// OpenGLInfo describes the OpenGL API block.
type OpenGLInfo struct {
	Version       string `json:"version"`
	CompatVersion string `json:"compat_version"`
	Vendor        string `json:"vendor"`
	GLXVersion    string `json:"glx_version"`
	DirectRender  string `json:"direct_render"`
	Renderer      string `json:"renderer"`
	Memory        string `json:"memory"`
}

// VulkanInfo describes the Vulkan API block.
type VulkanInfo struct {
	Version string         `json:"version"`
	Layers  string         `json:"layers"`
	Devices []VulkanDevice `json:"devices"`
}

// VulkanDevice is one Vulkan-capable device.
type VulkanDevice struct {
	Device string `json:"device"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Driver string `json:"driver"`
}

// EGLInfo describes the EGL API block.
type EGLInfo struct {
	Version   string `json:"version"`
	HW        string `json:"hw"`
	Platforms string `json:"platforms"`
}

// NewGPUInfo returns an empty GPU record.
func NewGPUInfo() GPUInfo {
	return GPUInfo{
		Devices:  []GPUDevice{},
		Webcams:  []GPUWebcam{},
		Displays: []MonitorInfo{},
		Vulkan:   VulkanInfo{Devices: []VulkanDevice{}},
		Monitors: []MonitorInfo{},
	}
}

// MemoryInfo holds the system RAM summary and per-module details.
type MemoryInfo struct {
	Total         string         `json:"total"`
	Used          string         `json:"used"`
	Available     string         `json:"available"`
	UsedPercent   float64        `json:"used_percent"`
	Capacity      string         `json:"capacity"`
	Slots         string         `json:"slots"`
	EC            string         `json:"ec"`
	Note          string         `json:"note"`
	MaxModuleSize string         `json:"max_module_size"`
	ModulesCount  string         `json:"modules_count"`
	Modules       []MemoryModule `json:"modules"`
}

// MemoryModule is one populated RAM slot.
type MemoryModule struct {
	Size         string `json:"size"`
	Speed        string `json:"speed"`
	ActualSpeed  string `json:"actual_speed"`
	Type         string `json:"type"`
	Slot         string `json:"slot"`
	Manufacturer string `json:"manufacturer"`
	Volts        string `json:"volts"`
	PartNo       string `json:"part_no"`
	Serial       string `json:"serial"`
}

// NewMemoryInfo returns an empty memory record.
func NewMemoryInfo() MemoryInfo {
	return MemoryInfo{Modules: []MemoryModule{}}
}

// AudioInfo holds sound devices.
type AudioInfo struct {
	Devices []AudioDevice `json:"devices"`
}

// AudioDevice is one sound adapter. USB and PCIe attachment details are
// mutually exclusive.
type AudioDevice struct {
	Name      string `json:"name"`
	Vendor    string `json:"vendor"`
	Driver    string `json:"driver"`
	BusID     string `json:"bus_id"`
	ChipID    string `json:"chip_id"`
	ClassID   string `json:"class_id"`
	Type      string `json:"type"`
	Serial    string `json:"serial"`
	USBSpeed  string `json:"usb_speed,omitempty"`
	USBRev    string `json:"usb_rev,omitempty"`
	PCIeGen   string `json:"pcie_gen,omitempty"`
	PCIeSpeed string `json:"pcie_speed,omitempty"`
	PCIeLanes string `json:"pcie_lanes,omitempty"`
}

// NewAudioInfo returns an empty audio record.
func NewAudioInfo() AudioInfo {
	return AudioInfo{Devices: []AudioDevice{}}
}

// NetworkInfo holds physical and virtual network devices plus routing data.
type NetworkInfo struct {
	Devices          []NetworkDevice `json:"devices"`
	VirtualDevices   []NetworkDevice `json:"virtual_devices"`
	Gateway          string          `json:"gateway"`
	DNSServers       []string        `json:"dns_servers"`
	GatewayInterface string          `json:"gateway_interface"`
}

// NetworkDevice is one network adapter or interface. A physical device entry
// carries the hardware fields; the interface fields are merged in from the
// following IF item when present.
type NetworkDevice struct {
	Name      string `json:"name"`
	Vendor    string `json:"vendor,omitempty"`
	Driver    string `json:"driver,omitempty"`
	BusID     string `json:"bus_id,omitempty"`
	ChipID    string `json:"chip_id,omitempty"`
	ClassID   string `json:"class_id,omitempty"`
	Port      string `json:"port,omitempty"`
	MAC       string `json:"mac"`
	Type      string `json:"type,omitempty"`
	USBSpeed  string `json:"usb_speed,omitempty"`
	USBRev    string `json:"usb_rev,omitempty"`
	PCIeGen   string `json:"pcie_gen,omitempty"`
	PCIeSpeed string `json:"pcie_speed,omitempty"`
	PCIeLanes string `json:"pcie_lanes,omitempty"`
	IF        string `json:"IF"`
	State     string `json:"state"`
	Speed     string `json:"speed"`
	Duplex    string `json:"duplex"`
	IP        string `json:"ip"`
	IPv6      string `json:"ipv6"`
}

// NewNetworkInfo returns an empty network record.
func NewNetworkInfo() NetworkInfo {
	return NetworkInfo{
		Devices:        []NetworkDevice{},
		VirtualDevices: []NetworkDevice{},
		DNSServers:     []string{},
	}
}

// DiskInfo holds drives, partitions, swap, and the local storage summary.
type DiskInfo struct {
	Drives      []DiskDrive `json:"drives"`
	Partitions  []Partition `json:"partitions"`
	Swap        []SwapEntry `json:"swap"`
	SwapKernel  SwapKernel  `json:"swap_kernel"`
	TotalSize   string      `json:"total_size"`
	Used        string      `json:"used"`
	UsedPercent float64     `json:"used_percent"`
}

// DiskDrive is one physical drive.
type DiskDrive struct {
	ID            string `json:"id"`
	Model         string `json:"model"`
	Size          string `json:"size"`
	Vendor        string `json:"vendor"`
	Type          string `json:"type"`
	Serial        string `json:"serial"`
	Temp          string `json:"temp"`
	Speed         string `json:"speed"`
	Lanes         string `json:"lanes"`
	Firmware      string `json:"firmware"`
	Scheme        string `json:"scheme"`
	BlockPhysical string `json:"block_physical"`
	BlockLogical  string `json:"block_logical"`
	MajMin        string `json:"maj_min"`
}

// Partition is one mounted partition.
type Partition struct {
	ID          string  `json:"id"`
	RawSize     string  `json:"raw_size"`
	Size        string  `json:"size"`
	Used        string  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
	FS          string  `json:"fs"`
	Dev         string  `json:"dev"`
	Label       string  `json:"label"`
	Mount       string  `json:"mount"`
}

// SwapEntry is one swap area.
type SwapEntry struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Size        string  `json:"size"`
	Used        string  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
	Priority    string  `json:"priority"`
	Comp        string  `json:"comp"`
	Dev         string  `json:"dev"`
}

// SwapKernel holds kernel swap tunables.
type SwapKernel struct {
	Swappiness    string `json:"swappiness"`
	CachePressure string `json:"cache_pressure"`
	ZSwap         string `json:"zswap"`
	Compressor    string `json:"compressor"`
}

// NewDiskInfo returns an empty disk record.
func NewDiskInfo() DiskInfo {
	return DiskInfo{
		Drives:     []DiskDrive{},
		Partitions: []Partition{},
		Swap:       []SwapEntry{},
	}
}

// MachineInfo holds chassis, motherboard, and firmware identity.
type MachineInfo struct {
	Type            string `json:"type"`
	System          string `json:"system"`
	Product         string `json:"product"`
	Mobo            string `json:"mobo"`
	MoboModel       string `json:"mobo_model"`
	MoboVersion     string `json:"mobo_version"`
	FirmwareType    string `json:"firmware_type"`
	FirmwareVendor  string `json:"firmware_vendor"`
	FirmwareVersion string `json:"firmware_version"`
	FirmwareDate    string `json:"firmware_date"`
}

// SystemInfo holds OS identity plus the Info-section and enrichment fields
// that are merged into the same record.
type SystemInfo struct {
	Host            string `json:"host"`
	Kernel          string `json:"kernel"`
	KernelArch      string `json:"kernel_arch"`
	KernelBits      string `json:"kernel_bits"`
	Compiler        string `json:"compiler"`
	CompilerVersion string `json:"compiler_version"`
	Desktop         string `json:"desktop"`
	DesktopVersion  string `json:"desktop_version"`
	WM              string `json:"wm"`
	DM              string `json:"dm"`
	TK              string `json:"tk"`
	Distro          string `json:"distro"`
	Init            string `json:"init"`

	MemoryTotal     string `json:"memory_total,omitempty"`
	MemoryAvailable string `json:"memory_available,omitempty"`
	MemoryUsed      string `json:"memory_used,omitempty"`
	Processes       string `json:"processes,omitempty"`
	Uptime          string `json:"uptime,omitempty"`
	PowerStates     string `json:"power_states,omitempty"`
	SuspendMode     string `json:"suspend_mode,omitempty"`
	HibernateMode   string `json:"hibernate_mode,omitempty"`
	HibernateImage  string `json:"hibernate_image,omitempty"`
	InitVersion     string `json:"init_version,omitempty"`
	InitServices    string `json:"init_services,omitempty"`
	Packages        string `json:"packages,omitempty"`
	Shell           string `json:"shell,omitempty"`
	ShellVersion    string `json:"shell_version,omitempty"`
	InxiVersion     string `json:"inxi_version,omitempty"`
	GCCVersion      string `json:"gcc_version,omitempty"`
	ClangVersion    string `json:"clang_version,omitempty"`
	ReposSummary    string `json:"repos,omitempty"`

	Hostname    string `json:"hostname,omitempty"`
	InstallDate string `json:"install_date,omitempty"`
}

// BatteryInfo holds all batteries plus a flattened view of the first one.
type BatteryInfo struct {
	Present   bool      `json:"present"`
	Batteries []Battery `json:"batteries"`

	Charge    float64 `json:"charge"`
	Status    string  `json:"status"`
	Condition string  `json:"condition"`
	Model     string  `json:"model"`
	Volts     string  `json:"volts"`
	Serial    string  `json:"serial"`
	Type      string  `json:"type"`
	Cycles    string  `json:"cycles"`
}

// Battery is one battery.
type Battery struct {
	ID        string  `json:"id"`
	Charge    float64 `json:"charge"`
	Condition string  `json:"condition"`
	Volts     string  `json:"volts"`
	VoltsMin  string  `json:"volts_min"`
	Model     string  `json:"model"`
	Type      string  `json:"type"`
	Serial    string  `json:"serial"`
	Charging  string  `json:"charging"`
	Status    string  `json:"status"`
	Cycles    string  `json:"cycles"`
}

// NewBatteryInfo returns an empty battery record.
func NewBatteryInfo() BatteryInfo {
	return BatteryInfo{Batteries: []Battery{}}
}

// SensorsInfo holds temperature readings and the raw sensors command output.
type SensorsInfo struct {
	Temps      []TempReading `json:"temps"`
	Fans       []FanReading  `json:"fans"`
	SensorsCmd string        `json:"sensors_cmd"`
}

// TempReading is one temperature probe value in degrees Celsius.
type TempReading struct {
	Name string  `json:"name"`
	Temp float64 `json:"temp"`
}

// FanReading is one fan speed value.
type FanReading struct {
	Name string  `json:"name"`
	RPM  float64 `json:"rpm"`
}

// NewSensorsInfo returns an empty sensors record.
func NewSensorsInfo() SensorsInfo {
	return SensorsInfo{
		Temps: []TempReading{},
		Fans:  []FanReading{},
	}
}

// BluetoothInfo holds bluetooth adapters.
type BluetoothInfo struct {
	Devices []BluetoothDevice `json:"devices"`
}

// BluetoothDevice is one bluetooth adapter.
type BluetoothDevice struct {
	Name      string `json:"name"`
	Vendor    string `json:"vendor"`
	Driver    string `json:"driver"`
	BusID     string `json:"bus_id"`
	ChipID    string `json:"chip_id"`
	ClassID   string `json:"class_id"`
	State     string `json:"state"`
	BTVersion string `json:"bt_version"`
}

// NewBluetoothInfo returns an empty bluetooth record.
func NewBluetoothInfo() BluetoothInfo {
	return BluetoothInfo{Devices: []BluetoothDevice{}}
}

// ProcessesInfo holds the top consumers by CPU and by memory.
type ProcessesInfo struct {
	CPUTop    []ProcessEntry `json:"cpu_top"`
	MemoryTop []ProcessEntry `json:"memory_top"`
}

// ProcessEntry is one process in a top-consumers list.
type ProcessEntry struct {
	Command string `json:"command"`
	PID     int    `json:"pid"`
	CPU     string `json:"cpu"`
	Mem     string `json:"mem"`
}

// NewProcessesInfo returns an empty processes record.
func NewProcessesInfo() *ProcessesInfo {
	return &ProcessesInfo{
		CPUTop:    []ProcessEntry{},
		MemoryTop: []ProcessEntry{},
	}
}

// ReposInfo holds package counts and configured repositories.
type ReposInfo struct {
	Packages map[string]string `json:"packages"`
	Repos    []RepoEntry       `json:"repos"`
}

// RepoEntry is one repository URL under its server/group name.
type RepoEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewReposInfo returns an empty repos record.
func NewReposInfo() *ReposInfo {
	return &ReposInfo{
		Packages: map[string]string{},
		Repos:    []RepoEntry{},
	}
}

// USBInfo holds USB hubs and devices.
type USBInfo struct {
	Devices []USBDevice `json:"devices"`
	Hubs    []USBHub    `json:"hubs"`
}

// USBHub is one USB hub.
type USBHub struct {
	Name    string `json:"name"`
	Info    string `json:"info"`
	Ports   string `json:"ports"`
	Rev     string `json:"rev"`
	Speed   string `json:"speed"`
	Lanes   string `json:"lanes"`
	Mode    string `json:"mode"`
	ChipID  string `json:"chip_id"`
	ClassID string `json:"class_id"`
}

// USBDevice is one USB device.
type USBDevice struct {
	Name       string `json:"name"`
	Info       string `json:"info"`
	Type       string `json:"type"`
	Driver     string `json:"driver"`
	Interfaces string `json:"interfaces"`
	Rev        string `json:"rev"`
	Speed      string `json:"speed"`
	Lanes      string `json:"lanes"`
	Mode       string `json:"mode"`
	Power      string `json:"power"`
	ChipID     string `json:"chip_id"`
	ClassID    string `json:"class_id"`
	Serial     string `json:"serial"`
}

// NewUSBInfo returns an empty USB record.
func NewUSBInfo() *USBInfo {
	return &USBInfo{
		Devices: []USBDevice{},
		Hubs:    []USBHub{},
	}
}

// PCIInfo is the unified PCI device list synthesized from the GPU, audio,
// and network sections.
type PCIInfo struct {
	Devices []PCIDevice `json:"devices"`
	Count   int         `json:"count"`
}

// PCIDevice is one synthesized PCI entry, unique by bus address.
type PCIDevice struct {
	Name      string `json:"name"`
	Vendor    string `json:"vendor"`
	Driver    string `json:"driver"`
	BusID     string `json:"bus_id"`
	ChipID    string `json:"chip_id"`
	ClassID   string `json:"class_id"`
	Category  string `json:"category"`
	PCIeGen   string `json:"pcie_gen"`
	PCIeSpeed string `json:"pcie_speed"`
	PCIeLanes string `json:"pcie_lanes"`
}

// NewPCIInfo returns an empty PCI record.
func NewPCIInfo() PCIInfo {
	return PCIInfo{Devices: []PCIDevice{}}
}
