package model

import "time"

// Report is one complete hardware snapshot: the parsed probe output plus
// the side scans that run alongside it. Side categories are pointers so a
// parse-only report marshals without them.
type Report struct {
	ID          string    `json:"id"`
	Hostname    string    `json:"hostname"`
	CollectedAt time.Time `json:"collected_at"`

	HardwareInfo

	PCI         *PCIScan     `json:"pci,omitempty"`
	USB         *USBScan     `json:"usb,omitempty"`
	Logs        *LogsReport  `json:"logs,omitempty"`
	Webcams     *WebcamScan  `json:"webcam,omitempty"`
	Kernel      *KernelInfo  `json:"kernel,omitempty"`
	DiskUsage   *DiskUsage   `json:"disk_usage,omitempty"`
	Fstab       *FstabInfo   `json:"fstab,omitempty"`
	Modules     *ModulesInfo `json:"modules,omitempty"`
	Cmdline     *CmdlineInfo `json:"cmdline,omitempty"`
	InstallDate *InstallDate `json:"install_date,omitempty"`
	ProbeError  string       `json:"inxi_error,omitempty"`
}

// NewReport returns a report with the hardware section pre-seeded.
func NewReport() *Report {
	return &Report{HardwareInfo: *NewHardwareInfo()}
}

// PCIScanDevice is one parsed line of an lspci -nn listing. Infrastructure
// marks bridges, hubs, and bus controllers so report consumers can fold
// them away from the interesting hardware.
type PCIScanDevice struct {
	Slot             string `json:"slot"`
	Category         string `json:"category"`
	Name             string `json:"name"`
	ClassID          string `json:"class_id"`
	VendorID         string `json:"vendor_id"`
	DeviceID         string `json:"device_id"`
	FullID           string `json:"full_id"`
	Revision         string `json:"revision"`
	LinuxHardwareURL string `json:"linux_hardware_url"`
	Infrastructure   bool   `json:"infrastructure"`
	Raw              string `json:"raw"`
}

// PCIScan holds the lspci side scan.
type PCIScan struct {
	Devices  []PCIScanDevice `json:"devices"`
	Detailed string          `json:"detailed"`
	Count    int             `json:"count"`
	Error    string          `json:"error,omitempty"`
}

// USBScanDevice is one parsed line of an lsusb listing.
type USBScanDevice struct {
	Bus              string `json:"bus"`
	Device           string `json:"device"`
	VendorID         string `json:"vendor_id"`
	DeviceID         string `json:"device_id"`
	FullID           string `json:"full_id"`
	Name             string `json:"name"`
	LinuxHardwareURL string `json:"linux_hardware_url"`
	Raw              string `json:"raw"`
}

// USBScan holds the lsusb side scan.
type USBScan struct {
	Devices  []USBScanDevice `json:"devices"`
	Detailed string          `json:"detailed"`
	Count    int             `json:"count"`
	Error    string          `json:"error,omitempty"`
}

// DmesgReport holds kernel ring buffer errors and warnings.
type DmesgReport struct {
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
	ErrorCount   int      `json:"error_count"`
	WarningCount int      `json:"warning_count"`
	Raw          string   `json:"raw"`
	Error        string   `json:"error,omitempty"`
}

// JournalReport holds journald errors for the current boot, counted per unit.
type JournalReport struct {
	TotalErrors int            `json:"total_errors"`
	ByUnit      map[string]int `json:"by_unit"`
	Raw         string         `json:"raw"`
	Error       string         `json:"error,omitempty"`
}

// LogsReport groups the log side scans.
type LogsReport struct {
	Dmesg   DmesgReport   `json:"dmesg_errors"`
	Journal JournalReport `json:"journal_errors"`
}

// WebcamDevice is one video device enumerated through v4l2.
type WebcamDevice struct {
	Name          string   `json:"name"`
	BusInfo       string   `json:"bus_info"`
	Devices       []string `json:"devices"`
	DevicePath    string   `json:"device_path,omitempty"`
	Driver        string   `json:"driver,omitempty"`
	DriverVersion string   `json:"driver_version,omitempty"`
	Resolution    string   `json:"resolution,omitempty"`
	PixelFormat   string   `json:"pixel_format,omitempty"`
	Colorspace    string   `json:"colorspace,omitempty"`
	MaxFPS        string   `json:"max_fps,omitempty"`
	USBID         string   `json:"usb_id,omitempty"`
}

// WebcamScan holds the v4l2 side scan.
type WebcamScan struct {
	Devices       []WebcamDevice `json:"devices"`
	Count         int            `json:"count"`
	V4L2Available bool           `json:"v4l2_available"`
}

// KernelInfo reports the running kernel.
type KernelInfo struct {
	Version string `json:"version"`
	Name    string `json:"name"`
	Machine string `json:"machine"`
}

// DiskUsage reports df output for the root filesystem.
type DiskUsage struct {
	Device     string `json:"device"`
	Size       string `json:"size"`
	Used       string `json:"used"`
	Available  string `json:"available"`
	UsePercent string `json:"use_percent"`
	MountPoint string `json:"mount_point"`
	Error      string `json:"error,omitempty"`
}

// FstabEntry is one non-comment line of /etc/fstab.
type FstabEntry struct {
	Device     string `json:"device"`
	MountPoint string `json:"mount_point"`
	Type       string `json:"type"`
	Options    string `json:"options"`
	Dump       string `json:"dump"`
	Pass       string `json:"pass"`
}

// FstabInfo holds the parsed fstab.
type FstabInfo struct {
	Entries []FstabEntry `json:"entries"`
	Raw     string       `json:"raw"`
	Error   string       `json:"error,omitempty"`
}

// KernelModule is one lsmod row.
type KernelModule struct {
	Name         string `json:"name"`
	Size         string `json:"size"`
	UsedBy       string `json:"used_by"`
	Dependencies string `json:"dependencies"`
}

// ModulesInfo holds the loaded kernel module listing.
type ModulesInfo struct {
	Modules []KernelModule `json:"modules"`
	Count   int            `json:"count"`
	Raw     string         `json:"raw"`
	Error   string         `json:"error,omitempty"`
}

// CmdlineInfo holds the kernel boot parameters.
type CmdlineInfo struct {
	Raw        string   `json:"raw"`
	Parameters []string `json:"parameters"`
	Error      string   `json:"error,omitempty"`
}

// InstallDate is a best-effort estimate of when the OS was installed.
type InstallDate struct {
	Estimate string `json:"estimate"`
	Method   string `json:"method"`
	Error    string `json:"error,omitempty"`
}
