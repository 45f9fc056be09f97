package inxi

import (
	"strings"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// Classification keyword lists for Graphics section Device entries. A
// device naming a webcam keyword (or driven by uvcvideo) is a webcam unless
// it also looks like a GPU; GPU keywords and drivers win ties.
var (
	WebcamKeywords = []string{
		"webcam", "camera", "cam", "usb2.0", "hd pro",
		"facetime", "isight", "brio", "c920", "c922", "c925",
		"streamcam", "kiyo", "uvc", "integrated_webcam",
	}

	GPUKeywords = []string{
		"vga", "nvidia", "amd", "radeon", "geforce", "intel hd", "intel uhd",
		"intel iris", "matrox", "quadro", "firepro", "arc ", "display",
		"graphics", "gpu", "rtx", "gtx",
	}

	GPUDrivers = []string{"nvidia", "amdgpu", "radeon", "i915", "nouveau"}
)

// containsAny reports whether s contains any of the keywords.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// parseGPU sorts Graphics section items into GPU devices, webcams, display
// server, API blocks, and monitor records.
func parseGPU(items []model.RawItem) model.GPUInfo {
	out := model.NewGPUInfo()

	for _, raw := range items {
		cleaned := cleanItem(raw)

		if _, ok := cleaned["Device"]; ok {
			name := strings.ToLower(asString(cleaned["Device"]))
			driver := strings.ToLower(asString(cleaned["driver"]))

			isWebcam := containsAny(name, WebcamKeywords) || strings.Contains(driver, "uvcvideo")
			isGPU := containsAny(name, GPUKeywords) || containsAny(driver, GPUDrivers)

			if isWebcam && !isGPU {
				typ := "USB"
				if v, ok := cleaned["type"]; ok {
					typ = asString(v)
				}
				out.Webcams = append(out.Webcams, model.GPUWebcam{
					Name:   asString(cleaned["Device"]),
					Driver: asString(cleaned["driver"]),
					Type:   typ,
					BusID:  asString(cleaned["bus-ID"]),
					ChipID: asString(cleaned["chip-ID"]),
					Serial: asString(cleaned["serial"]),
					Speed:  asString(cleaned["speed"]),
					Mode:   asString(cleaned["mode"]),
				})
			} else {
				out.Devices = append(out.Devices, model.GPUDevice{
					Name:          asString(cleaned["Device"]),
					Vendor:        asString(cleaned["vendor"]),
					Driver:        asString(cleaned["driver"]),
					DriverVersion: asString(cleaned["v"]),
					BusID:         asString(cleaned["bus-ID"]),
					Arch:          asString(cleaned["arch"]),
					ChipID:        asString(cleaned["chip-ID"]),
					PortsActive:   asString(cleaned["active"]),
					PortsEmpty:    asString(cleaned["empty"]),
				})
			}
			continue
		}

		if _, ok := cleaned["Display"]; ok {
			out.DisplayInfo = displayInfo(cleaned)
			continue
		}
		if _, ok := cleaned["server"]; ok {
			out.DisplayInfo = displayInfo(cleaned)
			continue
		}

		if _, ok := cleaned["Monitor"]; ok {
			out.Monitors = append(out.Monitors, model.MonitorInfo{
				Name:       asString(cleaned["Monitor"]),
				Model:      asString(cleaned["model"]),
				Resolution: asString(cleaned["res"]),
				Size:       asString(cleaned["size"]),
				Diagonal:   asString(cleaned["diag"]),
				DPI:        asString(cleaned["dpi"]),
				Gamma:      asString(cleaned["gamma"]),
				Ratio:      asString(cleaned["ratio"]),
			})
			continue
		}

		switch asString(cleaned["API"]) {
		case "OpenGL":
			out.OpenGL = model.OpenGLInfo{
				Version:       asString(cleaned["v"]),
				CompatVersion: asString(cleaned["compat-v"]),
				Vendor:        asString(cleaned["vendor"]),
				GLXVersion:    asString(cleaned["glx-v"]),
				DirectRender:  asString(cleaned["direct-render"]),
				Renderer:      asString(cleaned["renderer"]),
				Memory:        asString(cleaned["memory"]),
			}
		case "Vulkan":
			out.Vulkan = model.VulkanInfo{
				Version: asString(cleaned["v"]),
				Layers:  asString(cleaned["layers"]),
				Devices: []model.VulkanDevice{},
			}
			if _, ok := cleaned["device"]; ok {
				out.Vulkan.Devices = append(out.Vulkan.Devices, model.VulkanDevice{
					Device: asString(cleaned["device"]),
					Type:   asString(cleaned["type"]),
					Name:   asString(cleaned["name"]),
					Driver: asString(cleaned["driver"]),
				})
			}
		case "EGL":
			out.EGL = model.EGLInfo{
				Version:   asString(cleaned["v"]),
				HW:        asString(cleaned["hw"]),
				Platforms: asString(cleaned["platforms"]),
			}
		}
	}

	return out
}

func displayInfo(cleaned map[string]any) model.DisplayInfo {
	return model.DisplayInfo{
		Display:       asString(cleaned["Display"]),
		Server:        asString(cleaned["server"]),
		ServerVersion: asString(cleaned["v"]),
		With:          asString(cleaned["with"]),
		Compositor:    asString(cleaned["compositor"]),
		DriverLoaded:  asString(cleaned["loaded"]),
		GPU:           asString(cleaned["gpu"]),
	}
}
