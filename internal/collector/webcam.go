package collector

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

var (
	webcamHeaderRe = regexp.MustCompile(`^(.+?)\s+\((.+?)\):`)
	usbNameIDRe    = regexp.MustCompile(`ID\s+([0-9a-fA-F]{4}:[0-9a-fA-F]{4})\s+(.+)$`)
	pixelFormatRe  = regexp.MustCompile(`'(\w+)'`)
	fpsRe          = regexp.MustCompile(`\((\d+(?:\.\d+)?)\s*fps\)`)
)

const webcamTimeout = 5 * time.Second

// usbNameID pairs a lsusb descriptor name with its vendor:device id for
// matching webcams back to their USB identity.
type usbNameID struct {
	Name string
	ID   string
}

// collectWebcams enumerates video devices through v4l2-ctl. A missing
// v4l2-ctl is a normal condition and reported through V4L2Available.
func collectWebcams(ctx context.Context) *model.WebcamScan {
	scan := &model.WebcamScan{Devices: []model.WebcamDevice{}}

	if !commandExists("v4l2-ctl") {
		return scan
	}
	scan.V4L2Available = true

	out, err := runCommand(ctx, webcamTimeout, "v4l2-ctl", "-A")
	if err != nil {
		return scan
	}
	scan.Devices = parseWebcamList(out)

	usbIDs := lsusbNameIDs(ctx)
	for i := range scan.Devices {
		cam := &scan.Devices[i]

		if main := mainVideoDevice(cam.Devices); main != "" {
			cam.DevicePath = main
			if details, err := runCommand(ctx, webcamTimeout, "v4l2-ctl", "--all", "-d", main); err == nil {
				applyDeviceDetails(cam, details)
			}
			if formats, err := runCommand(ctx, 10*time.Second, "v4l2-ctl", "--list-formats-ext", "-d", main); err == nil {
				cam.MaxFPS = parseMaxFPS(formats)
			}
		}
		cam.USBID = matchUSBID(cam.Name, usbIDs)
	}

	scan.Count = len(scan.Devices)
	return scan
}

// parseWebcamList splits `v4l2-ctl -A` output into devices. Each entry is a
// "Name (bus-info):" header followed by indented /dev paths.
func parseWebcamList(out string) []model.WebcamDevice {
	var (
		devices []model.WebcamDevice
		current *model.WebcamDevice
	)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, "):") {
			if current != nil {
				devices = append(devices, *current)
			}
			current = nil
			if m := webcamHeaderRe.FindStringSubmatch(line); m != nil {
				current = &model.WebcamDevice{
					Name:    strings.TrimSpace(m[1]),
					BusInfo: strings.TrimSpace(m[2]),
					Devices: []string{},
				}
			}
			continue
		}
		if strings.HasPrefix(line, "/dev/") && current != nil {
			current.Devices = append(current.Devices, line)
		}
	}
	if current != nil {
		devices = append(devices, *current)
	}
	return devices
}

// mainVideoDevice picks the capture node: the first /dev/video path,
// skipping media controller nodes.
func mainVideoDevice(paths []string) string {
	for _, p := range paths {
		if strings.HasPrefix(p, "/dev/video") && !strings.Contains(p, "media") {
			return p
		}
	}
	return ""
}

// applyDeviceDetails fills driver and format fields from `v4l2-ctl --all`
// output.
func applyDeviceDetails(cam *model.WebcamDevice, out string) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.Contains(line, "Driver name"):
			cam.Driver = lineValue(line)
		case strings.Contains(line, "Driver version"):
			cam.DriverVersion = lineValue(line)
		case strings.Contains(line, "Width/Height"):
			if wh := lineValue(line); strings.Contains(wh, "/") {
				parts := strings.SplitN(wh, "/", 2)
				cam.Resolution = fmt.Sprintf("%sx%s", strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
			}
		case strings.Contains(line, "Pixel Format"):
			pf := lineValue(line)
			if m := pixelFormatRe.FindStringSubmatch(pf); m != nil {
				cam.PixelFormat = m[1]
			} else if fields := strings.Fields(pf); len(fields) > 0 {
				cam.PixelFormat = fields[0]
			}
		case strings.Contains(line, "Colorspace"):
			cam.Colorspace = lineValue(line)
		}
	}
}

// parseMaxFPS scans `v4l2-ctl --list-formats-ext` output for interval lines
// like "Interval: Discrete 0.033s (30.000 fps)" and keeps the highest rate.
func parseMaxFPS(out string) string {
	var max float64
	for _, line := range strings.Split(out, "\n") {
		m := fpsRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if fps, err := strconv.ParseFloat(m[1], 64); err == nil && fps > max {
			max = fps
		}
	}
	if max == 0 {
		return ""
	}
	if max == float64(int(max)) {
		return fmt.Sprintf("%d fps", int(max))
	}
	return fmt.Sprintf("%.1f fps", max)
}

// lsusbNameIDs maps lsusb descriptor names to their ids, in listing order.
func lsusbNameIDs(ctx context.Context) []usbNameID {
	if !commandExists("lsusb") {
		return nil
	}
	out, err := runCommand(ctx, webcamTimeout, "lsusb")
	if err != nil {
		return nil
	}
	return parseUSBNameIDs(out)
}

func parseUSBNameIDs(out string) []usbNameID {
	var ids []usbNameID
	for _, line := range strings.Split(out, "\n") {
		if m := usbNameIDRe.FindStringSubmatch(line); m != nil {
			ids = append(ids, usbNameID{Name: strings.TrimSpace(m[2]), ID: m[1]})
		}
	}
	return ids
}

// matchUSBID finds the USB identity whose descriptor name contains the
// webcam name or vice versa.
func matchUSBID(name string, ids []usbNameID) string {
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	for _, entry := range ids {
		entryLower := strings.ToLower(entry.Name)
		if strings.Contains(entryLower, lower) || strings.Contains(lower, entryLower) {
			return entry.ID
		}
	}
	return ""
}

// lineValue extracts the value of a "key : value" line.
func lineValue(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}
