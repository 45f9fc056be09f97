package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

const v4l2ListOutput = `Integrated Camera (usb-0000:00:14.0-8):
	/dev/video0
	/dev/video1
	/dev/media0

HD Pro Webcam C920 (usb-0000:00:14.0-2):
	/dev/video2
	/dev/video3
	/dev/media1
`

func TestParseWebcamList(t *testing.T) {
	t.Run("test entries split on headers", func(t *testing.T) {
		cams := parseWebcamList(v4l2ListOutput)
		require.Len(t, cams, 2)

		assert.Equal(t, "Integrated Camera", cams[0].Name)
		assert.Equal(t, "usb-0000:00:14.0-8", cams[0].BusInfo)
		assert.Equal(t, []string{"/dev/video0", "/dev/video1", "/dev/media0"}, cams[0].Devices)
		assert.Equal(t, "HD Pro Webcam C920", cams[1].Name)
	})

	t.Run("test paths before any header dropped", func(t *testing.T) {
		cams := parseWebcamList("/dev/video0\nIntegrated Camera (usb-0000:00:14.0-8):\n\t/dev/video1\n")
		require.Len(t, cams, 1)
		assert.Equal(t, []string{"/dev/video1"}, cams[0].Devices)
	})
}

func TestMainVideoDevice(t *testing.T) {
	assert.Equal(t, "/dev/video0", mainVideoDevice([]string{"/dev/video0", "/dev/video1", "/dev/media0"}))
	assert.Equal(t, "/dev/video2", mainVideoDevice([]string{"/dev/media0", "/dev/video2"}))
	assert.Empty(t, mainVideoDevice([]string{"/dev/media0"}))
}

func TestApplyDeviceDetails(t *testing.T) {
	out := `Driver Info:
	Driver name      : uvcvideo
	Card type        : Integrated Camera: Integrated C
	Bus info         : usb-0000:00:14.0-8
	Driver version   : 6.6.10
Format Video Capture:
	Width/Height      : 1280/720
	Pixel Format      : 'MJPG' (Motion-JPEG)
	Field             : None
	Colorspace        : sRGB
`
	var cam model.WebcamDevice
	applyDeviceDetails(&cam, out)

	assert.Equal(t, "uvcvideo", cam.Driver)
	assert.Equal(t, "6.6.10", cam.DriverVersion)
	assert.Equal(t, "1280x720", cam.Resolution)
	assert.Equal(t, "MJPG", cam.PixelFormat)
	assert.Equal(t, "sRGB", cam.Colorspace)
}

func TestParseMaxFPS(t *testing.T) {
	t.Run("test highest rate wins", func(t *testing.T) {
		out := `		Interval: Discrete 0.033s (30.000 fps)
		Interval: Discrete 0.017s (60.000 fps)
		Interval: Discrete 0.067s (15.000 fps)`
		assert.Equal(t, "60 fps", parseMaxFPS(out))
	})

	t.Run("test fractional rate", func(t *testing.T) {
		assert.Equal(t, "29.5 fps", parseMaxFPS("Interval: Discrete 0.034s (29.5 fps)"))
	})

	t.Run("test no rates", func(t *testing.T) {
		assert.Empty(t, parseMaxFPS("ioctl: VIDIOC_ENUM_FMT"))
	})
}

func TestMatchUSBID(t *testing.T) {
	ids := []usbNameID{
		{Name: "Linux Foundation 2.0 root hub", ID: "1d6b:0002"},
		{Name: "Lenovo FHD Webcam Audio", ID: "17ef:4831"},
		{Name: "Logitech, Inc. HD Pro Webcam C920", ID: "046d:082d"},
	}

	t.Run("test webcam name inside descriptor", func(t *testing.T) {
		assert.Equal(t, "046d:082d", matchUSBID("HD Pro Webcam C920", ids))
	})

	t.Run("test descriptor inside webcam name", func(t *testing.T) {
		assert.Equal(t, "17ef:4831", matchUSBID("Lenovo FHD Webcam Audio: Integrated", ids))
	})

	t.Run("test no match", func(t *testing.T) {
		assert.Empty(t, matchUSBID("Integrated Camera", ids))
	})
}

func TestParseUSBNameIDs(t *testing.T) {
	ids := parseUSBNameIDs("Bus 001 Device 004: ID 17ef:4831 Lenovo FHD Webcam Audio\nBus 001 Device 001: ID 1d6b:0002 Linux Foundation 2.0 root hub")
	require.Len(t, ids, 2)
	assert.Equal(t, usbNameID{Name: "Lenovo FHD Webcam Audio", ID: "17ef:4831"}, ids[0])
}
