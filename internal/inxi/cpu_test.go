package inxi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCPUTopology(t *testing.T) {
	t.Run("test threads from per-core speeds", func(t *testing.T) {
		items := decodeItems(t, `[
			{"079#2#2#0": 2400, "080#2#2#1": 2400, "081#2#2#2": 2400, "082#2#2#3": 2400}
		]`)

		cpu := parseCPU(items)

		assert.Equal(t, 4, cpu.Threads)
		assert.Equal(t, 2, cpu.Cores)
		assert.Len(t, cpu.CoreSpeeds, 4)
		assert.Equal(t, 2400, cpu.CoreSpeeds[0])
	})

	t.Run("test single thread keeps one core", func(t *testing.T) {
		cpu := parseCPU(decodeItems(t, `[{"079#2#2#0": 1200}]`))

		assert.Equal(t, 1, cpu.Threads)
		assert.Equal(t, 1, cpu.Cores)
	})

	t.Run("test explicit topology wins", func(t *testing.T) {
		cpu := parseCPU(decodeItems(t, `[{"001#1#1#cores": 8, "002#1#1#threads": 16}]`))

		assert.Equal(t, 8, cpu.Cores)
		assert.Equal(t, 16, cpu.Threads)
	})
}

func TestParseCPUInfoText(t *testing.T) {
	t.Run("test quad core wording", func(t *testing.T) {
		cpu := parseCPU(decodeItems(t, `[{"001#1#1#Info": "quad core"}]`))
		assert.Equal(t, 4, cpu.Cores)
	})

	t.Run("test numeric core count wording", func(t *testing.T) {
		cpu := parseCPU(decodeItems(t, `[{"001#1#1#Info": "12-core (8-mt/4-st)"}]`))
		assert.Equal(t, 12, cpu.Cores)
	})

	t.Run("test explicit cores key overrides wording", func(t *testing.T) {
		cpu := parseCPU(decodeItems(t, `[{"001#1#1#Info": "quad core", "002#1#1#cores": 6}]`))
		assert.Equal(t, 6, cpu.Cores)
	})
}

func TestParseCPUFields(t *testing.T) {
	items := decodeItems(t, `[
		{"001#1#1#Info": "8-core", "002#1#1#model": "AMD Ryzen 7 5800X", "003#1#1#bits": 64,
		 "004#1#1#type": "MT MCP", "005#1#1#arch": "Zen 3", "006#1#1#gen": "4",
		 "007#1#1#family": "0x19", "008#1#1#model-id": "0x21", "009#1#1#stepping": 0,
		 "010#1#1#microcode": "0xA201016"},
		{"011#2#1#L1": "512 KiB", "012#2#1#L2": "4 MiB", "013#2#1#L3": "32 MiB"},
		{"020#3#1#Speed (MHz)": "", "021#3#1#avg": 2612, "022#3#1#min/max": "2200/4850",
		 "023#3#1#boost": "enabled", "024#3#1#driver": "acpi-cpufreq", "025#3#1#governor": "schedutil",
		 "026#3#1#bogomips": 121433},
		{"030#4#1#Flags": "avx avx2 sse4a svm"},
		{"040#5#1#Type": "spectre_v2", "041#5#1#mitigation": "Retpolines"},
		{"050#6#1#Type": "meltdown", "051#6#1#status": "Not affected"}
	]`)

	cpu := parseCPU(items)

	assert.Equal(t, "AMD Ryzen 7 5800X", cpu.Model)
	assert.Equal(t, 8, cpu.Cores)
	assert.Equal(t, 64, cpu.Bits)
	assert.Equal(t, "MT MCP", cpu.Type)
	assert.Equal(t, "Zen 3", cpu.Arch)
	assert.Equal(t, "0x19", cpu.Family)
	assert.Equal(t, "0x21", cpu.ModelID)
	assert.Equal(t, "0xA201016", cpu.Microcode)
	assert.Equal(t, "512 KiB", cpu.CacheL1)
	assert.Equal(t, "32 MiB", cpu.CacheL3)
	assert.Equal(t, 2612, cpu.SpeedCurrent)
	assert.Equal(t, 2200, cpu.SpeedMin)
	assert.Equal(t, 4850, cpu.SpeedMax)
	assert.Equal(t, "acpi-cpufreq", cpu.ScalingDriver)
	assert.Equal(t, "schedutil", cpu.ScalingGovernor)
	assert.Equal(t, 121433, cpu.Bogomips)
	assert.Equal(t, "avx avx2 sse4a svm", cpu.Flags)

	require.Len(t, cpu.Vulnerabilities, 2)
	assert.Equal(t, "spectre_v2", cpu.Vulnerabilities[0].Type)
	assert.Equal(t, "Retpolines", cpu.Vulnerabilities[0].Mitigation)
	assert.Equal(t, "Not affected", cpu.Vulnerabilities[1].Status)
}

func TestParseCPUFlagsFallback(t *testing.T) {
	cpu := parseCPU(decodeItems(t, `[{"001#1#1#Flags-basic": "avx sse"}]`))
	assert.Equal(t, "avx sse", cpu.Flags)
}

func TestParseCPUSpeedRangeMalformed(t *testing.T) {
	cpu := parseCPU(decodeItems(t, `[{"001#1#1#min/max": "N/A"}]`))
	assert.Equal(t, 0, cpu.SpeedMin)
	assert.Equal(t, 0, cpu.SpeedMax)
}
