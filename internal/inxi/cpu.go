package inxi

import (
	"strings"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// parseCPU folds the CPU section items into one record. Identity, topology,
// cache, and speed fields accumulate across items; an item carrying a Type
// key is a vulnerability entry, not the CPU's own type.
func parseCPU(items []model.RawItem) model.CPUInfo {
	out := model.NewCPUInfo()

	for _, raw := range items {
		cleaned := cleanItem(raw)

		if v, ok := cleaned["model"]; ok {
			out.Model = asString(v)
		}
		if v, ok := cleaned["type"]; ok {
			out.Type = asString(v)
		}
		if v, ok := cleaned["bits"]; ok {
			out.Bits = asInt(v, out.Bits)
		}
		if v, ok := cleaned["arch"]; ok {
			out.Arch = asString(v)
		}
		if v, ok := cleaned["gen"]; ok {
			out.Gen = asString(v)
		}
		if v, ok := cleaned["built"]; ok {
			out.Built = asString(v)
		}
		if v, ok := cleaned["process"]; ok {
			out.Process = asString(v)
		}
		if v, ok := cleaned["family"]; ok {
			out.Family = asString(v)
		}
		if v, ok := cleaned["model-id"]; ok {
			out.ModelID = asString(v)
		}
		if v, ok := cleaned["stepping"]; ok {
			out.Stepping = asString(v)
		}
		if v, ok := cleaned["microcode"]; ok {
			out.Microcode = asString(v)
		}

		if v, ok := cleaned["L1"]; ok {
			out.CacheL1 = asString(v)
		}
		if v, ok := cleaned["L2"]; ok {
			out.CacheL2 = asString(v)
		}
		if v, ok := cleaned["L3"]; ok {
			out.CacheL3 = asString(v)
		}

		// The Info field is free text like "8-core (4-mt/4-st)"; mine it
		// for a core count in case the topology item never shows up.
		if v, ok := cleaned["Info"]; ok {
			info := strings.ToLower(asString(v))
			switch {
			case strings.Contains(info, "quad core"):
				out.Cores = 4
			case strings.Contains(info, "octa core"):
				out.Cores = 8
			case strings.Contains(info, "dual core"):
				out.Cores = 2
			case strings.Contains(info, "hexa core"):
				out.Cores = 6
			}
			if m := coreCountRe.FindStringSubmatch(info); m != nil {
				if n, ok := parseInt(m[1]); ok {
					out.Cores = n
				}
			}
		}

		if v, ok := cleaned["cores"]; ok {
			out.Cores = asInt(v, out.Cores)
		}
		if v, ok := cleaned["threads"]; ok {
			out.Threads = asInt(v, out.Threads)
		}

		// Per-thread speeds arrive as numeric keys.
		for k, v := range cleaned {
			if isDigits(k) {
				if idx, ok := parseInt(k); ok {
					out.CoreSpeeds[idx] = asInt(v, 0)
				}
			}
		}

		if v, ok := cleaned["avg"]; ok {
			out.SpeedCurrent = asInt(v, out.SpeedCurrent)
		}
		if v, ok := cleaned["min/max"]; ok {
			mm := strings.Split(asString(v), "/")
			if len(mm) == 2 {
				if lo, ok := parseInt(mm[0]); ok {
					out.SpeedMin = lo
					if hi, ok := parseInt(mm[1]); ok {
						out.SpeedMax = hi
					}
				}
			}
		}
		if v, ok := cleaned["bogomips"]; ok {
			out.Bogomips = asInt(v, out.Bogomips)
		}
		if v, ok := cleaned["driver"]; ok {
			out.ScalingDriver = asString(v)
		}
		if v, ok := cleaned["governor"]; ok {
			out.ScalingGovernor = asString(v)
		}

		if v, ok := cleaned["Flags"]; ok {
			out.Flags = asString(v)
		} else if v, ok := cleaned["Flags-basic"]; ok {
			out.Flags = asString(v)
		}

		if v, ok := cleaned["Type"]; ok {
			out.Vulnerabilities = append(out.Vulnerabilities, model.CPUVulnerability{
				Type:       asString(v),
				Status:     asString(cleaned["status"]),
				Mitigation: asString(cleaned["mitigation"]),
			})
		}
	}

	if out.Threads == 0 {
		out.Threads = len(out.CoreSpeeds)
	}
	if out.Threads > 0 && out.Cores == 0 {
		out.Cores = out.Threads / 2
		if out.Cores == 0 {
			out.Cores = out.Threads
		}
	}

	return out
}
