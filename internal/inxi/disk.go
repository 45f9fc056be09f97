package inxi

import (
	"strings"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// parseDisk is a two-phase parse. The Drives items give the local storage
// summary and the physical drives; the full document is then rescanned for
// the sibling Partition and Swap sections that belong to the same category.
func parseDisk(items []model.RawItem, doc model.RawDocument) model.DiskInfo {
	out := model.NewDiskInfo()

	for _, raw := range items {
		cleaned := cleanItem(raw)

		_, hasLocal := cleaned["Local Storage"]
		_, hasTotal := cleaned["total"]
		if hasLocal || hasTotal {
			out.TotalSize = asString(cleaned["total"])
			out.Used = asString(cleaned["used"])
			out.UsedPercent = percentIn(out.Used)
			continue
		}

		_, hasModel := cleaned["model"]
		_, hasSize := cleaned["size"]
		if hasModel && hasSize {
			driveType := "HDD"
			tech := strings.ToUpper(asString(cleaned["tech"]))
			if strings.Contains(tech, "SSD") {
				driveType = "SSD"
			} else if strings.Contains(tech, "NVME") {
				driveType = "NVMe"
			}
			if strings.Contains(strings.ToLower(asString(cleaned["ID"])), "nvme") {
				driveType = "NVMe"
			}

			out.Drives = append(out.Drives, model.DiskDrive{
				ID:            asString(cleaned["ID"]),
				Model:         asString(cleaned["model"]),
				Size:          asString(cleaned["size"]),
				Vendor:        asString(cleaned["vendor"]),
				Type:          driveType,
				Serial:        asString(cleaned["serial"]),
				Temp:          asString(cleaned["temp"]),
				Speed:         asString(cleaned["speed"]),
				Lanes:         asString(cleaned["lanes"]),
				Firmware:      asString(cleaned["fw-rev"]),
				Scheme:        asString(cleaned["scheme"]),
				BlockPhysical: asString(cleaned["physical"]),
				BlockLogical:  asString(cleaned["logical"]),
				MajMin:        asString(cleaned["maj-min"]),
			})
		}
	}

	for _, section := range doc {
		for _, rawName := range sortedKeys(section) {
			name := CleanKey(rawName)
			switch {
			case strings.Contains(name, "Partition"):
				for _, item := range asItems(section[rawName]) {
					cleaned := cleanItem(item)
					if _, ok := cleaned["ID"]; !ok {
						continue
					}
					used := asString(cleaned["used"])
					out.Partitions = append(out.Partitions, model.Partition{
						ID:          asString(cleaned["ID"]),
						RawSize:     asString(cleaned["raw-size"]),
						Size:        asString(cleaned["size"]),
						Used:        used,
						UsedPercent: percentIn(used),
						FS:          asString(cleaned["fs"]),
						Dev:         asString(cleaned["dev"]),
						Label:       asString(cleaned["label"]),
						Mount:       asString(firstOf(cleaned, "mount", "mountpoint")),
					})
				}
			case strings.Contains(name, "Swap"):
				for _, item := range asItems(section[rawName]) {
					cleaned := cleanItem(item)
					_, hasKernel := cleaned["Kernel"]
					_, hasSwappiness := cleaned["swappiness"]
					_, hasID := cleaned["ID"]
					_, hasType := cleaned["type"]
					switch {
					case hasKernel || hasSwappiness:
						out.SwapKernel = model.SwapKernel{
							Swappiness:    asString(cleaned["swappiness"]),
							CachePressure: asString(cleaned["cache-pressure"]),
							ZSwap:         asString(cleaned["zswap"]),
							Compressor:    asString(cleaned["compressor"]),
						}
					case hasID || hasType:
						used := asString(cleaned["used"])
						out.Swap = append(out.Swap, model.SwapEntry{
							ID:          asString(cleaned["ID"]),
							Type:        asString(cleaned["type"]),
							Size:        asString(cleaned["size"]),
							Used:        used,
							UsedPercent: percentIn(used),
							Priority:    asString(cleaned["priority"]),
							Comp:        asString(cleaned["comp"]),
							Dev:         asString(firstOf(cleaned, "dev", "file")),
						})
					}
				}
			}
		}
	}

	return out
}
