package inxi

import "github.com/go-tangra/go-tangra-hwinfo/internal/model"

// parseSystem reads the System section identity fields. Live details like
// hostname, uptime, and shell version are filled in afterwards by the
// enrich package.
func parseSystem(items []model.RawItem) model.SystemInfo {
	var out model.SystemInfo

	for _, raw := range items {
		cleaned := cleanItem(raw)

		if v, ok := cleaned["Host"]; ok {
			out.Host = asString(v)
		}
		if v, ok := cleaned["Kernel"]; ok {
			out.Kernel = asString(v)
		}
		if v, ok := cleaned["arch"]; ok {
			out.KernelArch = asString(v)
		}
		if v, ok := cleaned["bits"]; ok {
			out.KernelBits = asString(v)
		}
		if v, ok := cleaned["compiler"]; ok {
			out.Compiler = asString(v)
		}
		if v, ok := cleaned["Desktop"]; ok {
			out.Desktop = asString(v)
			if vv, ok := cleaned["v"]; ok {
				out.DesktopVersion = asString(vv)
			}
		}
		if v, ok := cleaned["wm"]; ok {
			out.WM = asString(v)
		}
		if v, ok := cleaned["dm"]; ok {
			out.DM = asString(v)
		}
		if v, ok := cleaned["tk"]; ok {
			out.TK = asString(v)
		}
		if v, ok := cleaned["Distro"]; ok {
			out.Distro = asString(v)
		}
		if v, ok := cleaned["Init"]; ok {
			out.Init = asString(v)
		}
	}

	return out
}

// mergeInfo folds the Info section into the system record. The section
// carries memory totals, process counts, init, and package manager details;
// its values win over what the System section set for the same fields.
func mergeInfo(sys *model.SystemInfo, items []model.RawItem) {
	for _, raw := range items {
		cleaned := cleanItem(raw)

		_, hasTotal := cleaned["total"]
		_, hasAvail := cleaned["available"]
		if hasTotal && hasAvail {
			sys.MemoryTotal = asString(cleaned["total"])
			sys.MemoryAvailable = asString(cleaned["available"])
			sys.MemoryUsed = asString(cleaned["used"])
		}

		if v, ok := cleaned["Processes"]; ok {
			sys.Processes = asString(v)
			sys.Uptime = asString(cleaned["uptime"])
			sys.PowerStates = asString(cleaned["states"])
			sys.SuspendMode = asString(cleaned["suspend"])
			sys.HibernateMode = asString(cleaned["hibernate"])
			sys.HibernateImage = asString(cleaned["image"])
			if iv, ok := cleaned["Init"]; ok {
				sys.Init = asString(iv)
				sys.InitVersion = asString(cleaned["v"])
				sys.InitServices = asString(cleaned["services"])
			}
		}

		if v, ok := cleaned["Packages"]; ok {
			sys.Packages = asString(v)
			sys.Shell = asString(cleaned["Shell"])
			sys.ShellVersion = asString(cleaned["v"])
			sys.InxiVersion = asString(cleaned["inxi"])
			sys.GCCVersion = asString(cleaned["gcc"])
			sys.ClangVersion = asString(cleaned["clang"])
		}

		if v, ok := cleaned["Repos"]; ok {
			sys.ReposSummary = asString(v)
		}
	}
}
