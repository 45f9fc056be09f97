package collector

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// collectSystemExtra fills the report's flat system-state fields: kernel
// identity, root filesystem usage, fstab, loaded modules, boot parameters,
// and the install date estimate.
func collectSystemExtra(ctx context.Context, report *model.Report) {
	report.Kernel = collectKernel()
	report.DiskUsage = collectDiskUsage(ctx)
	report.Fstab = collectFstab()
	report.Modules = collectModules(ctx)
	report.Cmdline = collectCmdline()
	report.InstallDate = collectInstallDate(ctx)
}

// collectKernel reads the running kernel identity from uname.
func collectKernel() *model.KernelInfo {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		log.Debug().Err(err).Msg("uname failed")
		return &model.KernelInfo{}
	}
	return &model.KernelInfo{
		Version: unix.ByteSliceToString(uts.Release[:]),
		Name:    unix.ByteSliceToString(uts.Sysname[:]),
		Machine: unix.ByteSliceToString(uts.Machine[:]),
	}
}

// collectDiskUsage reports `df -h /` for the root filesystem.
func collectDiskUsage(ctx context.Context) *model.DiskUsage {
	out, err := runCommand(ctx, defaultTimeout, "df", "-h", "/")
	if err != nil {
		return &model.DiskUsage{Error: err.Error()}
	}
	return parseDiskUsage(out)
}

// parseDiskUsage reads the data row of df output. The first line is the
// header.
func parseDiskUsage(out string) *model.DiskUsage {
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return &model.DiskUsage{Error: "unexpected df output"}
	}
	parts := strings.Fields(lines[1])
	if len(parts) < 6 {
		return &model.DiskUsage{Error: "unexpected df output"}
	}
	return &model.DiskUsage{
		Device:     parts[0],
		Size:       parts[1],
		Used:       parts[2],
		Available:  parts[3],
		UsePercent: parts[4],
		MountPoint: parts[5],
	}
}

// collectFstab parses /etc/fstab into entries, keeping the raw contents.
func collectFstab() *model.FstabInfo {
	content, ok := readFile("/etc/fstab")
	if !ok {
		return &model.FstabInfo{Entries: []model.FstabEntry{}, Error: "could not read /etc/fstab"}
	}
	return &model.FstabInfo{Entries: parseFstab(content), Raw: content}
}

// parseFstab reads non-comment fstab lines with at least four fields. The
// dump and pass columns default to "0" when omitted.
func parseFstab(content string) []model.FstabEntry {
	entries := []model.FstabEntry{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		entry := model.FstabEntry{
			Device:     parts[0],
			MountPoint: parts[1],
			Type:       parts[2],
			Options:    parts[3],
			Dump:       "0",
			Pass:       "0",
		}
		if len(parts) > 4 {
			entry.Dump = parts[4]
		}
		if len(parts) > 5 {
			entry.Pass = parts[5]
		}
		entries = append(entries, entry)
	}
	return entries
}

// collectModules lists loaded kernel modules from lsmod.
func collectModules(ctx context.Context) *model.ModulesInfo {
	out, err := runCommand(ctx, defaultTimeout, "lsmod")
	if err != nil {
		return &model.ModulesInfo{Modules: []model.KernelModule{}, Error: err.Error()}
	}
	modules := parseModules(out)
	return &model.ModulesInfo{Modules: modules, Count: len(modules), Raw: out}
}

// parseModules reads lsmod rows, skipping the header line.
func parseModules(out string) []model.KernelModule {
	modules := []model.KernelModule{}
	lines := strings.Split(out, "\n")
	for _, line := range lines[1:] {
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		module := model.KernelModule{
			Name:   parts[0],
			Size:   parts[1],
			UsedBy: parts[2],
		}
		if len(parts) > 3 {
			module.Dependencies = parts[3]
		}
		modules = append(modules, module)
	}
	return modules
}

// collectCmdline reads the kernel boot parameters.
func collectCmdline() *model.CmdlineInfo {
	content, ok := readFile("/proc/cmdline")
	if !ok {
		return &model.CmdlineInfo{Parameters: []string{}, Error: "could not read /proc/cmdline"}
	}
	return &model.CmdlineInfo{Raw: content, Parameters: strings.Fields(content)}
}

// collectInstallDate estimates the install date from the oldest entry in
// /etc. Rough, but works across package managers.
func collectInstallDate(ctx context.Context) *model.InstallDate {
	out, err := runCommand(ctx, defaultTimeout, "ls", "-lct", "/etc")
	if err != nil {
		return &model.InstallDate{Error: err.Error()}
	}
	estimate := parseOldestEntry(out)
	if estimate == "" {
		return &model.InstallDate{Error: "could not determine install date"}
	}
	return &model.InstallDate{Estimate: estimate, Method: "/etc oldest file"}
}

// parseOldestEntry pulls the date columns from the last non-empty row of a
// time-sorted ls listing.
func parseOldestEntry(out string) string {
	lines := strings.Split(out, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		parts := strings.Fields(lines[i])
		if len(parts) == 0 {
			continue
		}
		if len(parts) >= 8 {
			return strings.Join(parts[5:8], " ")
		}
		return ""
	}
	return ""
}
