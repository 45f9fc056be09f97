package enrich

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

const pacmanLogPath = "/var/log/pacman.log"

var installDateRe = regexp.MustCompile(`\[(\d{4}-\d{2}-\d{2})`)

// applyUptime records how long the machine has been up when the parse did
// not already provide it. `uptime -p` gives the human form.
func applyUptime(ctx context.Context, sys *model.SystemInfo) {
	if sys.Uptime != "" {
		return
	}
	out, err := run(ctx, "uptime", "-p")
	if err != nil {
		log.Debug().Err(err).Msg("uptime command failed")
		return
	}
	sys.Uptime = strings.ReplaceAll(out, "up ", "")
}

// applyHostInfo fills the hostname, which the probe never reports, and the
// uptime when `uptime -p` was unavailable.
func applyHostInfo(ctx context.Context, sys *model.SystemInfo) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("host info lookup failed")
		return
	}
	setIfEmpty(&sys.Hostname, info.Hostname)
	if sys.Uptime == "" && info.Uptime > 0 {
		sys.Uptime = formatUptime(info.Uptime)
	}
}

// formatUptime renders seconds the way `uptime -p` does.
func formatUptime(seconds uint64) string {
	total := int(seconds / 60)
	days, hours, minutes := total/(24*60), total/60%24, total%60

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	if len(parts) == 0 {
		return "0 minutes"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// applyShell records the login shell from $SHELL. The version banner's
// first line replaces the bare name when the shell reports one.
func applyShell(ctx context.Context, sys *model.SystemInfo) {
	if sys.Shell != "" {
		return
	}
	name := shellName(os.Getenv("SHELL"))
	if name == "" {
		return
	}
	sys.Shell = name

	out, err := run(ctx, name, "--version")
	if err != nil {
		log.Debug().Err(err).Msg("shell version lookup failed")
		return
	}
	if line, _, _ := strings.Cut(out, "\n"); line != "" {
		sys.Shell = line
	}
}

// shellName reduces a $SHELL value to the bare executable name.
func shellName(shell string) string {
	if shell == "" {
		return ""
	}
	name := filepath.Base(shell)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// applyInstallDate reads the install date from the first line of the pacman
// log. Systems without one keep the field empty.
func applyInstallDate(sys *model.SystemInfo) {
	if sys.InstallDate != "" {
		return
	}
	f, err := os.Open(pacmanLogPath)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return
	}
	setIfEmpty(&sys.InstallDate, parseInstallDate(scanner.Text()))
}

// parseInstallDate extracts the date from a pacman log line such as
// "[2023-04-01T12:00:00+0000] [PACMAN] Running 'pacman -Syu'".
func parseInstallDate(line string) string {
	m := installDateRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}
