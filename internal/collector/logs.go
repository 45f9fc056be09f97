package collector

import (
	"context"
	"strings"
	"time"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// collectLogs gathers kernel ring buffer and journald error summaries.
func collectLogs(ctx context.Context) *model.LogsReport {
	return &model.LogsReport{
		Dmesg:   collectDmesg(ctx),
		Journal: collectJournal(ctx),
	}
}

// collectDmesg reads errors and warnings from the kernel ring buffer,
// without timestamps. Older dmesg versions lack --level, so a plain run is
// the fallback.
func collectDmesg(ctx context.Context) model.DmesgReport {
	report := model.DmesgReport{Errors: []string{}, Warnings: []string{}}

	if !commandExists("dmesg") {
		report.Error = "dmesg command not found"
		return report
	}

	out, err := runCommand(ctx, defaultTimeout, "dmesg", "-t", "--level=alert,crit,err,warn")
	if err != nil {
		out, err = runCommand(ctx, defaultTimeout, "dmesg")
		if err != nil {
			report.Error = err.Error()
			return report
		}
	}

	bucketDmesgLines(&report, out)
	report.Raw = out
	return report
}

// bucketDmesgLines sorts ring buffer lines into errors and warnings by
// keyword. Unrecognized lines count as warnings since the level filter
// already narrowed them down.
func bucketDmesgLines(report *model.DmesgReport, out string) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "error") || strings.Contains(lower, "fail") || strings.Contains(lower, "crit"):
			report.Errors = append(report.Errors, line)
		default:
			report.Warnings = append(report.Warnings, line)
		}
	}
	report.ErrorCount = len(report.Errors)
	report.WarningCount = len(report.Warnings)
}

// collectJournal counts current-boot errors from the systemd journal,
// grouped by unit.
func collectJournal(ctx context.Context) model.JournalReport {
	report := model.JournalReport{ByUnit: map[string]int{}}

	if !commandExists("journalctl") {
		report.Error = "journalctl command not found"
		return report
	}

	out, err := runCommand(ctx, 60*time.Second, "journalctl", "-p", "err", "-b", "--no-pager")
	if err != nil {
		report.Error = err.Error()
		return report
	}

	countJournalLines(&report, out)
	report.Raw = out
	return report
}

// countJournalLines tallies journal lines per unit. Lines look like
// "Jan 01 00:00:00 hostname unit[pid]: message"; boot marker lines
// starting with "--" are skipped.
func countJournalLines(report *model.JournalReport, out string) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		report.TotalErrors++

		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		unit, _, _ := strings.Cut(parts[4], "[")
		unit = strings.TrimRight(unit, ":")
		report.ByUnit[unit]++
	}
}
