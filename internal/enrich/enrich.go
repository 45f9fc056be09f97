// Package enrich fills the gaps a plain inxi probe leaves behind: live
// interface addresses, routing and DNS state, host identity, the raw
// sensors output, and SMBIOS machine identity when inxi ran unprivileged.
//
// Every step is additive. Fields the parse already populated are kept,
// each external probe runs under a short timeout, and a failing probe
// logs at debug level and leaves the defaults in place.
package enrich

import (
	"context"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// Apply runs all enrichment steps against hw in place.
func Apply(ctx context.Context, hw *model.HardwareInfo) {
	applyAddresses(ctx, &hw.Network)
	applyRouting(ctx, &hw.Network)
	applyDNS(ctx, &hw.Network)
	applyUptime(ctx, &hw.System)
	applyHostInfo(ctx, &hw.System)
	applyShell(ctx, &hw.System)
	applyInstallDate(&hw.System)
	applySensors(ctx, &hw.Sensors)
	applyMachine(&hw.Machine)
}

func setIfEmpty(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
	}
}
