package collector

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/go-tangra/go-tangra-hwinfo/internal/enrich"
	"github.com/go-tangra/go-tangra-hwinfo/internal/inxi"
	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// sideCollectorLimit caps how many side scans run at once.
const sideCollectorLimit = 4

// Collector assembles full hardware reports: one inxi probe parsed through
// a shared memoizing parser, enriched, then side scans run concurrently.
type Collector struct {
	parser   *inxi.Parser
	filtered bool
}

// New returns a collector. When filtered is set the probe drops serial
// numbers and MAC addresses, for reports that leave the machine.
func New(parser *inxi.Parser, filtered bool) *Collector {
	return &Collector{parser: parser, filtered: filtered}
}

// Collect gathers a complete report from the local host. It never fails as
// a whole: a probe failure is recorded on the report and the side scans
// carry their own error fields.
func (c *Collector) Collect(ctx context.Context) *model.Report {
	report := model.NewReport()
	report.ID = uuid.NewString()
	report.CollectedAt = time.Now().UTC()
	if hostname, err := os.Hostname(); err == nil {
		report.Hostname = hostname
	}

	raw, err := runInxi(ctx, c.filtered)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("inxi probe failed")
		report.ProbeError = err.Error()
	default:
		hw, parseErr := c.parser.ParseBytes(raw)
		if parseErr != nil {
			log.Warn().Err(parseErr).Msg("inxi output rejected")
			report.ProbeError = parseErr.Error()
		} else {
			report.HardwareInfo = *hw
			enrich.Apply(ctx, &report.HardwareInfo)
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(sideCollectorLimit)
	g.Go(func() error { report.PCI = collectPCI(ctx); return nil })
	g.Go(func() error { report.USB = collectUSB(ctx); return nil })
	g.Go(func() error { report.Logs = collectLogs(ctx); return nil })
	g.Go(func() error { report.Webcams = collectWebcams(ctx); return nil })
	g.Go(func() error { collectSystemExtra(ctx, report); return nil })
	_ = g.Wait()

	return report
}

// Parse normalizes an already-captured inxi JSON document without touching
// the local host.
func (c *Collector) Parse(raw []byte) (*model.HardwareInfo, error) {
	return c.parser.ParseBytes(raw)
}
