// Package convert maps between the report model and store rows.
package convert

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
	"github.com/go-tangra/go-tangra-hwinfo/internal/store"
)

// Summary is the list-view projection of a stored snapshot: the identity
// columns without the report payload.
type Summary struct {
	ID          int64     `json:"id"`
	Hostname    string    `json:"hostname"`
	Distro      string    `json:"distro"`
	Kernel      string    `json:"kernel"`
	CollectedAt time.Time `json:"collected_at"`
	StoredAt    time.Time `json:"stored_at"`
}

// ReportToSnapshot converts a report to a store row, lifting the columns
// the store indexes out of the payload.
func ReportToSnapshot(rep *model.Report) (*store.Snapshot, error) {
	payload, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	collectedAt := rep.CollectedAt
	if collectedAt.IsZero() {
		collectedAt = time.Now().UTC()
	}

	return &store.Snapshot{
		Hostname:    rep.Hostname,
		Distro:      rep.System.Distro,
		Kernel:      reportKernel(rep),
		CollectedAt: collectedAt,
		ReportJSON:  string(payload),
	}, nil
}

// SnapshotToReport decodes a stored row back into a report.
func SnapshotToReport(snap *store.Snapshot) (*model.Report, error) {
	var rep model.Report
	if err := json.Unmarshal([]byte(snap.ReportJSON), &rep); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &rep, nil
}

// SnapshotToSummary projects a store row to its list-view summary.
func SnapshotToSummary(snap *store.Snapshot) *Summary {
	return &Summary{
		ID:          snap.ID,
		Hostname:    snap.Hostname,
		Distro:      snap.Distro,
		Kernel:      snap.Kernel,
		CollectedAt: snap.CollectedAt,
		StoredAt:    snap.StoredAt,
	}
}

// reportKernel prefers the probe's own kernel string over the uname side
// scan, which fills in when the probe failed.
func reportKernel(rep *model.Report) string {
	if rep.System.Kernel != "" {
		return rep.System.Kernel
	}
	if rep.Kernel != nil {
		return rep.Kernel.Version
	}
	return ""
}
