package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	kratoshttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/go-tangra/go-tangra-hwinfo/internal/collector"
	"github.com/go-tangra/go-tangra-hwinfo/internal/convert"
	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
	"github.com/go-tangra/go-tangra-hwinfo/internal/store"
)

// Handler serves the snapshot API, backed by the store and, for the refresh
// and parse operations, the local collector.
type Handler struct {
	store     *store.Store
	collector *collector.Collector
	refresh   singleflight.Group
}

// NewHandler creates a handler backed by the given store and collector.
func NewHandler(s *store.Store, col *collector.Collector) *Handler {
	return &Handler{store: s, collector: col}
}

// RegisterRoutes mounts the snapshot API under /v1. The healthz probe is
// registered directly on the server mux so it bypasses the middleware chain
// and stays open to unauthenticated probes.
func RegisterRoutes(srv *kratoshttp.Server, h *Handler) {
	r := srv.Route("/v1")
	r.POST("/snapshots", h.submitSnapshot)
	r.GET("/snapshots", h.listSnapshots)
	r.GET("/snapshots/{id}", h.getSnapshot)
	r.DELETE("/snapshots/{id}", h.deleteSnapshot)
	r.GET("/hosts/{hostname}/latest", h.latestSnapshot)
	r.POST("/refresh", h.refreshSnapshot)
	r.POST("/parse", h.parseDocument)

	srv.HandleFunc("/healthz", handleHealthz)
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

type submitResponse struct {
	ID       int64     `json:"id"`
	StoredAt time.Time `json:"stored_at"`
}

type snapshotResponse struct {
	ID       int64         `json:"id"`
	Report   *model.Report `json:"report"`
	StoredAt time.Time     `json:"stored_at"`
}

type listResponse struct {
	Snapshots  []*convert.Summary `json:"snapshots"`
	TotalCount int                `json:"total_count"`
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

type refreshResponse struct {
	ID       int64     `json:"id"`
	Hostname string    `json:"hostname"`
	StoredAt time.Time `json:"stored_at"`
}

func (h *Handler) submitSnapshot(ctx kratoshttp.Context) error {
	var rep model.Report
	if err := ctx.Bind(&rep); err != nil {
		return err
	}

	out, err := ctx.Middleware(func(ctx context.Context, req any) (any, error) {
		return h.submit(ctx, req.(*model.Report))
	})(ctx, &rep)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

func (h *Handler) submit(ctx context.Context, rep *model.Report) (*submitResponse, error) {
	if rep.Hostname == "" {
		return nil, kerrors.BadRequest("MISSING_HOSTNAME", "hostname is required")
	}

	snap, err := convert.ReportToSnapshot(rep)
	if err != nil {
		return nil, kerrors.InternalServer("CONVERT_FAILED", err.Error())
	}

	id, storedAt, err := h.store.Insert(ctx, snap)
	if err != nil {
		return nil, kerrors.InternalServer("STORE_FAILED", err.Error())
	}

	log.Info().Int64("id", id).Str("hostname", rep.Hostname).Msg("snapshot stored")

	return &submitResponse{ID: id, StoredAt: storedAt}, nil
}

func (h *Handler) getSnapshot(ctx kratoshttp.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	out, err := ctx.Middleware(func(ctx context.Context, _ any) (any, error) {
		return h.get(ctx, id)
	})(ctx, nil)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

func (h *Handler) get(ctx context.Context, id int64) (*snapshotResponse, error) {
	snap, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kerrors.NotFound("SNAPSHOT_NOT_FOUND", fmt.Sprintf("snapshot %d not found", id))
		}
		return nil, kerrors.InternalServer("STORE_FAILED", err.Error())
	}

	rep, err := convert.SnapshotToReport(snap)
	if err != nil {
		return nil, kerrors.InternalServer("DECODE_FAILED", err.Error())
	}

	return &snapshotResponse{ID: snap.ID, Report: rep, StoredAt: snap.StoredAt}, nil
}

func (h *Handler) latestSnapshot(ctx kratoshttp.Context) error {
	hostname := ctx.Vars().Get("hostname")

	out, err := ctx.Middleware(func(ctx context.Context, _ any) (any, error) {
		return h.latest(ctx, hostname)
	})(ctx, nil)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

func (h *Handler) latest(ctx context.Context, hostname string) (*snapshotResponse, error) {
	if hostname == "" {
		return nil, kerrors.BadRequest("MISSING_HOSTNAME", "hostname is required")
	}

	snap, err := h.store.GetLatestByHostname(ctx, hostname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kerrors.NotFound("SNAPSHOT_NOT_FOUND", fmt.Sprintf("no snapshot for hostname %q", hostname))
		}
		return nil, kerrors.InternalServer("STORE_FAILED", err.Error())
	}

	rep, err := convert.SnapshotToReport(snap)
	if err != nil {
		return nil, kerrors.InternalServer("DECODE_FAILED", err.Error())
	}

	return &snapshotResponse{ID: snap.ID, Report: rep, StoredAt: snap.StoredAt}, nil
}

// listQuery carries the query-string filters of the list operation.
type listQuery struct {
	Hostname        string `form:"hostname"`
	Distro          string `form:"distro"`
	Kernel          string `form:"kernel"`
	CollectedAfter  string `form:"collected_after"`
	CollectedBefore string `form:"collected_before"`
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
}

func (q *listQuery) toFilter() (store.ListFilter, error) {
	filter := store.ListFilter{
		Hostname: q.Hostname,
		Distro:   q.Distro,
		Kernel:   q.Kernel,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.CollectedAfter != "" {
		t, err := time.Parse(time.RFC3339, q.CollectedAfter)
		if err != nil {
			return filter, kerrors.BadRequest("INVALID_TIME", "collected_after must be RFC 3339")
		}
		filter.CollectedAfter = &t
	}
	if q.CollectedBefore != "" {
		t, err := time.Parse(time.RFC3339, q.CollectedBefore)
		if err != nil {
			return filter, kerrors.BadRequest("INVALID_TIME", "collected_before must be RFC 3339")
		}
		filter.CollectedBefore = &t
	}
	return filter, nil
}

func (h *Handler) listSnapshots(ctx kratoshttp.Context) error {
	var q listQuery
	if err := ctx.BindQuery(&q); err != nil {
		return err
	}

	filter, err := q.toFilter()
	if err != nil {
		return err
	}

	out, err := ctx.Middleware(func(ctx context.Context, _ any) (any, error) {
		return h.list(ctx, filter)
	})(ctx, nil)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

func (h *Handler) list(ctx context.Context, filter store.ListFilter) (*listResponse, error) {
	snaps, total, err := h.store.List(ctx, filter)
	if err != nil {
		return nil, kerrors.InternalServer("STORE_FAILED", err.Error())
	}

	summaries := make([]*convert.Summary, len(snaps))
	for i := range snaps {
		summaries[i] = convert.SnapshotToSummary(&snaps[i])
	}

	return &listResponse{Snapshots: summaries, TotalCount: total}, nil
}

func (h *Handler) deleteSnapshot(ctx kratoshttp.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	out, err := ctx.Middleware(func(ctx context.Context, _ any) (any, error) {
		return h.delete(ctx, id)
	})(ctx, nil)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

func (h *Handler) delete(ctx context.Context, id int64) (*deleteResponse, error) {
	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kerrors.NotFound("SNAPSHOT_NOT_FOUND", fmt.Sprintf("snapshot %d not found", id))
		}
		return nil, kerrors.InternalServer("STORE_FAILED", err.Error())
	}
	return &deleteResponse{Deleted: true}, nil
}

func (h *Handler) refreshSnapshot(ctx kratoshttp.Context) error {
	out, err := ctx.Middleware(func(ctx context.Context, _ any) (any, error) {
		return h.doRefresh(ctx)
	})(ctx, nil)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

// doRefresh runs the local probe and stores the result. Concurrent refresh
// requests coalesce into a single probe run and share its outcome.
func (h *Handler) doRefresh(ctx context.Context) (any, error) {
	out, err, shared := h.refresh.Do("refresh", func() (any, error) {
		rep := h.collector.Collect(ctx)

		snap, err := convert.ReportToSnapshot(rep)
		if err != nil {
			return nil, kerrors.InternalServer("CONVERT_FAILED", err.Error())
		}

		id, storedAt, err := h.store.Insert(ctx, snap)
		if err != nil {
			return nil, kerrors.InternalServer("STORE_FAILED", err.Error())
		}

		log.Info().Int64("id", id).Str("hostname", rep.Hostname).Msg("refresh snapshot stored")

		return &refreshResponse{ID: id, Hostname: rep.Hostname, StoredAt: storedAt}, nil
	})
	if shared {
		log.Debug().Msg("refresh coalesced with in-flight probe")
	}
	return out, err
}

// parseDocument normalizes a posted raw probe document without running
// anything on the host or storing the result.
func (h *Handler) parseDocument(ctx kratoshttp.Context) error {
	raw, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return kerrors.BadRequest("READ_BODY", err.Error())
	}

	out, err := ctx.Middleware(func(_ context.Context, _ any) (any, error) {
		hw, err := h.collector.Parse(raw)
		if err != nil {
			return nil, kerrors.BadRequest("INVALID_DOCUMENT", err.Error())
		}
		return hw, nil
	})(ctx, nil)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

func pathID(ctx kratoshttp.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Vars().Get("id"), 10, 64)
	if err != nil {
		return 0, kerrors.BadRequest("INVALID_ID", "id must be an integer")
	}
	return id, nil
}
