package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "hwinfo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func insertAt(t *testing.T, s *Store, hostname, distro string, collectedAt time.Time) int64 {
	t.Helper()
	id, _, err := s.Insert(context.Background(), &Snapshot{
		Hostname:    hostname,
		Distro:      distro,
		Kernel:      "6.8.4-arch1-1",
		CollectedAt: collectedAt,
		ReportJSON:  `{"hostname":"` + hostname + `"}`,
	})
	require.NoError(t, err)
	return id
}

func TestInsertAndGet(t *testing.T) {
	s := newTestStore(t)
	collected := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	id, storedAt, err := s.Insert(context.Background(), &Snapshot{
		Hostname:    "arch-box",
		Distro:      "Arch Linux",
		Kernel:      "6.8.4-arch1-1",
		CollectedAt: collected,
		ReportJSON:  `{"hostname":"arch-box"}`,
	})
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.False(t, storedAt.IsZero())

	snap, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "arch-box", snap.Hostname)
	assert.Equal(t, "Arch Linux", snap.Distro)
	assert.Equal(t, "6.8.4-arch1-1", snap.Kernel)
	assert.True(t, snap.CollectedAt.Equal(collected))
	assert.Equal(t, `{"hostname":"arch-box"}`, snap.ReportJSON)
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGetLatestByHostname(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	insertAt(t, s, "arch-box", "Arch Linux", base)
	newest := insertAt(t, s, "arch-box", "Arch Linux", base.Add(2*time.Hour))
	insertAt(t, s, "other-box", "Manjaro Linux", base.Add(3*time.Hour))

	snap, err := s.GetLatestByHostname(context.Background(), "arch-box")
	require.NoError(t, err)
	assert.Equal(t, newest, snap.ID)

	_, err = s.GetLatestByHostname(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	id := insertAt(t, s, "arch-box", "Arch Linux", time.Now().UTC())

	require.NoError(t, s.Delete(context.Background(), id))

	_, err := s.Get(context.Background(), id)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.ErrorIs(t, s.Delete(context.Background(), id), sql.ErrNoRows)
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		insertAt(t, s, "arch-box", "Arch Linux", base.Add(time.Duration(i)*time.Hour))
	}
	insertAt(t, s, "other-box", "Manjaro Linux", base.Add(30*time.Minute))

	t.Run("test hostname filter and ordering", func(t *testing.T) {
		snaps, total, err := s.List(context.Background(), ListFilter{Hostname: "arch-box"})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, snaps, 3)
		assert.True(t, snaps[0].CollectedAt.After(snaps[1].CollectedAt))
		assert.Empty(t, snaps[0].ReportJSON)
	})

	t.Run("test distro filter", func(t *testing.T) {
		snaps, total, err := s.List(context.Background(), ListFilter{Distro: "Manjaro Linux"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, snaps, 1)
		assert.Equal(t, "other-box", snaps[0].Hostname)
	})

	t.Run("test pagination keeps total", func(t *testing.T) {
		snaps, total, err := s.List(context.Background(), ListFilter{PageSize: 3, Page: 1})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, snaps, 3)

		snaps, total, err = s.List(context.Background(), ListFilter{PageSize: 3, Page: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, snaps, 1)
	})

	t.Run("test collected range filter", func(t *testing.T) {
		after := base.Add(90 * time.Minute)
		snaps, total, err := s.List(context.Background(), ListFilter{CollectedAfter: &after})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, snaps, 1)
		assert.Equal(t, "arch-box", snaps[0].Hostname)
	})

	t.Run("test no match", func(t *testing.T) {
		snaps, total, err := s.List(context.Background(), ListFilter{Hostname: "nope"})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, snaps)
	})
}

func TestPurge(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()

	insertAt(t, s, "arch-box", "Arch Linux", now.Add(-10*24*time.Hour))
	kept := insertAt(t, s, "arch-box", "Arch Linux", now.Add(-time.Hour))

	n, err := s.Purge(context.Background(), 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.Get(context.Background(), kept)
	assert.NoError(t, err)
}
