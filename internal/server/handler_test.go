package server

import (
	"testing"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQueryToFilter(t *testing.T) {
	t.Run("test filters carried over", func(t *testing.T) {
		q := &listQuery{
			Hostname:       "arch-box",
			Distro:         "Arch Linux",
			CollectedAfter: "2025-03-14T09:00:00Z",
			Page:           2,
			PageSize:       10,
		}

		filter, err := q.toFilter()
		require.NoError(t, err)
		assert.Equal(t, "arch-box", filter.Hostname)
		assert.Equal(t, "Arch Linux", filter.Distro)
		require.NotNil(t, filter.CollectedAfter)
		assert.Equal(t, 2025, filter.CollectedAfter.Year())
		assert.Nil(t, filter.CollectedBefore)
		assert.Equal(t, 2, filter.Page)
		assert.Equal(t, 10, filter.PageSize)
	})

	t.Run("test empty query", func(t *testing.T) {
		filter, err := (&listQuery{}).toFilter()
		require.NoError(t, err)
		assert.Nil(t, filter.CollectedAfter)
		assert.Nil(t, filter.CollectedBefore)
	})

	t.Run("test bad time rejected", func(t *testing.T) {
		_, err := (&listQuery{CollectedBefore: "yesterday"}).toFilter()
		require.Error(t, err)
		assert.True(t, kerrors.IsBadRequest(err))
	})
}
