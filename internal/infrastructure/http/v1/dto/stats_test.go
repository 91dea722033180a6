package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsQuery_ToFilter(t *testing.T) {
	t.Run("no window", func(t *testing.T) {
		filter, err := StatsQuery{}.ToFilter()
		require.NoError(t, err)
		assert.True(t, filter.IsZero())
	})

	t.Run("both dates", func(t *testing.T) {
		filter, err := StatsQuery{StartDate: "2025-03-01", EndDate: "2025-03-31"}.ToFilter()
		require.NoError(t, err)

		require.NotNil(t, filter.From)
		require.NotNil(t, filter.To)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *filter.From)
		// Inclusive end date becomes an exclusive next-day bound
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *filter.To)
	})

	t.Run("single day window", func(t *testing.T) {
		filter, err := StatsQuery{StartDate: "2025-03-15", EndDate: "2025-03-15"}.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), *filter.To)
	})

	t.Run("only start date", func(t *testing.T) {
		_, err := StatsQuery{StartDate: "2025-03-01"}.ToFilter()
		assert.Error(t, err)
	})

	t.Run("only end date", func(t *testing.T) {
		_, err := StatsQuery{EndDate: "2025-03-31"}.ToFilter()
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := StatsQuery{StartDate: "01/03/2025", EndDate: "2025-03-31"}.ToFilter()
		assert.Error(t, err)
	})
}

func TestBatchMovementRequest_ToLines(t *testing.T) {
	req := BatchMovementRequest{Lines: []MovementLineRequest{
		{ArticleID: "0195c2f0-0000-7000-8000-000000000001", Quantity: 3},
	}}

	lines, err := req.ToLines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(3), lines[0].Quantity)

	req.Lines = append(req.Lines, MovementLineRequest{ArticleID: "not-a-uuid", Quantity: 1})
	_, err = req.ToLines()
	assert.Error(t, err)
}
