package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWindows(t *testing.T) {
	t.Run("should partition a month starting mid-week", func(t *testing.T) {
		// given March 2024 starts on a Friday

		// when
		windows, err := MonthWindows("2024-03")

		// then
		require.NoError(t, err)
		require.Len(t, windows, 6)
		assert.Equal(t, "2024-02-25", windows[0].StartDate.Format(dateLayout))
		assert.Equal(t, "2024-03-02", windows[0].EndDate.Format(dateLayout))
		assert.Equal(t, "2024-03-31", windows[5].StartDate.Format(dateLayout))
		assert.Equal(t, "2024-04-06", windows[5].EndDate.Format(dateLayout))
	})

	t.Run("should start on the 1st when the month begins on a Sunday", func(t *testing.T) {
		// given September 2024 starts on a Sunday

		// when
		windows, err := MonthWindows("2024-09")

		// then
		require.NoError(t, err)
		require.Len(t, windows, 5)
		assert.Equal(t, "2024-09-01", windows[0].StartDate.Format(dateLayout))
		assert.Equal(t, "2024-09-29", windows[4].StartDate.Format(dateLayout))
	})

	t.Run("should spill into January for a December month", func(t *testing.T) {
		// when
		windows, err := MonthWindows("2024-12")

		// then
		require.NoError(t, err)
		require.Len(t, windows, 5)
		assert.Equal(t, "2024-12-01", windows[0].StartDate.Format(dateLayout))
		assert.Equal(t, "2025-01-04", windows[4].EndDate.Format(dateLayout))
	})

	t.Run("should produce contiguous 7-day windows covering every day of the month", func(t *testing.T) {
		// given
		months := []string{"2024-02", "2024-03", "2024-12", "2025-01", "2025-06"}

		for _, month := range months {
			// when
			windows, err := MonthWindows(month)

			// then
			require.NoError(t, err)
			require.NotEmpty(t, windows)

			first, _ := time.Parse(monthLayout, month)
			monthEnd := first.AddDate(0, 1, 0).AddDate(0, 0, -1)

			assert.Equal(t, time.Sunday, windows[0].StartDate.Weekday(), month)
			assert.False(t, windows[0].StartDate.After(first), month)
			assert.False(t, windows[len(windows)-1].EndDate.Before(monthEnd), month)

			for i, window := range windows {
				assert.Equal(t, i+1, window.Index, month)
				assert.Equal(t, window.StartDate.AddDate(0, 0, 6), window.EndDate, month)
				if i > 0 {
					assert.Equal(t, windows[i-1].EndDate.AddDate(0, 0, 1), window.StartDate, month)
				}
			}
		}
	})

	t.Run("should reject a malformed month", func(t *testing.T) {
		// when
		_, err := MonthWindows("March 2024")

		// then
		assert.Error(t, err)
	})
}
