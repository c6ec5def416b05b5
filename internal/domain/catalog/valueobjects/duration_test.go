package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDuration(t *testing.T) {
	d, err := NewDuration(3, UnitMonths)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Value())
	assert.Equal(t, UnitMonths, d.Unit())
	assert.Equal(t, "3 months", d.String())
}

func TestNewDuration_Invalid(t *testing.T) {
	_, err := NewDuration(0, UnitDays)
	assert.Error(t, err)

	_, err = NewDuration(-5, UnitDays)
	assert.Error(t, err)

	_, err = NewDuration(1, DurationUnit("weeks"))
	assert.Error(t, err)
}

func TestNewDurationUnit(t *testing.T) {
	for _, s := range []string{"minutes", "days", "months", "years"} {
		u, err := NewDurationUnit(s)
		require.NoError(t, err)
		assert.Equal(t, s, u.String())
	}

	_, err := NewDurationUnit("fortnights")
	assert.Error(t, err)
}

func TestDuration_AddTo(t *testing.T) {
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		value int
		unit  DurationUnit
		want  time.Time
	}{
		{"minutes", 30, UnitMinutes, base.Add(30 * time.Minute)},
		{"days", 7, UnitDays, time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC)},
		{"months", 1, UnitMonths, time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)},
		{"years", 2, UnitYears, time.Date(2027, 6, 15, 10, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDuration(tc.value, tc.unit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.AddTo(base))
		})
	}
}

func TestDuration_AddTo_CalendarMonths(t *testing.T) {
	// Jan 31 + 1 month lands in March via Go's normalized calendar
	// arithmetic, never on Feb 28.
	base := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	d, err := NewDuration(1, UnitMonths)
	require.NoError(t, err)

	got := d.AddTo(base)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), got)
}
