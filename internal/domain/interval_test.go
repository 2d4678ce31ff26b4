package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeInterval(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		interval, err := NewTimeInterval(base, base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, interval.Start)
		assert.Equal(t, base.Add(2*time.Hour), interval.End)
	})

	t.Run("zero length", func(t *testing.T) {
		_, err := NewTimeInterval(base, base)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("inverted", func(t *testing.T) {
		_, err := NewTimeInterval(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestTimeInterval_Overlaps(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	at := func(h float64) time.Time {
		return base.Add(time.Duration(h * float64(time.Hour)))
	}
	interval := func(from, to float64) TimeInterval {
		return TimeInterval{Start: at(from), End: at(to)}
	}

	tests := []struct {
		name string
		a    TimeInterval
		b    TimeInterval
		want bool
	}{
		{"identical", interval(0, 2), interval(0, 2), true},
		{"contained", interval(0, 4), interval(1, 2), true},
		{"contains", interval(1, 2), interval(0, 4), true},
		{"partial overlap right", interval(0, 3), interval(2, 5), true},
		{"partial overlap left", interval(2, 5), interval(0, 3), true},
		{"shared start", interval(0, 2), interval(0, 1), true},
		{"shared end", interval(0, 2), interval(1, 2), true},
		{"back to back", interval(0, 2), interval(2, 4), false},
		{"back to back reversed", interval(2, 4), interval(0, 2), false},
		{"disjoint", interval(0, 1), interval(3, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeInterval_Overlaps_Idempotent(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	a := TimeInterval{Start: base, End: base.Add(3 * time.Hour)}
	b := TimeInterval{Start: base.Add(2 * time.Hour), End: base.Add(5 * time.Hour)}

	first := a.Overlaps(b)
	second := a.Overlaps(b)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestTimeInterval_Hours(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	full := TimeInterval{Start: base, End: base.Add(4 * time.Hour)}
	assert.Equal(t, 4.0, full.Hours())

	fractional := TimeInterval{Start: base, End: base.Add(90 * time.Minute)}
	assert.Equal(t, 1.5, fractional.Hours())
}
