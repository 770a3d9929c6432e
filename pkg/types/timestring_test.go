package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	assert.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"9:30", "1:05", "25:00", "09:61", "0930", "09:30:00", "morning", ""} {
		_, err := NewTimeStringFromString(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 9, 5, 42, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestTimeString_Comparison(t *testing.T) {
	morning := TimeString("09:00")
	noon := TimeString("12:00")

	assert.True(t, morning.IsBefore(noon))
	assert.False(t, noon.IsBefore(morning))
	assert.True(t, noon.IsAfter(morning))
	assert.False(t, morning.IsBefore(morning))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	shifted, err := ts.AddMinutes(90)
	assert.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), shifted)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("postgres TIME format drops seconds", func(t *testing.T) {
		var ts TimeString
		assert.NoError(t, ts.Scan("09:30:00"))
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		assert.NoError(t, ts.Scan([]byte("14:15")))
		assert.Equal(t, TimeString("14:15"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		assert.NoError(t, ts.Scan(time.Date(2025, 10, 15, 17, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("17:45"), ts)
	})

	t.Run("nil clears", func(t *testing.T) {
		ts := TimeString("09:00")
		assert.NoError(t, ts.Scan(nil))
		assert.Equal(t, TimeString(""), ts)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}
