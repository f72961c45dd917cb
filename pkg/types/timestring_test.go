package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 1, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:30"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("14:60")
	assert.Error(t, err)

	// Час без ведущего нуля нормализуется
	ts, err = NewTimeStringFromString("9:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)
}

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"00:00", false},
		{"09:30", false},
		{"23:59", false},
		{"24:00", true},
		{"12:5", true},
		{"ab:cd", true},
		{"", true},
	}

	for _, tt := range tests {
		err := TimeString(tt.value).Validate()
		if tt.wantErr {
			assert.Error(t, err, "value %q", tt.value)
		} else {
			assert.NoError(t, err, "value %q", tt.value)
		}
	}
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("01:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)

	minutes, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), result)

	// Конец суток выражается как 24:00
	result, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), result)

	// Переход через полночь недопустим
	_, err = TimeString("23:30").AddMinutes(31)
	assert.Error(t, err)

	result, err = TimeString("09:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), result)

	// Сдвиг раньше начала суток недопустим
	_, err = TimeString("00:10").AddMinutes(-20)
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("10:30").IsAfter(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsAfter(TimeString("10:00")))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("15:45"))
	assert.Equal(t, TimeString("15:45"), ts)

	require.NoError(t, ts.Scan([]byte("08:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 1, 11, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:15"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
