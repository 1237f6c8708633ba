package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ms(t time.Time) int64 {
	return t.UnixMilli()
}

func TestTimeZeroPadsHourAndMinute(t *testing.T) {
	ts := ms(time.Date(2026, 3, 5, 7, 9, 30, 0, time.Local))
	require.Equal(t, "07:09", Time(ts))
}

func TestTimeTwoDigit(t *testing.T) {
	ts := ms(time.Date(2026, 11, 23, 18, 45, 0, 0, time.Local))
	require.Equal(t, "18:45", Time(ts))
}

func TestDateZeroPadsMonthAndDay(t *testing.T) {
	ts := ms(time.Date(2026, 3, 5, 7, 9, 0, 0, time.Local))
	require.Equal(t, "2026-03-05", Date(ts))
}

func TestDateTwoDigit(t *testing.T) {
	ts := ms(time.Date(2026, 11, 23, 18, 45, 0, 0, time.Local))
	require.Equal(t, "2026-11-23", Date(ts))
}

func TestDateTimeCombines(t *testing.T) {
	ts := ms(time.Date(2026, 1, 2, 3, 4, 0, 0, time.Local))
	require.Equal(t, "2026-01-02 03:04", DateTime(ts))
}
