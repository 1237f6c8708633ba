// Package timefmt renders message timestamps for list rows.
package timefmt

import "time"

// Time formats a unix-millisecond timestamp as zero-padded 24-hour "HH:MM"
// in the local timezone.
func Time(ts int64) string {
	return at(ts).Format("15:04")
}

// Date formats a unix-millisecond timestamp as "YYYY-MM-DD" in the local
// timezone.
func Date(ts int64) string {
	return at(ts).Format("2006-01-02")
}

// DateTime combines Date and Time: "YYYY-MM-DD HH:MM".
func DateTime(ts int64) string {
	return Date(ts) + " " + Time(ts)
}

func at(ts int64) time.Time {
	return time.UnixMilli(ts).Local()
}
