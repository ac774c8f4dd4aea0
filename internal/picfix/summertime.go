package picfix

import "time"

// SummerTimeEU reports whether European summer time is in effect at the
// given standard-time hour. tzHours is the zone offset of the input:
// 0 for UTC, 1 for CET. Summer time runs from 01:00 UTC on the last Sunday
// of March to 01:00 UTC on the last Sunday of October.
func SummerTimeEU(year, month, day, hour, tzHours int) bool {
	if month < 3 || month > 10 {
		return false
	}
	if month > 3 && month < 10 {
		return true
	}
	hours := hour + 24*day
	if month == 3 {
		return hours >= 1+tzHours+24*(31-(5*year/4+4)%7)
	}
	return hours < 1+tzHours+24*(31-(5*year/4+1)%7)
}

// FromCentralEurope converts a camera clock reading taken in Germany to
// UTC. Only the wall-clock fields of wall are used. The camera is assumed
// to follow local time, so one hour is removed in winter and two in
// summer.
func FromCentralEurope(wall time.Time) time.Time {
	y, mo, d := wall.Date()
	h, mi, s := wall.Clock()
	t := time.Date(y, mo, d, h, mi, s, 0, time.UTC).Add(-time.Hour)

	if SummerTimeEU(t.Year(), int(t.Month()), t.Day(), t.Hour(), 0) {
		t = t.Add(-time.Hour)
	}
	return t
}
