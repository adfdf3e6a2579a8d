// Package calendar implements the proleptic-Gregorian civil calendar
// arithmetic the vesting schedule is built on: epoch-second conversion,
// day-clamped month-boundary computation, and month-index lookup.
//
// Conversions follow Howard Hinnant's days_from_civil / civil_from_days
// algorithms (era = 400-year cycle = 146097 days, epoch offset 719468
// days for 1970-01-01). All arithmetic is UTC; there is no timezone or
// DST handling anywhere in this package.
package calendar

import "fmt"

// DateTime is a civil (year, month, day, second-of-day) instant.
type DateTime struct {
	Year     int64
	Month    int
	Day      int
	SecOfDay int
}

func isLeap(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysInMonth returns the number of days in the given civil month.
func DaysInMonth(y int64, m int) int {
	switch m {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(y) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// DaysFromCivil converts a civil date to a day count relative to
// 1970-01-01 (Hinnant's days_from_civil).
func DaysFromCivil(y int64, m, d int) int64 {
	if m <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400 // [0, 399]
	var mAdj int64
	if m > 2 {
		mAdj = int64(m) - 3
	} else {
		mAdj = int64(m) + 9
	}
	doy := (153*mAdj+2)/5 + int64(d) - 1           // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy          // [0, 146096]
	return era*146097 + doe - 719468
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(z int64) (y int64, m, d int) {
	z += 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097                                     // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365     // [0, 399]
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	d = int(doy-(153*mp+2)/5) + 1             // [1, 31]
	if mp < 10 {
		m = int(mp) + 3
	} else {
		m = int(mp) - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

// UnixFromDateTime converts a civil DateTime to an epoch second. It
// rejects a second-of-day that does not address a valid instant within
// the day.
func UnixFromDateTime(dt DateTime) (int64, error) {
	if dt.SecOfDay < 0 || dt.SecOfDay >= 86400 {
		return 0, fmt.Errorf("calendar: invalid second-of-day %d", dt.SecOfDay)
	}
	days := DaysFromCivil(dt.Year, dt.Month, dt.Day)
	return days*86400 + int64(dt.SecOfDay), nil
}

// DateTimeFromUnix converts an epoch second to a civil DateTime. It
// rejects negative timestamps.
func DateTimeFromUnix(ts int64) (DateTime, error) {
	if ts < 0 {
		return DateTime{}, fmt.Errorf("calendar: negative timestamp %d", ts)
	}
	days := floorDiv(ts, 86400)
	sod := floorMod(ts, 86400)
	y, m, d := CivilFromDays(days)
	return DateTime{Year: y, Month: m, Day: d, SecOfDay: int(sod)}, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// AddMonths advances (y, m) by k months in the integer month-count
// domain using Euclidean division, so it is correct for any positive
// or negative k without overflow risk on any 12-month horizon.
func AddMonths(y int64, m int, k int64) (int64, int) {
	total := y*12 + int64(m-1) + k
	y2 := floorDiv(total, 12)
	m2 := int(floorMod(total, 12)) + 1
	return y2, m2
}

// Boundary computes the k-th monthly boundary (k in [0,12]) of a
// vesting schedule starting at S: the target month's (year, month) is
// S shifted by k months, and the day is S.Day clamped to the last day
// of that target month. The clamp never propagates — every boundary
// is computed from the original S.Day, so the schedule exhibits no
// long-term drift.
func Boundary(s DateTime, k int) (int64, error) {
	y2, m2 := AddMonths(s.Year, s.Month, int64(k))
	day := s.Day
	if last := DaysInMonth(y2, m2); day > last {
		day = last
	}
	return UnixFromDateTime(DateTime{Year: y2, Month: m2, Day: day, SecOfDay: s.SecOfDay})
}

// MonthIndex returns clamp(1+k, 1, 12) where k is the largest value in
// [0,12] such that now >= Boundary(start, k). Comparisons are
// inclusive at boundaries: a timestamp equal to Boundary(S, k)
// observes month index k+1. It is a domain error to ask for the month
// index before the schedule has started.
func MonthIndex(now, start int64) (int, error) {
	if now < start {
		return 0, fmt.Errorf("calendar: now (%d) precedes start (%d)", now, start)
	}
	s, err := DateTimeFromUnix(start)
	if err != nil {
		return 0, err
	}
	k := 0
	for i := 0; i <= 12; i++ {
		b, err := Boundary(s, i)
		if err != nil {
			return 0, err
		}
		if now >= b {
			k = i
			continue
		}
		break
	}
	idx := 1 + k
	if idx > 12 {
		idx = 12
	}
	return idx, nil
}

// IsAfterVestingEnd reports whether now is at or past the 12th
// boundary of a schedule starting at start. It returns false for any
// now before start.
func IsAfterVestingEnd(now, start int64) bool {
	if now < start {
		return false
	}
	s, err := DateTimeFromUnix(start)
	if err != nil {
		return false
	}
	b12, err := Boundary(s, 12)
	if err != nil {
		return false
	}
	return now >= b12
}
