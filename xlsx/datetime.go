package xlsx

import (
	"math"
	"strings"
	"time"
)

var (
	epoch1900 = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	epoch1904 = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// serialToTime converts a spreadsheet serial date to a time. In the 1900
// system serials below 61 are shifted by one day to undo the fictitious
// 1900-02-29; serials below 1 carry only a time of day.
func serialToTime(serial float64, date1904 bool) time.Time {
	days := math.Floor(serial)
	secs := math.Round((serial - days) * 86400)
	if secs >= 86400 {
		days++
		secs -= 86400
	}

	base := epoch1900
	switch {
	case date1904 && serial >= 1:
		base = epoch1904
	case !date1904 && serial >= 1 && serial < 61:
		days++
	}
	return base.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second)
}

// isBuiltinDateFormat reports whether a built-in number format id displays a
// date or time.
func isBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code displays a date or
// time. Quoted literals, escaped characters and bracketed sections (colors,
// locales, conditions) are ignored; elapsed-time brackets like [h] count.
func isDateFormatCode(code string) bool {
	// Only the positive section decides.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	lower := strings.ToLower(code)
	for i := 0; i < len(lower); i++ {
		switch c := lower[i]; c {
		case '"':
			j := strings.IndexByte(lower[i+1:], '"')
			if j < 0 {
				return false
			}
			i += j + 1
		case '\\', '_', '*':
			i++
		case '[':
			j := strings.IndexByte(lower[i+1:], ']')
			if j < 0 {
				return false
			}
			inner := lower[i+1 : i+1+j]
			if strings.Trim(inner, "hms") == "" && inner != "" {
				return true
			}
			i += j + 1
		case 'd', 'm', 'y', 'h', 's':
			return true
		}
	}
	return false
}
