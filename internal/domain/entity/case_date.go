package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CaseDate is the calendar date of a case, parsed once at ingestion.
// When the source text cannot be parsed the original string is kept in Raw
// and the numeric components stay zero; downstream consumers treat such a
// value as unclassifiable rather than failing.
//
// The month component is intentionally not range-checked at parse time: a
// source token like "13" survives into the record and is routed to the
// "Unknown Date" bucket by the exporter, matching how out-of-range months
// have always been handled.
type CaseDate struct {
	Day    int
	Month  int
	Year   int
	Raw    string
	Parsed bool
}

// ParseSourceDate reads a source dataset date in "M/D/YYYY" order
// (slash-separated, no guaranteed zero-padding). Anything that does not
// split into exactly 3 integer tokens keeps the original text in Raw.
func ParseSourceDate(s string) CaseDate {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return CaseDate{Raw: s}
	}
	month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	day, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return CaseDate{Raw: s}
	}
	return CaseDate{Day: day, Month: month, Year: year, Parsed: true}
}

// ParseISODate reads a "YYYY-MM-DD" date, as submitted by form layers.
func ParseISODate(s string) CaseDate {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return CaseDate{Raw: s}
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return CaseDate{Raw: s}
	}
	return CaseDate{Day: day, Month: month, Year: year, Parsed: true}
}

// ParseDisplayDate reads the "DD MM YYYY" display form back into a CaseDate.
func ParseDisplayDate(s string) CaseDate {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return CaseDate{Raw: s}
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return CaseDate{Raw: s}
	}
	return CaseDate{Day: day, Month: month, Year: year, Parsed: true}
}

// Display renders the date in the "DD MM YYYY" report form, or the original
// unparsed text when parsing failed.
func (d CaseDate) Display() string {
	if !d.Parsed {
		return d.Raw
	}
	return fmt.Sprintf("%02d %02d %d", d.Day, d.Month, d.Year)
}

// ISO renders the date as "YYYY-MM-DD" for exact-match filtering. An
// unparsed date renders empty, so date-filtered results exclude it.
func (d CaseDate) ISO() string {
	if !d.Parsed {
		return ""
	}
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MonthKey returns the calendar month and year used for export bucketing.
// ok is false for unparsed dates and for month tokens outside 1..12.
func (d CaseDate) MonthKey() (month time.Month, year int, ok bool) {
	if !d.Parsed || d.Month < 1 || d.Month > 12 {
		return 0, 0, false
	}
	return time.Month(d.Month), d.Year, true
}

// MarshalJSON emits the display form so API payloads carry the same date
// strings the report table shows.
func (d CaseDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Display())
}

// UnmarshalJSON accepts the display form produced by MarshalJSON.
func (d *CaseDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = ParseDisplayDate(s)
	return nil
}
