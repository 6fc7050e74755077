package utils

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ReportDateLayout is the date format the back office expects in begin/end
// date parameters.
const ReportDateLayout = "02.01.2006"

var (
	moscowOnce sync.Once
	moscow     *time.Location
)

// Moscow returns the back-office timezone. All report timestamps are local
// to it.
func Moscow() *time.Location {
	moscowOnce.Do(func() {
		loc, err := time.LoadLocation("Europe/Moscow")
		if err != nil {
			loc = time.FixedZone("MSK", 3*60*60)
		}
		moscow = loc
	})
	return moscow
}

// FormatReportDate renders a date as DD.MM.YYYY.
func FormatReportDate(t time.Time) string {
	return t.In(Moscow()).Format(ReportDateLayout)
}

// ParseReportTime parses the timestamp flavours the back office emits:
// "DD.MM.YYYY HH:MM:SS", "DD.MM.YYYY HH:MM" (both Moscow-local) and ISO
// strings carrying an explicit offset.
func ParseReportTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	if strings.Contains(value, "+") {
		return time.Parse(time.RFC3339, value)
	}

	switch strings.Count(value, ":") {
	case 2:
		return time.ParseInLocation("02.01.2006 15:04:05", value, Moscow())
	case 1:
		return time.ParseInLocation("02.01.2006 15:04", value, Moscow())
	}

	return time.Time{}, errors.Errorf("unsupported timestamp format: %q", value)
}
