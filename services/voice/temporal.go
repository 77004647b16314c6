package voice

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthNames maps spoken month tokens (full names and 3-letter abbreviations)
// to their calendar month. Full names are scanned first so "march" is not
// shadowed by "mar".
var monthNames = []struct {
	token string
	month time.Month
}{
	{"january", time.January}, {"february", time.February}, {"march", time.March},
	{"april", time.April}, {"may", time.May}, {"june", time.June},
	{"july", time.July}, {"august", time.August}, {"september", time.September},
	{"october", time.October}, {"november", time.November}, {"december", time.December},
	{"jan", time.January}, {"feb", time.February}, {"mar", time.March},
	{"apr", time.April}, {"jun", time.June}, {"jul", time.July},
	{"aug", time.August}, {"sep", time.September}, {"oct", time.October},
	{"nov", time.November}, {"dec", time.December},
}

var clockRe = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)

// baseDate resolves the day an utterance refers to, at midnight local time.
//
// An explicit month mention wins: the first bare number after the month token
// becomes the day-of-month (defaulting to the 1st), and the year is bumped by
// one when the resulting date is already past, preferring the next occurrence.
// Without a month the baseline is today, or tomorrow when the word appears.
func baseDate(norm string, now time.Time) time.Time {
	if month, day, ok := findMonthDay(norm); ok {
		d := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
		if d.Before(startOfDay(now)) {
			d = d.AddDate(1, 0, 0)
		}
		return d
	}

	d := startOfDay(now)
	if strings.Contains(norm, "tomorrow") {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func findMonthDay(norm string) (time.Month, int, bool) {
	toks := strings.Fields(norm)
	for i, tok := range toks {
		for _, m := range monthNames {
			if tok != m.token {
				continue
			}
			day := 1
			for _, rest := range toks[i+1:] {
				if n, err := strconv.Atoi(rest); err == nil && n >= 1 && n <= 31 {
					day = n
					break
				}
			}
			return m.month, day, true
		}
	}
	return 0, 0, false
}

// resolveInstant resolves the full start instant of an utterance: the base
// date plus any H[:MM] am/pm clock time. Without a clock match the base
// date's midnight stands. Returns epoch milliseconds.
func resolveInstant(norm string, now time.Time) int64 {
	d := baseDate(norm, now)

	if m := clockRe.FindStringSubmatch(norm); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch m[3] {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		d = time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
	}

	return d.UnixMilli()
}

// resolveDayRange resolves the [00:00:00, 23:59:59] span of the utterance's
// day, in epoch milliseconds.
func resolveDayRange(norm string, now time.Time) (int64, int64) {
	d := baseDate(norm, now)
	end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
	return d.UnixMilli(), end.UnixMilli()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// formatClock renders an epoch-millisecond instant as zero-padded 24-hour HH:mm.
func formatClock(ms int64) string {
	return time.UnixMilli(ms).Format("15:04")
}
