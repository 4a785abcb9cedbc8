package ledger

import "time"

// FiscalPeriod returns the financial month [start, end) containing t, where a
// month starts on fiscalDayStart. Months shorter than fiscalDayStart start on
// their last day instead.
func FiscalPeriod(fiscalDayStart int, t time.Time) (time.Time, time.Time) {
	if fiscalDayStart < MinDayOfMonth {
		fiscalDayStart = MinDayOfMonth
	}
	if fiscalDayStart > MaxDayOfMonth {
		fiscalDayStart = MaxDayOfMonth
	}

	start := periodStart(t.Year(), t.Month(), fiscalDayStart, t.Location())
	if t.Before(start) {
		start = periodStart(t.Year(), t.Month()-1, fiscalDayStart, t.Location())
	}
	end := periodStart(start.Year(), start.Month()+1, fiscalDayStart, t.Location())
	return start, end
}

func periodStart(year int, month time.Month, day int, loc *time.Location) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, loc)
}
