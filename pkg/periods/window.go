package periods

import "time"

// Window returns the half-open UTC time range [start, end) a period
// type covers relative to a reference time. Annual, quarterly and
// monthly windows align to the calendar boundary containing ref; ttm
// and ytd windows end at ref itself.
func Window(p PeriodType, ref time.Time) (start, end time.Time) {
	ref = ref.UTC()
	switch p {
	case Annual:
		start = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(1, 0, 0)
	case Quarterly:
		quarterStart := time.Month((int(ref.Month())-1)/3*3 + 1)
		start = time.Date(ref.Year(), quarterStart, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 3, 0)
	case Monthly:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, 0)
	case TTM:
		end = ref
		start = ref.AddDate(-1, 0, 0)
	case YTD:
		start = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = ref
	default:
		start = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(1, 0, 0)
	}
	return start, end
}
