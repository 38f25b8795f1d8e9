package normalize

import "encoding/json"

// Counts is the dashboard counters payload with every number defaulted and
// clamped non-negative.
type Counts struct {
	TotalUsers  int
	BannedUsers int
	TotalPets   int
	BannedPets  int
	NewUsers    *SeriesBundle
	ActiveUsers *SeriesBundle
}

// SeriesBundle holds one metric's period buckets: a same-day scalar, a true
// weekly series, and four pre-aggregated single scalars.
type SeriesBundle struct {
	Today      int
	Week       []WeekPoint
	Month      int
	ThreeMonth int
	SixMonth   int
	Year       int
}

type WeekPoint struct {
	Date  string
	Count int
}

// DashboardCounts normalizes the counters payload. Missing fields become 0;
// the optional newUser/activeUser bundles are nil when absent.
func DashboardCounts(payload json.RawMessage) Counts {
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return Counts{}
	}

	counts := Counts{
		TotalUsers:  nonNegative(decoded["totalUser"]),
		BannedUsers: nonNegative(decoded["totalBanUsers"]),
		TotalPets:   nonNegative(decoded["totalPets"]),
		BannedPets:  nonNegative(decoded["totalBanPets"]),
	}

	if raw, ok := decoded["newUser"].(map[string]any); ok {
		counts.NewUsers = seriesBundle(raw, "todayUsers", "lastWeekUser", "lastMonthUsers", "last3MonthUsers", "last6MonthUsers", "last1YearUsers")
	}
	if raw, ok := decoded["activeUser"].(map[string]any); ok {
		counts.ActiveUsers = seriesBundle(raw, "todayActive", "weeklyActive", "lastMonthActive", "last3MonthActive", "last6MonthActive", "last1YearActive")
	}

	return counts
}

func seriesBundle(raw map[string]any, todayKey, weekKey, monthKey, threeMonthKey, sixMonthKey, yearKey string) *SeriesBundle {
	bundle := &SeriesBundle{
		Today:      nonNegative(raw[todayKey]),
		Week:       weekPoints(raw[weekKey]),
		Month:      nonNegative(raw[monthKey]),
		ThreeMonth: nonNegative(raw[threeMonthKey]),
		SixMonth:   nonNegative(raw[sixMonthKey]),
		Year:       nonNegative(raw[yearKey]),
	}
	return bundle
}

func weekPoints(v any) []WeekPoint {
	list, ok := v.([]any)
	if !ok {
		return []WeekPoint{}
	}
	points := make([]WeekPoint, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		count, _ := intValue(obj["count"])
		points = append(points, WeekPoint{
			Date:  anyToString(obj["date"]),
			Count: count,
		})
	}
	return points
}

func nonNegative(v any) int {
	n, ok := intValue(v)
	if !ok || n < 0 {
		return 0
	}
	return n
}
