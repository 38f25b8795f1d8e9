// Package dashboard shapes the normalized counters into the overview tiles
// and chart series the dashboard renders.
package dashboard

import (
	"fmt"
	"time"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/listing"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

// Tile is one overview counter card.
type Tile struct {
	Label        string `json:"label"`
	Value        int    `json:"value"`
	Note         string `json:"note"`
	Route        string `json:"route"`
	StatusFilter string `json:"statusFilter"`
}

type ChartPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Series groups one metric's chart data per period. Only the weekly period
// carries real per-day points; the longer periods arrive pre-aggregated and
// are rendered as a single bucket.
type Series struct {
	Today      int          `json:"today"`
	Week       []ChartPoint `json:"week"`
	Month      []ChartPoint `json:"month"`
	ThreeMonth []ChartPoint `json:"threeMonth"`
	SixMonth   []ChartPoint `json:"sixMonth"`
	Year       []ChartPoint `json:"year"`
}

// Overview is the full dashboard payload.
type Overview struct {
	Tiles       []Tile  `json:"tiles"`
	NewUsers    *Series `json:"newUsers,omitempty"`
	ActiveUsers *Series `json:"activeUsers,omitempty"`
}

const (
	usersRoute = "/dashboard/users"
	petsRoute  = "/dashboard/pets"
)

// Build turns the normalized counters into the overview.
func Build(counts normalize.Counts) Overview {
	activeUsers := counts.TotalUsers - counts.BannedUsers
	if activeUsers < 0 {
		activeUsers = 0
	}
	enabledPets := counts.TotalPets - counts.BannedPets
	if enabledPets < 0 {
		enabledPets = 0
	}

	overview := Overview{
		Tiles: []Tile{
			{
				Label:        "Total users",
				Value:        counts.TotalUsers,
				Note:         fmt.Sprintf("%d active", activeUsers),
				Route:        usersRoute,
				StatusFilter: listing.FilterAll,
			},
			{
				Label:        "Banned users",
				Value:        counts.BannedUsers,
				Note:         "Need review",
				Route:        usersRoute,
				StatusFilter: normalize.StatusBanned,
			},
			{
				Label:        "Total pets",
				Value:        counts.TotalPets,
				Note:         fmt.Sprintf("%d enabled", enabledPets),
				Route:        petsRoute,
				StatusFilter: listing.FilterAll,
			},
			{
				Label:        "Banned pets",
				Value:        counts.BannedPets,
				Note:         "Take action",
				Route:        petsRoute,
				StatusFilter: normalize.StatusBanned,
			},
		},
	}

	if counts.NewUsers != nil {
		overview.NewUsers = buildSeries(counts.NewUsers)
	}
	if counts.ActiveUsers != nil {
		overview.ActiveUsers = buildSeries(counts.ActiveUsers)
	}
	return overview
}

func buildSeries(bundle *normalize.SeriesBundle) *Series {
	week := make([]ChartPoint, 0, len(bundle.Week))
	for _, p := range bundle.Week {
		week = append(week, ChartPoint{Date: chartDate(p.Date), Count: p.Count})
	}

	return &Series{
		Today:      bundle.Today,
		Week:       week,
		Month:      totalBucket(bundle.Month),
		ThreeMonth: totalBucket(bundle.ThreeMonth),
		SixMonth:   totalBucket(bundle.SixMonth),
		Year:       totalBucket(bundle.Year),
	}
}

// totalBucket wraps a pre-aggregated scalar as a single chart bucket. The
// upstream does not break the longer periods down per day.
func totalBucket(count int) []ChartPoint {
	return []ChartPoint{{Date: "Total", Count: count}}
}

// chartDate reformats an ISO date as "Jan 2". Unparseable dates pass through
// raw rather than hiding the data point.
func chartDate(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("Jan 2")
		}
	}
	return raw
}
