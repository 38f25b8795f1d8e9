package dashboard

import (
	"testing"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

func TestBuildTiles(t *testing.T) {
	overview := Build(normalize.Counts{
		TotalUsers:  100,
		BannedUsers: 10,
		TotalPets:   50,
		BannedPets:  5,
	})

	if len(overview.Tiles) != 4 {
		t.Fatalf("expected 4 tiles, got %d", len(overview.Tiles))
	}

	tests := []struct {
		label  string
		value  int
		note   string
		route  string
		status string
	}{
		{"Total users", 100, "90 active", "/dashboard/users", "all"},
		{"Banned users", 10, "Need review", "/dashboard/users", "banned"},
		{"Total pets", 50, "45 enabled", "/dashboard/pets", "all"},
		{"Banned pets", 5, "Take action", "/dashboard/pets", "banned"},
	}
	for i, tt := range tests {
		tile := overview.Tiles[i]
		if tile.Label != tt.label || tile.Value != tt.value || tile.Note != tt.note {
			t.Fatalf("tile %d: %+v", i, tile)
		}
		if tile.Route != tt.route || tile.StatusFilter != tt.status {
			t.Fatalf("tile %d routing: %+v", i, tile)
		}
	}
}

func TestBuildClampsNegativeDerivedCounts(t *testing.T) {
	overview := Build(normalize.Counts{TotalUsers: 3, BannedUsers: 7})
	if overview.Tiles[0].Note != "0 active" {
		t.Fatalf("active count must clamp at 0: %q", overview.Tiles[0].Note)
	}
}

func TestBuildSeries(t *testing.T) {
	overview := Build(normalize.Counts{
		NewUsers: &normalize.SeriesBundle{
			Today: 4,
			Week: []normalize.WeekPoint{
				{Date: "2026-08-24", Count: 2},
				{Date: "2026-08-25T00:00:00Z", Count: 3},
			},
			Month:      30,
			ThreeMonth: 90,
			SixMonth:   180,
			Year:       365,
		},
	})

	s := overview.NewUsers
	if s == nil {
		t.Fatal("expected new users series")
	}
	if s.Today != 4 {
		t.Fatalf("today: %d", s.Today)
	}
	if len(s.Week) != 2 || s.Week[0].Date != "Aug 24" || s.Week[1].Date != "Aug 25" {
		t.Fatalf("week dates: %+v", s.Week)
	}
	for _, points := range [][]ChartPoint{s.Month, s.ThreeMonth, s.SixMonth, s.Year} {
		if len(points) != 1 || points[0].Date != "Total" {
			t.Fatalf("long periods must collapse to one Total bucket: %+v", points)
		}
	}
	if s.Year[0].Count != 365 {
		t.Fatalf("year bucket: %+v", s.Year)
	}
	if overview.ActiveUsers != nil {
		t.Fatal("absent bundle must stay nil")
	}
}

func TestChartDatePassesThroughUnparseable(t *testing.T) {
	if got := chartDate("whenever"); got != "whenever" {
		t.Fatalf("unexpected: %q", got)
	}
}
