package listing

import (
	"testing"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

func intPtr(n int) *int { return &n }

func samplePets() []normalize.Pet {
	return []normalize.Pet{
		{ID: "p1", Status: normalize.StatusBlocked, TypeID: "t1", BreedID: "b1", Personalities: []string{"calm"}, Age: intPtr(3)},
		{ID: "p2", Status: normalize.StatusEnabled, TypeID: "t1", BreedID: "b2", Personalities: []string{"wild", "loud"}, Age: intPtr(4)},
		{ID: "p3", Status: normalize.StatusDisabled, TypeID: "t2", BreedID: "b3", Personalities: []string{}},
	}
}

func TestFilterPetsByStatus(t *testing.T) {
	q := NewPetQuery()
	q.SetStatus(normalize.StatusBlocked)

	got := FilterPets(samplePets(), q)
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFilterPetsByTypeAndBreed(t *testing.T) {
	q := NewPetQuery()
	q.SetType("t1")

	got := FilterPets(samplePets(), q)
	if len(got) != 2 {
		t.Fatalf("type filter: expected 2, got %d", len(got))
	}

	q.SetBreed("b2")
	got = FilterPets(samplePets(), q)
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("breed filter: %+v", got)
	}
}

func TestFilterPetsByPersonality(t *testing.T) {
	q := NewPetQuery()
	q.SetPersonality("loud")

	got := FilterPets(samplePets(), q)
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("personality filter: %+v", got)
	}
}

func TestFilterPetsByExactAge(t *testing.T) {
	q := NewPetQuery()
	q.SetAge(intPtr(3))
	got := FilterPets(samplePets(), q)
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("age 3 should match only p1: %+v", got)
	}

	q.SetAge(intPtr(4))
	got = FilterPets(samplePets(), q)
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("age 4 should match only p2: %+v", got)
	}

	// Unknown age never matches an age filter.
	q.SetAge(intPtr(0))
	if got = FilterPets(samplePets(), q); len(got) != 0 {
		t.Fatalf("unknown age must be excluded: %+v", got)
	}
}

func TestFilterUsersByStatus(t *testing.T) {
	users := []normalize.User{
		{ID: "u1", IsBanned: true},
		{ID: "u2", IsBanned: false},
	}

	q := NewUserQuery()
	if got := FilterUsers(users, q); len(got) != 2 {
		t.Fatalf("all: %+v", got)
	}

	q.SetStatus(normalize.StatusBanned)
	if got := FilterUsers(users, q); len(got) != 1 || got[0].ID != "u1" {
		t.Fatalf("banned: %+v", got)
	}

	q.SetStatus(normalize.StatusActive)
	if got := FilterUsers(users, q); len(got) != 1 || got[0].ID != "u2" {
		t.Fatalf("active: %+v", got)
	}
}

func TestBreedSelectorEnabled(t *testing.T) {
	q := NewPetQuery()
	if BreedSelectorEnabled(q, false) {
		t.Fatal("selector must be disabled while type is all")
	}
	q.SetType("t1")
	if !BreedSelectorEnabled(q, false) {
		t.Fatal("selector should enable with a concrete type")
	}
	if BreedSelectorEnabled(q, true) {
		t.Fatal("selector must be disabled while breeds load")
	}
}

func TestPaginationHeuristics(t *testing.T) {
	var p Pagination
	p.Apply(1, 10, 10, 37)
	if !p.HasMore {
		t.Fatal("full page should signal more")
	}
	if !p.CanNext() || p.CanPrevious() {
		t.Fatalf("unexpected nav state: %+v", p)
	}

	p.Apply(2, 10, 7, 37)
	if p.HasMore {
		t.Fatal("short page should end pagination")
	}
	if p.CanNext() || !p.CanPrevious() {
		t.Fatalf("unexpected nav state: %+v", p)
	}

	p.Loading = true
	if p.CanPrevious() || p.CanNext() {
		t.Fatal("navigation must be disabled while loading")
	}
}

func TestPaginationRecordDeletedFloor(t *testing.T) {
	p := Pagination{TotalRecords: 1}
	p.RecordDeleted()
	p.RecordDeleted()
	if p.TotalRecords != 0 {
		t.Fatalf("total must floor at 0, got %d", p.TotalRecords)
	}
}

func TestFetchGuardDropsStaleGenerations(t *testing.T) {
	guard := NewFetchGuard()

	first := guard.Begin("breeds:s1")
	second := guard.Begin("breeds:s1")

	if !guard.Stale("breeds:s1", first) {
		t.Fatal("older generation must be stale")
	}
	if guard.Stale("breeds:s1", second) {
		t.Fatal("newest generation must not be stale")
	}
	if guard.Stale("breeds:other", guard.Begin("breeds:other")) {
		t.Fatal("scopes must be independent")
	}
}
