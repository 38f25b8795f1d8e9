package moderation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/listing"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

type stubAPI struct {
	err   error
	calls []string
}

func (s *stubAPI) BanUser(_ context.Context, userID string, isBan bool) error {
	s.calls = append(s.calls, "banUser")
	return s.err
}

func (s *stubAPI) DeleteUser(_ context.Context, userID string) error {
	s.calls = append(s.calls, "deleteUser")
	return s.err
}

func (s *stubAPI) BlockUserPhoto(_ context.Context, userID string, isBlocked bool) error {
	s.calls = append(s.calls, "blockUserPhoto")
	return s.err
}

func (s *stubAPI) BanPet(_ context.Context, petID string, isBan bool) error {
	s.calls = append(s.calls, "banPet")
	return s.err
}

func (s *stubAPI) DeletePet(_ context.Context, petID string) error {
	s.calls = append(s.calls, "deletePet")
	return s.err
}

func (s *stubAPI) BlockPetImage(_ context.Context, petID, photoURL string, block bool) error {
	s.calls = append(s.calls, "blockPetImage")
	return s.err
}

type memStore struct {
	images map[string]Override
	photos map[string]Override
}

func newMemStore() *memStore {
	return &memStore{images: map[string]Override{}, photos: map[string]Override{}}
}

func (m *memStore) SetImageOverride(_ context.Context, _ string, key string, o Override) error {
	m.images[key] = o
	return nil
}

func (m *memStore) ImageOverrides(_ context.Context, _ string) (map[string]Override, error) {
	return m.images, nil
}

func (m *memStore) SetPhotoOverride(_ context.Context, _ string, userID string, o Override) error {
	m.photos[userID] = o
	return nil
}

func (m *memStore) PhotoOverrides(_ context.Context, _ string) (map[string]Override, error) {
	return m.photos, nil
}

func TestEffectiveBlocked(t *testing.T) {
	tests := []struct {
		name   string
		server bool
		o      Override
		want   bool
	}{
		{name: "none keeps server false", server: false, o: OverrideNone, want: false},
		{name: "none keeps server true", server: true, o: OverrideNone, want: true},
		{name: "block forces true", server: false, o: OverrideBlock, want: true},
		{name: "unblock wins over server", server: true, o: OverrideUnblock, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveBlocked(tt.server, tt.o); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImageKeyFallsBackToUnknown(t *testing.T) {
	if got := ImageKey("", "http://x/a.jpg"); got != "unknown::http://x/a.jpg" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := ImageKey("p1", "http://x/a.jpg"); got != "p1::http://x/a.jpg" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestBanUserUpdatesRowOnSuccess(t *testing.T) {
	api := &stubAPI{}
	rec := NewReconciler(api)
	users := []normalize.User{{ID: "u1", Status: normalize.StatusActive}}

	if err := rec.BanUser(context.Background(), &sync.Mutex{}, &users, "u1", true); err != nil {
		t.Fatalf("BanUser: %v", err)
	}
	if !users[0].IsBanned || users[0].Status != normalize.StatusBanned {
		t.Fatalf("row not updated: %+v", users[0])
	}
}

func TestBanUserLeavesRowOnFailure(t *testing.T) {
	api := &stubAPI{err: errors.New("boom")}
	rec := NewReconciler(api)
	users := []normalize.User{{ID: "u1", Status: normalize.StatusActive}}

	if err := rec.BanUser(context.Background(), &sync.Mutex{}, &users, "u1", true); err == nil {
		t.Fatal("expected error")
	}
	if users[0].IsBanned || users[0].Status != normalize.StatusActive {
		t.Fatalf("failed call must not mutate: %+v", users[0])
	}
}

func TestBanPetForcesEnabledFlag(t *testing.T) {
	rec := NewReconciler(&stubAPI{})
	pets := []normalize.Pet{{ID: "p1", IsEnabled: true, Status: normalize.StatusEnabled}}

	if err := rec.BanPet(context.Background(), &sync.Mutex{}, &pets, "p1", true); err != nil {
		t.Fatalf("BanPet: %v", err)
	}
	if !pets[0].IsBanned || pets[0].IsEnabled || pets[0].Status != normalize.StatusBlocked {
		t.Fatalf("ban must disable: %+v", pets[0])
	}

	if err := rec.BanPet(context.Background(), &sync.Mutex{}, &pets, "p1", false); err != nil {
		t.Fatalf("unban: %v", err)
	}
	if pets[0].IsBanned || !pets[0].IsEnabled || pets[0].Status != normalize.StatusEnabled {
		t.Fatalf("unban must re-enable: %+v", pets[0])
	}
}

func TestDeletePetRemovesRowAndDecrementsTotal(t *testing.T) {
	rec := NewReconciler(&stubAPI{})
	pets := []normalize.Pet{{ID: "p1"}, {ID: "p2"}}
	pg := listing.Pagination{TotalRecords: 2}

	if err := rec.DeletePet(context.Background(), &sync.Mutex{}, &pets, &pg, "p1"); err != nil {
		t.Fatalf("DeletePet: %v", err)
	}
	if len(pets) != 1 || pets[0].ID != "p2" {
		t.Fatalf("row not removed: %+v", pets)
	}
	if pg.TotalRecords != 1 {
		t.Fatalf("total not decremented: %d", pg.TotalRecords)
	}
}

func TestDeleteUserFailureKeepsCollection(t *testing.T) {
	rec := NewReconciler(&stubAPI{err: errors.New("boom")})
	users := []normalize.User{{ID: "u1"}}
	pg := listing.Pagination{TotalRecords: 1}

	if err := rec.DeleteUser(context.Background(), &sync.Mutex{}, &users, &pg, "u1"); err == nil {
		t.Fatal("expected error")
	}
	if len(users) != 1 || pg.TotalRecords != 1 {
		t.Fatalf("failed delete must not mutate: %+v total=%d", users, pg.TotalRecords)
	}
}

func TestBlockPetImageRecordsOverrideAndFlipsImage(t *testing.T) {
	rec := NewReconciler(&stubAPI{})
	store := newMemStore()
	pets := []normalize.Pet{{
		ID:     "p1",
		Images: []normalize.Image{{URL: "http://x/a.jpg"}, {URL: "http://x/b.jpg"}},
	}}

	if err := rec.BlockPetImage(context.Background(), store, "s1", &sync.Mutex{}, &pets, "p1", "http://x/a.jpg", true); err != nil {
		t.Fatalf("BlockPetImage: %v", err)
	}
	if !pets[0].Images[0].Blocked || pets[0].Images[1].Blocked {
		t.Fatalf("only the targeted image may flip: %+v", pets[0].Images)
	}
	if store.images["p1::http://x/a.jpg"] != OverrideBlock {
		t.Fatalf("override not recorded: %+v", store.images)
	}

	if err := rec.BlockPetImage(context.Background(), store, "s1", &sync.Mutex{}, &pets, "p1", "http://x/a.jpg", false); err != nil {
		t.Fatalf("unblock: %v", err)
	}
	if pets[0].Images[0].Blocked {
		t.Fatal("unblock must clear the image")
	}
	if store.images["p1::http://x/a.jpg"] != OverrideUnblock {
		t.Fatalf("override must switch, not accumulate: %+v", store.images)
	}
}

func TestBlockUserPhotoRecordsOverride(t *testing.T) {
	rec := NewReconciler(&stubAPI{})
	store := newMemStore()
	users := []normalize.User{{ID: "u1", ProfilePhoto: "http://x/p.jpg"}}

	if err := rec.BlockUserPhoto(context.Background(), store, "s1", &sync.Mutex{}, &users, "u1", true); err != nil {
		t.Fatalf("BlockUserPhoto: %v", err)
	}
	if !users[0].ProfilePhotoBlocked {
		t.Fatalf("photo flag not set: %+v", users[0])
	}
	if store.photos["u1"] != OverrideBlock {
		t.Fatalf("override not recorded: %+v", store.photos)
	}
}

func TestApplyImageOverrides(t *testing.T) {
	pets := []normalize.Pet{{
		ID: "p1",
		Images: []normalize.Image{
			{URL: "http://x/a.jpg"},
			{URL: "http://x/b.jpg", Blocked: true},
		},
	}}
	overrides := map[string]Override{
		ImageKey("p1", "http://x/a.jpg"): OverrideBlock,
		ImageKey("p1", "http://x/b.jpg"): OverrideUnblock,
	}

	ApplyImageOverrides(pets, overrides)
	if !pets[0].Images[0].Blocked {
		t.Fatal("block override not applied")
	}
	if pets[0].Images[1].Blocked {
		t.Fatal("unblock override must win over the server flag")
	}
}

func TestApplyUserOverridesCoversNestedPets(t *testing.T) {
	users := []normalize.User{{
		ID:                  "u1",
		ProfilePhotoBlocked: true,
		Pets: []normalize.OwnedPet{{
			ID:     "p1",
			Images: []normalize.Image{{URL: "http://x/a.jpg"}},
		}},
	}}
	photos := map[string]Override{"u1": OverrideUnblock}
	images := map[string]Override{ImageKey("p1", "http://x/a.jpg"): OverrideBlock}

	ApplyUserOverrides(users, photos, images)
	if users[0].ProfilePhotoBlocked {
		t.Fatal("photo unblock not applied")
	}
	if !users[0].Pets[0].Images[0].Blocked {
		t.Fatal("nested image block not applied")
	}
}

func TestInFlightRejectsConcurrentAction(t *testing.T) {
	rec := NewReconciler(&stubAPI{})
	if err := rec.acquire("pet:p1"); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if err := rec.acquire("pet:p1"); !errors.Is(err, ErrActionInFlight) {
		t.Fatalf("expected ErrActionInFlight, got %v", err)
	}
	rec.release("pet:p1")
	if err := rec.acquire("pet:p1"); err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
}
