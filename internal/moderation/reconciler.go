package moderation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/listing"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

// ErrActionInFlight means a moderation action for the same entity has not
// finished yet. Repeat requests are rejected instead of queued.
var ErrActionInFlight = errors.New("moderation action already in flight")

// Moderator is the slice of the upstream client the reconciler needs.
type Moderator interface {
	BanUser(ctx context.Context, userID string, isBan bool) error
	DeleteUser(ctx context.Context, userID string) error
	BlockUserPhoto(ctx context.Context, userID string, isBlocked bool) error
	BanPet(ctx context.Context, petID string, isBan bool) error
	DeletePet(ctx context.Context, petID string) error
	BlockPetImage(ctx context.Context, petID, photoURL string, block bool) error
}

// Reconciler runs moderation actions against the upstream API and applies
// the result to the cached view collections. Per-entity actions are serialized
// through an in-flight set; a repeat request for a busy entity gets
// ErrActionInFlight. The caller's mu guards its collection and is taken only
// around the post-success mutation, never across the upstream call, so
// actions on different entities proceed concurrently.
type Reconciler struct {
	api Moderator

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewReconciler(api Moderator) *Reconciler {
	return &Reconciler{
		api:      api,
		inFlight: make(map[string]struct{}),
	}
}

func (r *Reconciler) acquire(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.inFlight[key]; busy {
		return ErrActionInFlight
	}
	r.inFlight[key] = struct{}{}
	return nil
}

func (r *Reconciler) release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inFlight, key)
}

// BanUser toggles a user ban and updates the cached row in place.
func (r *Reconciler) BanUser(ctx context.Context, mu sync.Locker, users *[]normalize.User, userID string, isBan bool) error {
	key := "user:" + userID
	if err := r.acquire(key); err != nil {
		return err
	}
	defer r.release(key)

	if err := r.api.BanUser(ctx, userID, isBan); err != nil {
		return fmt.Errorf("ban user %s: %w", userID, err)
	}

	mu.Lock()
	defer mu.Unlock()
	rows := *users
	for i := range rows {
		if rows[i].ID == userID {
			rows[i].IsBanned = isBan
			rows[i].Status = normalize.UserStatus(isBan)
		}
	}
	return nil
}

// DeleteUser removes the user upstream, drops the cached row and decrements
// the displayed total without a refetch.
func (r *Reconciler) DeleteUser(ctx context.Context, mu sync.Locker, users *[]normalize.User, pg *listing.Pagination, userID string) error {
	key := "user:" + userID
	if err := r.acquire(key); err != nil {
		return err
	}
	defer r.release(key)

	if err := r.api.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}

	mu.Lock()
	defer mu.Unlock()
	kept := (*users)[:0]
	removed := false
	for _, u := range *users {
		if u.ID == userID {
			removed = true
			continue
		}
		kept = append(kept, u)
	}
	*users = kept
	if removed && pg != nil {
		pg.RecordDeleted()
	}
	return nil
}

// BlockUserPhoto toggles the profile photo block. On success the override is
// recorded for the session and the cached row flips immediately.
func (r *Reconciler) BlockUserPhoto(ctx context.Context, store OverrideStore, sid string, mu sync.Locker, users *[]normalize.User, userID string, block bool) error {
	key := "userphoto:" + userID
	if err := r.acquire(key); err != nil {
		return err
	}
	defer r.release(key)

	if err := r.api.BlockUserPhoto(ctx, userID, block); err != nil {
		return fmt.Errorf("block user photo %s: %w", userID, err)
	}

	o := OverrideBlock
	if !block {
		o = OverrideUnblock
	}
	if err := store.SetPhotoOverride(ctx, sid, userID, o); err != nil {
		return fmt.Errorf("persist photo override: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	rows := *users
	for i := range rows {
		if rows[i].ID == userID {
			rows[i].ProfilePhotoBlocked = block
		}
	}
	return nil
}

// BanPet toggles a pet ban. A ban also disables the pet; lifting the ban
// re-enables it, matching what the upstream does server-side.
func (r *Reconciler) BanPet(ctx context.Context, mu sync.Locker, pets *[]normalize.Pet, petID string, isBan bool) error {
	key := "pet:" + petID
	if err := r.acquire(key); err != nil {
		return err
	}
	defer r.release(key)

	if err := r.api.BanPet(ctx, petID, isBan); err != nil {
		return fmt.Errorf("ban pet %s: %w", petID, err)
	}

	mu.Lock()
	defer mu.Unlock()
	rows := *pets
	for i := range rows {
		if rows[i].ID == petID {
			rows[i].IsBanned = isBan
			rows[i].IsEnabled = !isBan
			rows[i].Status = normalize.PetStatus(isBan, !isBan)
		}
	}
	return nil
}

// DeletePet removes the pet upstream, then drops the cached row and
// decrements the displayed total.
func (r *Reconciler) DeletePet(ctx context.Context, mu sync.Locker, pets *[]normalize.Pet, pg *listing.Pagination, petID string) error {
	key := "pet:" + petID
	if err := r.acquire(key); err != nil {
		return err
	}
	defer r.release(key)

	if err := r.api.DeletePet(ctx, petID); err != nil {
		return fmt.Errorf("delete pet %s: %w", petID, err)
	}

	mu.Lock()
	defer mu.Unlock()
	kept := (*pets)[:0]
	removed := false
	for _, p := range *pets {
		if p.ID == petID {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	*pets = kept
	if removed && pg != nil {
		pg.RecordDeleted()
	}
	return nil
}

// BlockPetImage toggles a single image block. On success the override is
// recorded for the session and the cached image flips in place.
func (r *Reconciler) BlockPetImage(ctx context.Context, store OverrideStore, sid string, mu sync.Locker, pets *[]normalize.Pet, petID, photoURL string, block bool) error {
	imgKey := ImageKey(petID, photoURL)
	key := "petimage:" + imgKey
	if err := r.acquire(key); err != nil {
		return err
	}
	defer r.release(key)

	if err := r.api.BlockPetImage(ctx, petID, photoURL, block); err != nil {
		return fmt.Errorf("block pet image %s: %w", imgKey, err)
	}

	o := OverrideBlock
	if !block {
		o = OverrideUnblock
	}
	if err := store.SetImageOverride(ctx, sid, imgKey, o); err != nil {
		return fmt.Errorf("persist image override: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	rows := *pets
	for i := range rows {
		if rows[i].ID != petID {
			continue
		}
		for j := range rows[i].Images {
			if rows[i].Images[j].URL == photoURL {
				rows[i].Images[j].Blocked = block
			}
		}
	}
	return nil
}

// ApplyImageOverrides layers session overrides over freshly normalized pets.
func ApplyImageOverrides(pets []normalize.Pet, overrides map[string]Override) {
	if len(overrides) == 0 {
		return
	}
	for i := range pets {
		for j := range pets[i].Images {
			img := &pets[i].Images[j]
			if o, ok := overrides[ImageKey(pets[i].ID, img.URL)]; ok {
				img.Blocked = EffectiveBlocked(img.Blocked, o)
			}
		}
	}
}

// ApplyUserOverrides layers session photo and image overrides over freshly
// normalized users, including the nested pet copies.
func ApplyUserOverrides(users []normalize.User, photos, images map[string]Override) {
	for i := range users {
		u := &users[i]
		if o, ok := photos[u.ID]; ok {
			u.ProfilePhotoBlocked = EffectiveBlocked(u.ProfilePhotoBlocked, o)
		}
		if len(images) == 0 {
			continue
		}
		for j := range u.Pets {
			pet := &u.Pets[j]
			for k := range pet.Images {
				img := &pet.Images[k]
				if o, ok := images[ImageKey(pet.ID, img.URL)]; ok {
					img.Blocked = EffectiveBlocked(img.Blocked, o)
				}
			}
		}
	}
}
