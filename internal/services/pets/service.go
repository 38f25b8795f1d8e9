// Package pets serves the pet moderation view. Search and age travel to the
// upstream API; status, type, breed and personality narrow the fetched page
// locally. The latest page is cached per session for in-place moderation.
package pets

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/listing"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/moderation"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/upstream"
)

type API interface {
	BaseURL() string
	ListPets(ctx context.Context, params upstream.ListPetsParams) (json.RawMessage, error)
}

type Service struct {
	api        API
	reconciler *moderation.Reconciler
	overrides  moderation.OverrideStore
	guard      *listing.FetchGuard

	mu    sync.Mutex
	views map[string]*view
}

type view struct {
	mu         sync.Mutex
	pets       []normalize.Pet
	pagination listing.Pagination
}

type View struct {
	Pets       []normalize.Pet
	Pagination listing.Pagination
}

func NewService(api API, reconciler *moderation.Reconciler, overrides moderation.OverrideStore) *Service {
	return &Service{
		api:        api,
		reconciler: reconciler,
		overrides:  overrides,
		guard:      listing.NewFetchGuard(),
		views:      make(map[string]*view),
	}
}

func (s *Service) List(ctx context.Context, sid string, q listing.PetQuery) (View, error) {
	gen := s.guard.Begin(sid)

	params := upstream.ListPetsParams{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
	}
	if q.Age != nil {
		params.Age = strconv.Itoa(*q.Age)
	}

	payload, err := s.api.ListPets(ctx, params)
	if err != nil {
		return View{}, fmt.Errorf("list pets: %w", err)
	}

	pets := normalize.Pets(payload, s.api.BaseURL())

	images, err := s.overrides.ImageOverrides(ctx, sid)
	if err != nil {
		return View{}, fmt.Errorf("load image overrides: %w", err)
	}
	moderation.ApplyImageOverrides(pets, images)

	// hasMore reads the raw page size, before the local filters narrow it.
	var pg listing.Pagination
	pg.Apply(q.Page, q.Limit, len(pets), normalize.Total(payload, len(pets)))

	// A fetch that was superseded while in flight still answers its own
	// request, but must not overwrite the fresher cached view.
	v := s.view(sid)
	v.mu.Lock()
	if !s.guard.Stale(sid, gen) {
		v.pets = pets
		v.pagination = pg
	}
	v.mu.Unlock()

	filtered := listing.FilterPets(pets, q)
	return View{
		Pets:       append([]normalize.Pet(nil), filtered...),
		Pagination: pg,
	}, nil
}

// Ban toggles the ban flag; a ban also disables the pet.
func (s *Service) Ban(ctx context.Context, sid, petID string, isBan bool) error {
	v := s.view(sid)
	return s.reconciler.BanPet(ctx, &v.mu, &v.pets, petID, isBan)
}

// Delete removes the pet and returns the adjusted pagination so the caller
// can show the new total without refetching.
func (s *Service) Delete(ctx context.Context, sid, petID string) (listing.Pagination, error) {
	v := s.view(sid)
	if err := s.reconciler.DeletePet(ctx, &v.mu, &v.pets, &v.pagination, petID); err != nil {
		return listing.Pagination{}, err
	}
	v.mu.Lock()
	pg := v.pagination
	v.mu.Unlock()
	return pg, nil
}

func (s *Service) BlockImage(ctx context.Context, sid, petID, photoURL string, block bool) error {
	v := s.view(sid)
	return s.reconciler.BlockPetImage(ctx, s.overrides, sid, &v.mu, &v.pets, petID, photoURL, block)
}

// CachedSessions lists the sessions that currently hold a cached view.
func (s *Service) CachedSessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sids := make([]string, 0, len(s.views))
	for sid := range s.views {
		sids = append(sids, sid)
	}
	return sids
}

// DropView discards a session's cached view, for sessions that expired.
func (s *Service) DropView(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, sid)
}

func (s *Service) view(sid string) *view {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[sid]
	if !ok {
		v = &view{}
		s.views[sid] = v
	}
	return v
}
