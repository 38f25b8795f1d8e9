// Package catalog serves the filter option lists: pet types, breeds scoped by
// type, and personality tags.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/listing"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

// ErrStaleFetch means a newer breed fetch for the same session superseded
// this one while it was in flight; the result must be discarded.
var ErrStaleFetch = errors.New("stale fetch superseded")

type API interface {
	PetTypes(ctx context.Context) (json.RawMessage, error)
	PetBreeds(ctx context.Context, petTypeID string) (json.RawMessage, error)
	Personalities(ctx context.Context) (json.RawMessage, error)
}

type Service struct {
	api   API
	guard *listing.FetchGuard
}

func NewService(api API) *Service {
	return &Service{
		api:   api,
		guard: listing.NewFetchGuard(),
	}
}

func (s *Service) Types(ctx context.Context) ([]normalize.Option, error) {
	payload, err := s.api.PetTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pet types: %w", err)
	}
	return normalize.PetTypes(payload), nil
}

func (s *Service) Personalities(ctx context.Context) ([]normalize.Option, error) {
	payload, err := s.api.Personalities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list personalities: %w", err)
	}
	return normalize.Personalities(payload), nil
}

// Breeds fetches the breed options for one type. Selecting no concrete type
// empties the options without an upstream call. Responses that lost the race
// against a newer fetch for the same session come back as ErrStaleFetch.
func (s *Service) Breeds(ctx context.Context, sid, typeID string) ([]normalize.Option, error) {
	if typeID == "" || typeID == listing.FilterAll {
		return []normalize.Option{}, nil
	}

	scope := "breeds:" + sid
	gen := s.guard.Begin(scope)

	payload, err := s.api.PetBreeds(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("list breeds for type %s: %w", typeID, err)
	}
	if s.guard.Stale(scope, gen) {
		return nil, fmt.Errorf("breeds fetch gen %s: %w", strconv.FormatUint(gen, 10), ErrStaleFetch)
	}

	return normalize.Breeds(payload), nil
}
