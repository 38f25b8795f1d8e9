// Package overview serves the dashboard counters.
package overview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/dashboard"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

type API interface {
	DashboardCounts(ctx context.Context) (json.RawMessage, error)
}

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

func (s *Service) Overview(ctx context.Context) (dashboard.Overview, error) {
	payload, err := s.api.DashboardCounts(ctx)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("fetch dashboard counts: %w", err)
	}
	return dashboard.Build(normalize.DashboardCounts(payload)), nil
}
