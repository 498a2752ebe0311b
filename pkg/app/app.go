// Package app provides the high-level operations shared by the TUI and the
// CLI: the bulk load, profile persistence, global search, and the dashboard
// summary.
package app

import (
	"context"
	"errors"

	"tablero.dev/tablero/pkg/catalog"
	"tablero.dev/tablero/pkg/gateway"
	"tablero.dev/tablero/pkg/profile"
	"tablero.dev/tablero/pkg/search"
	"tablero.dev/tablero/pkg/state"
)

// Service wires the gateway, the state store, and the profile store so UIs
// and CLIs can share logic.
type Service struct {
	Gateway  gateway.Interface
	Store    *state.Store
	Profiles profile.Persistence
}

// New returns a service with a freshly initialized state store.
func New(gw gateway.Interface, profiles profile.Persistence) *Service {
	return &Service{
		Gateway:  gw,
		Store:    state.NewStore(),
		Profiles: profiles,
	}
}

// LoadAll performs the single bulk fetch and replaces the store's
// collections. On failure the store keeps its empty-initialized condition
// and the error is surfaced once; there is no retry.
func (s *Service) LoadAll(ctx context.Context) error {
	if s.Gateway == nil {
		return errors.New("app: no gateway configured")
	}
	snap, err := s.Gateway.FetchAll(ctx)
	if err != nil {
		return err
	}
	s.Store.Load(*snap)
	return nil
}

// RestoreProfile overrides the in-memory defaults with the stored profile
// when one exists and parses; otherwise the defaults stand.
func (s *Service) RestoreProfile() {
	if s.Profiles == nil {
		return
	}
	if p, ok := s.Profiles.Restore(); ok {
		s.Store.SetProfile(p)
	}
}

// SaveProfile updates and persists the profile. Empty inputs fall back to
// the current values so a blank form never overwrites populated fields.
func (s *Service) SaveProfile(name, email, area string) (catalog.Profile, error) {
	current := s.Store.Profile()
	next := catalog.Profile{
		Name:  fallback(name, current.Name),
		Email: fallback(email, current.Email),
		Area:  fallback(area, current.Area),
	}
	if s.Profiles != nil {
		if err := s.Profiles.Save(next); err != nil {
			return current, err
		}
	}
	s.Store.SetProfile(next)
	return next, nil
}

// Search runs the global search over the loaded courses and specialists.
func (s *Service) Search(term string) []search.Result {
	return search.Run(s.Store.Courses(), s.Store.Specialists(), term)
}

// Summary recomputes the dashboard counters.
func (s *Service) Summary() state.Summary {
	return s.Store.Summary()
}

func fallback(value, current string) string {
	if value == "" {
		return current
	}
	return value
}
