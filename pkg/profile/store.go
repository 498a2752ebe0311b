// Package profile persists the current-user profile across sessions. The
// profile is the only durable entity; everything else is re-fetched from the
// gateway on every start.
package profile

import (
	"encoding/json"

	"github.com/peterbourgon/diskv/v3"

	"tablero.dev/tablero/pkg/catalog"
)

const slotKey = "userProfile"

// Persistence is the durable profile slot.
type Persistence interface {
	Save(p catalog.Profile) error
	Restore() (catalog.Profile, bool)
}

// Store keeps the profile in a diskv key-value store under a single slot.
type Store struct {
	d *diskv.Diskv
}

// NewStore opens (or creates) the store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

// Save serializes and writes the profile to the slot.
func (s *Store) Save(p catalog.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.d.Write(slotKey, data)
}

// Restore reads the stored profile. A missing slot or a document that fails
// to parse reports ok=false; callers keep the in-memory defaults.
func (s *Store) Restore() (catalog.Profile, bool) {
	data, err := s.d.Read(slotKey)
	if err != nil {
		return catalog.Profile{}, false
	}
	var p catalog.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return catalog.Profile{}, false
	}
	return p, true
}
