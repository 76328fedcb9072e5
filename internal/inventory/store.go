package inventory

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jmtoutdoors/vallas/internal/models"
)

//go:embed dataset.json
var datasetJSON []byte

// Store holds the billboard inventory. Records are loaded once and
// never mutated; the store hands out copies so callers cannot change
// its contents either.
type Store struct {
	records []models.Billboard
}

// Load parses the embedded dataset and returns a populated store.
func Load() (*Store, error) {
	return loadFrom(datasetJSON)
}

// NewStore wraps an already-loaded record sequence. Used by tests and
// by any future alternate loader.
func NewStore(records []models.Billboard) *Store {
	copied := make([]models.Billboard, len(records))
	copy(copied, records)
	return &Store{records: copied}
}

func loadFrom(data []byte) (*Store, error) {
	var records []models.Billboard
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse inventory dataset: %w", err)
	}
	return &Store{records: records}, nil
}

// All returns the records in load order. The returned slice is a copy.
func (s *Store) All() []models.Billboard {
	out := make([]models.Billboard, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the fixed cardinality of the store.
func (s *Store) Len() int {
	return len(s.records)
}

// Districts returns the distinct district labels, sorted.
func (s *Store) Districts() []string {
	return s.distinct(func(b models.Billboard) string { return b.District })
}

// Elements returns the distinct element labels, sorted.
func (s *Store) Elements() []string {
	return s.distinct(func(b models.Billboard) string { return b.Element })
}

// Types returns the distinct type labels, sorted.
func (s *Store) Types() []string {
	return s.distinct(func(b models.Billboard) string { return b.Type })
}

// Departments returns the distinct department labels, sorted.
func (s *Store) Departments() []string {
	return s.distinct(func(b models.Billboard) string { return b.Department })
}

func (s *Store) distinct(field func(models.Billboard) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, b := range s.records {
		v := field(b)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
