package favorites

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Favorite is a bookmarked billboard face. Only the identifying code
// and an optional note are stored; the record itself always comes from
// the inventory store.
type Favorite struct {
	ID        string    `yaml:"id"`
	Code      string    `yaml:"code"`
	Note      string    `yaml:"note,omitempty"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Manager manages billboard bookmarks
type Manager struct {
	path      string
	favorites []Favorite
}

// NewManager creates a new favorites manager
func NewManager(configDir string) (*Manager, error) {
	path := filepath.Join(configDir, "favorites.yaml")

	m := &Manager{
		path:      path,
		favorites: []Favorite{},
	}

	// Load existing favorites if file exists
	if _, err := os.Stat(path); err == nil {
		if err := m.Load(); err != nil {
			return nil, fmt.Errorf("failed to load favorites: %w", err)
		}
	}

	return m, nil
}

// Load reads the favorites file
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read favorites file: %w", err)
	}

	var favorites []Favorite
	if err := yaml.Unmarshal(data, &favorites); err != nil {
		return fmt.Errorf("failed to parse favorites file: %w", err)
	}

	m.favorites = favorites
	return nil
}

// Save writes the favorites file
func (m *Manager) Save() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.favorites)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write favorites file: %w", err)
	}

	return nil
}

// IsFavorite reports whether a billboard code is bookmarked
func (m *Manager) IsFavorite(code string) bool {
	for _, f := range m.favorites {
		if f.Code == code {
			return true
		}
	}
	return false
}

// Toggle bookmarks a code, or removes the bookmark if present.
// Returns true when the code is bookmarked after the call.
func (m *Manager) Toggle(code string) (bool, error) {
	for i, f := range m.favorites {
		if f.Code == code {
			m.favorites = append(m.favorites[:i], m.favorites[i+1:]...)
			return false, m.Save()
		}
	}

	m.favorites = append(m.favorites, Favorite{
		ID:        uuid.NewString(),
		Code:      code,
		CreatedAt: time.Now(),
	})
	return true, m.Save()
}

// List returns all bookmarks sorted by code
func (m *Manager) List() []Favorite {
	out := make([]Favorite, len(m.favorites))
	copy(out, m.favorites)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Count returns the number of bookmarks
func (m *Manager) Count() int {
	return len(m.favorites)
}
