// Package catalog provides the in-memory exercise catalog adapter. The
// catalog is the single source of truth for which exercises exist; nothing
// outside it may appear in a delivered workout plan.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/nutriforge/v1/internal/domain/catalog"
	"github.com/nutriforge/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// InMemoryCatalog implements outbound.ExerciseCatalog over indexed entries.
// Entries are loaded once at startup; reads are concurrent-safe.
type InMemoryCatalog struct {
	mu     sync.RWMutex
	byID   map[string]catalog.Entry
	byName map[string]catalog.Entry
	all    []catalog.Entry
	logger *zap.Logger
}

// NewInMemoryCatalog creates a catalog from the given file, or from the
// built-in seed when no file is configured.
func NewInMemoryCatalog(file string, logger *zap.Logger) (*InMemoryCatalog, error) {
	c := &InMemoryCatalog{
		byID:   make(map[string]catalog.Entry),
		byName: make(map[string]catalog.Entry),
		logger: logger.Named("exercise-catalog"),
	}

	entries := seedEntries()
	if file != "" {
		loaded, err := loadEntries(file)
		if err != nil {
			return nil, err
		}
		entries = loaded
	}
	if len(entries) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	for _, e := range entries {
		c.byID[e.ID] = e
		c.byName[normalizeName(e.Name)] = e
	}
	c.all = entries
	sort.Slice(c.all, func(i, j int) bool { return c.all[i].ID < c.all[j].ID })

	c.logger.Info("Exercise catalog loaded",
		zap.Int("entries", len(c.all)),
		zap.Bool("from_file", file != ""),
	)
	return c, nil
}

// Lookup returns the entry with the given id
func (c *InMemoryCatalog) Lookup(id string) (catalog.Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.byID[id]
	if !ok {
		return catalog.Entry{}, catalog.ErrExerciseNotFound
	}
	return entry, nil
}

// FindByName returns the entry whose name matches case-insensitively
func (c *InMemoryCatalog) FindByName(name string) (catalog.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.byName[normalizeName(name)]
	return entry, ok
}

// All returns a copy of every entry in id order
func (c *InMemoryCatalog) All() []catalog.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]catalog.Entry, len(c.all))
	copy(out, c.all)
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// loadEntries reads catalog entries from a JSON file
func loadEntries(file string) ([]catalog.Entry, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", file, err)
	}
	var entries []catalog.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", file, err)
	}
	return entries, nil
}

var _ outbound.ExerciseCatalog = (*InMemoryCatalog)(nil)
