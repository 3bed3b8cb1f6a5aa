// Package catalog resolves designer-authored item settings documents into
// merged, read-only settings mappings. Later sources override earlier ones so
// local overlays can adjust shipped defaults during development.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type source interface {
	Load() ([]byte, error)
	Path() string
}

type fileSource struct {
	path string
}

func (f fileSource) Load() ([]byte, error) {
	return os.ReadFile(f.path)
}

func (f fileSource) Path() string {
	return f.path
}

// Entry is the resolved catalog data for one item or mechanic kind.
type Entry struct {
	ID       string
	Kind     string
	Settings map[string]any
}

func (e Entry) clone() Entry {
	clone := Entry{ID: e.ID, Kind: e.Kind}
	if len(e.Settings) > 0 {
		clone.Settings = make(map[string]any, len(e.Settings))
		for key, value := range e.Settings {
			clone.Settings[key] = value
		}
	}
	return clone
}

// Resolver merges one or more catalog sources into a stable lookup table.
// Call Reload to pick up on-disk changes (used for dev hot reload).
type Resolver struct {
	mu      sync.RWMutex
	sources []source
	entries map[string]Entry
}

// DefaultPaths returns the canonical catalog locations relative to the module
// root. Callers may pass these to Load.
func DefaultPaths() []string {
	return []string{
		filepath.Join("config", "items", "definitions.json"),
	}
}

// Load constructs a Resolver backed by the provided catalog file paths.
func Load(paths ...string) (*Resolver, error) {
	sources := make([]source, 0, len(paths))
	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		sources = append(sources, fileSource{path: trimmed})
	}
	return NewResolver(sources...)
}

// NewResolver constructs a Resolver from arbitrary sources. Tests can supply
// in-memory sources while production code uses fileSource.
func NewResolver(sources ...source) (*Resolver, error) {
	r := &Resolver{
		sources: append([]source(nil), sources...),
		entries: make(map[string]Entry),
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-parses all catalog sources. Later sources override earlier ones.
func (r *Resolver) Reload() error {
	if r == nil {
		return nil
	}
	entries := make(map[string]Entry)
	for _, src := range r.sources {
		data, err := src.Load()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("catalog: failed loading %s: %w", src.Path(), err)
		}
		documents, err := decodeEntries(data)
		if err != nil {
			return fmt.Errorf("catalog: failed parsing %s: %w", src.Path(), err)
		}
		seen := make(map[string]struct{}, len(documents))
		for _, doc := range documents {
			id := strings.TrimSpace(doc.ID)
			if id == "" {
				return fmt.Errorf("catalog: entry missing id in %s", src.Path())
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("catalog: duplicate id %q in %s", id, src.Path())
			}
			seen[id] = struct{}{}

			kind := strings.TrimSpace(doc.Kind)
			if kind == "" {
				return fmt.Errorf("catalog: entry %q missing kind", id)
			}

			entries[id] = Entry{ID: id, Kind: kind, Settings: doc.Settings}
		}
	}

	r.mu.Lock()
	r.entries = entries
	r.mu.Unlock()
	return nil
}

// Resolve returns the catalog entry for the provided designer ID.
func (r *Resolver) Resolve(id string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return Entry{}, false
	}
	return entry.clone(), true
}

// SettingsFor returns the settings mapping for the given ID, or an empty
// mapping when the catalog carries no entry for it. Absence is not an error:
// every field normalizes to its default downstream.
func (r *Resolver) SettingsFor(id string) map[string]any {
	entry, ok := r.Resolve(id)
	if !ok {
		return map[string]any{}
	}
	if entry.Settings == nil {
		return map[string]any{}
	}
	return entry.Settings
}

// IDs lists the resolved entry IDs.
func (r *Resolver) IDs() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}

func decodeEntries(data []byte) ([]EntryDocument, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var documents []EntryDocument
		if err := json.Unmarshal(data, &documents); err != nil {
			return nil, err
		}
		return documents, nil
	}
	var keyed map[string]EntryDocument
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, err
	}
	documents := make([]EntryDocument, 0, len(keyed))
	for id, doc := range keyed {
		if doc.ID == "" {
			doc.ID = id
		}
		documents = append(documents, doc)
	}
	return documents, nil
}
