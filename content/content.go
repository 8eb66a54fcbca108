// Package content holds the static JSON documents served verbatim to the
// game client. Each document is addressed by a logical name (its file name
// without the .json suffix). Seed documents are embedded in the binary and
// can be overridden per document from a data directory at startup.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed data/*.json
var seedFS embed.FS

// Store maps logical document names to pre-loaded JSON, returned verbatim.
type Store struct {
	docs map[string]json.RawMessage
}

// Load builds a Store from the embedded seed documents, then overrides any
// document with a matching *.json file in dir. An empty dir loads the seed
// set only. Malformed JSON in an override is a startup error.
func Load(dir string) (*Store, error) {
	s := &Store{docs: make(map[string]json.RawMessage)}

	if err := s.loadFS(seedFS, "data"); err != nil {
		return nil, fmt.Errorf("loading embedded content: %w", err)
	}
	if dir != "" {
		if err := s.loadDir(dir); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) loadFS(fsys fs.FS, root string) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := fs.ReadFile(fsys, root+"/"+entry.Name())
		if err != nil {
			return err
		}
		if err := s.put(entry.Name(), raw); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		if err := s.put(entry.Name(), raw); err != nil {
			return fmt.Errorf("content override %s: %w", entry.Name(), err)
		}
	}
	return nil
}

func (s *Store) put(filename string, raw []byte) error {
	if !json.Valid(raw) {
		return fmt.Errorf("%s is not valid JSON", filename)
	}
	name := strings.TrimSuffix(filename, ".json")
	s.docs[name] = json.RawMessage(raw)
	return nil
}

// Get returns the document registered under name.
func (s *Store) Get(name string) (json.RawMessage, bool) {
	doc, ok := s.docs[name]
	return doc, ok
}

// Names lists all registered document names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
