package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// File is a Store backed by a single human-readable JSON document on disk.
//
// The whole document is loaded at open time and rewritten on every write:
// the store is small (a shop's catalog and sales history) and a full
// rewrite through a temp file plus rename makes every write, including a
// multi-key SetAll, a single atomic replacement.
type File struct {
	path   string
	values map[string]json.RawMessage
}

// OpenFile loads the store document at path. A missing file is a valid
// empty store; the file is created on the first write.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]json.RawMessage)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open store file %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &f.values); err != nil {
		return nil, fmt.Errorf("store file %q is not a valid JSON document: %w", path, err)
	}
	return f, nil
}

// Path returns the location of the store document.
func (f *File) Path() string { return f.path }

// Get returns the value for key, or nil if the key is absent.
func (f *File) Get(key string) (json.RawMessage, error) {
	return f.values[key], nil
}

// Set writes a single key and persists the document.
func (f *File) Set(key string, value json.RawMessage) error {
	return f.SetAll(map[string]json.RawMessage{key: value})
}

// SetAll writes all given keys and persists the document in one atomic
// file replacement.
func (f *File) SetAll(values map[string]json.RawMessage) error {
	for key, value := range values {
		f.values[key] = value
	}
	return f.flush()
}

// flush rewrites the whole document through a temp file then renames it
// over the store path.
func (f *File) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("cannot create directory for store %q: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encodeDocument(tmp, f.values); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write store file %q: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temp store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("cannot replace store file %q: %w", f.path, err)
	}
	return nil
}

// encodeDocument writes the store as an indented JSON object with keys in
// a stable order, so the file stays human-readable and diff-friendly.
func encodeDocument(w *os.File, values map[string]json.RawMessage) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if _, err := fmt.Fprintln(w, "{"); err != nil {
		return err
	}
	for i, key := range keys {
		indented, err := json.MarshalIndent(values[key], "  ", "  ")
		if err != nil {
			return err
		}
		sep := ","
		if i == len(keys)-1 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "  %q: %s%s\n", key, indented, sep); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}

// check the port is fully implemented.
var _ Store = (*File)(nil)
