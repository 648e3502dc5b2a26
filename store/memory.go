package store

import (
	"encoding/json"
	"errors"
)

// Memory is an in-memory Store, used by tests and anywhere persistence is
// not wanted. It counts writes so tests can assert write-through behavior,
// and can be told to reject writes so tests can assert rollback behavior.
type Memory struct {
	values map[string]json.RawMessage
	writes int
	fail   bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]json.RawMessage)}
}

// Get returns the value for key, or nil if the key is absent.
func (m *Memory) Get(key string) (json.RawMessage, error) {
	return m.values[key], nil
}

// Set writes a single key.
func (m *Memory) Set(key string, value json.RawMessage) error {
	return m.SetAll(map[string]json.RawMessage{key: value})
}

// SetAll writes all given keys as one write.
func (m *Memory) SetAll(values map[string]json.RawMessage) error {
	if m.fail {
		return errors.New("memory store: writes disabled")
	}
	for key, value := range values {
		m.values[key] = value
	}
	m.writes++
	return nil
}

// Writes returns how many write transactions the store has seen.
func (m *Memory) Writes() int { return m.writes }

// FailWrites makes every subsequent write fail (or succeed again).
func (m *Memory) FailWrites(fail bool) { m.fail = fail }

var _ Store = (*Memory)(nil)
