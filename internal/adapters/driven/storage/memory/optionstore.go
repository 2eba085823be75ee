package memory

import (
	"sync"

	"github.com/custodia-labs/modmenu/internal/core/domain"
	"github.com/custodia-labs/modmenu/internal/core/ports/driven"
)

// Ensure OptionStore implements the interface.
var _ driven.OptionStore = (*OptionStore)(nil)

// OptionStore is an in-memory implementation of driven.OptionStore.
// It is the process-wide option registry, created once and injected.
type OptionStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewOptionStore creates a new, empty option store.
func NewOptionStore() *OptionStore {
	return &OptionStore{
		values: make(map[string]any),
	}
}

func (s *OptionStore) get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

func (s *OptionStore) set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Has reports whether a value has been stored for key.
func (s *OptionStore) Has(key string) bool {
	_, ok := s.get(key)
	return ok
}

// GetBoolean retrieves a boolean value.
func (s *OptionStore) GetBoolean(key string) bool {
	val, ok := s.get(key)
	if !ok {
		return false
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return false
}

// SetBoolean stores a boolean value.
func (s *OptionStore) SetBoolean(key string, value bool) {
	s.set(key, value)
}

// GetStringSet retrieves a copy of a string set value.
func (s *OptionStore) GetStringSet(key string) domain.StringSet {
	val, ok := s.get(key)
	if !ok {
		return nil
	}
	if set, ok := val.(domain.StringSet); ok {
		return set.Clone()
	}
	return nil
}

// SetStringSet stores a copy of a string set value.
func (s *OptionStore) SetStringSet(key string, value domain.StringSet) {
	s.set(key, value.Clone())
}

// enumValue distinguishes enum constants from plain strings stored under the same key.
type enumValue string

// GetEnum retrieves the constant name stored for an enum option.
func (s *OptionStore) GetEnum(key string) string {
	val, ok := s.get(key)
	if !ok {
		return ""
	}
	if e, ok := val.(enumValue); ok {
		return string(e)
	}
	return ""
}

// SetEnum stores the constant name for an enum option.
func (s *OptionStore) SetEnum(key string, value string) {
	s.set(key, enumValue(value))
}

// Delete removes the value for key.
func (s *OptionStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Len returns the number of stored values.
func (s *OptionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
