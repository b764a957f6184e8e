package storage

import (
	"context"
	"sync"
)

// Memory keeps values in a map. Used in tests and for throwaway runs.
type Memory struct {
	mutex  sync.RWMutex
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
	}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (m *Memory) Save(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Keys returns the stored keys, in no particular order.
func (m *Memory) Keys() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys
}
