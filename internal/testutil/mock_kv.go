// mock_kv.go - In-memory KV store implementation for testing
package testutil

import (
	"sync"

	"github.com/recruitai/backend/internal/store"
	"github.com/sirupsen/logrus"
)

// MockKV implements store.KV in memory. FailNextPut makes the next Put
// fail with store.ErrQuotaExceeded, for exercising quota back-pressure
// paths without a real byte budget.
type MockKV struct {
	data        map[string][]byte
	FailNextPut bool
	mu          sync.RWMutex
}

// NewMockKV creates an empty mock KV store.
func NewMockKV() *MockKV {
	return &MockKV{data: make(map[string][]byte)}
}

func (m *MockKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MockKV) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailNextPut {
		m.FailNextPut = false
		return store.ErrQuotaExceeded
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *MockKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MockKV) Close() error { return nil }

// Len returns the number of stored keys.
func (m *MockKV) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// SilentLogger returns a logger entry that discards everything, for
// wiring components under test.
func SilentLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}

var _ store.KV = (*MockKV)(nil)
