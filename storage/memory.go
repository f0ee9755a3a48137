package storage

import (
	"context"
	"sync"
)

// MemoryAdapter is a map-backed Adapter used in tests and for ephemeral
// runs. NotifyExternal lets a test play the role of another tab writing
// the same backing store.
type MemoryAdapter struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	watchers []chan string
}

// NewMemoryAdapter creates an empty in-memory adapter
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		blobs: make(map[string][]byte),
	}
}

// Ensure MemoryAdapter implements Adapter
var _ Adapter = (*MemoryAdapter)(nil)

// Load returns the stored blob for key, or nil if absent
func (m *MemoryAdapter) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save stores a copy of the blob under key
func (m *MemoryAdapter) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = stored
	return nil
}

// Watch returns a channel that receives keys pushed via NotifyExternal
func (m *MemoryAdapter) Watch(ctx context.Context) (<-chan string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan string, 16)
	m.watchers = append(m.watchers, ch)

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				close(ch)
				break
			}
		}
	}()

	return ch, nil
}

// NotifyExternal simulates a change made by another tab: every watcher
// receives the key. Drops the notification if a watcher's buffer is full.
func (m *MemoryAdapter) NotifyExternal(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, w := range m.watchers {
		select {
		case w <- key:
		default:
		}
	}
}

// Close releases nothing; present to satisfy Adapter
func (m *MemoryAdapter) Close() error {
	return nil
}
