package addressbook

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/gabapcia/nodewallet/internal/network"
)

type memoryStorage struct {
	mu      sync.RWMutex
	entries map[network.Selector]map[string]string
}

var _ Storage = (*memoryStorage)(nil)

// NewMemoryStorage returns a Storage kept in process memory.
func NewMemoryStorage() *memoryStorage {
	return &memoryStorage{
		entries: make(map[network.Selector]map[string]string),
	}
}

func (m *memoryStorage) book(sel network.Selector) map[string]string {
	book, ok := m.entries[sel]
	if !ok {
		book = make(map[string]string)
		m.entries[sel] = book
	}
	return book
}

func (m *memoryStorage) AddReceivingAddress(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	book := m.book(e.Network)
	if _, ok := book[e.Address]; !ok {
		book[e.Address] = e.Label
	}
	return nil
}

func (m *memoryStorage) ListReceivingAddresses(_ context.Context, sel network.Selector) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]Entry, 0, len(m.entries[sel]))
	for addr, label := range m.entries[sel] {
		entries = append(entries, Entry{Network: sel, Address: addr, Label: label})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Address, b.Address)
	})
	return entries, nil
}

func (m *memoryStorage) SetLabel(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.book(e.Network)[e.Address] = e.Label
	return nil
}
