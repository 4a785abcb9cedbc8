package schema

import (
	"context"
	"sort"
	"sync"
)

// Catalog stores live collection definitions.
type Catalog interface {
	FindByName(ctx context.Context, name string) (*Collection, error)
	Save(ctx context.Context, collection *Collection) error
	Delete(ctx context.Context, name string) error
}

// MemoryCatalog is a Catalog kept in process memory.
type MemoryCatalog struct {
	mu          sync.Mutex
	collections map[string]*Collection
	saves       int
}

var _ Catalog = (*MemoryCatalog)(nil)

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{collections: make(map[string]*Collection)}
}

func (m *MemoryCatalog) FindByName(_ context.Context, name string) (*Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[name]
	if !ok {
		return nil, ErrNotFound
	}
	return c.Clone(), nil
}

func (m *MemoryCatalog) Save(_ context.Context, collection *Collection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.collections[collection.Name] = collection.Clone()
	m.saves++
	return nil
}

func (m *MemoryCatalog) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collections[name]; !ok {
		return ErrNotFound
	}
	delete(m.collections, name)
	return nil
}

// Names returns the stored collection names in sorted order.
func (m *MemoryCatalog) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Saves counts calls to Save.
func (m *MemoryCatalog) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
