package storage

import (
	"context"
	"sync"
)

// MemoryDocumentStore keeps cache documents in process memory. Documents are
// lost on restart.
type MemoryDocumentStore struct {
	documents map[string][]byte
	mutex     sync.RWMutex
}

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{
		documents: make(map[string][]byte),
	}
}

func (m *MemoryDocumentStore) Load(ctx context.Context, dir string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	doc, ok := m.documents[dir]
	if !ok {
		doc = append([]byte(nil), emptyDocument...)
		m.documents[dir] = doc
	}
	return append([]byte(nil), doc...), nil
}

func (m *MemoryDocumentStore) Save(ctx context.Context, dir string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.documents[dir] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryDocumentStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryDocumentStore) Name() string {
	return "memory"
}
