package store

import (
	"context"
	"sync"

	"github.com/aseptimu/shortmyurl/internal/app/service"
)

// InMemoryStore держит ссылки в памяти процесса. Используется,
// когда путь к файлу хранилища не задан.
type InMemoryStore struct {
	data map[string]service.ShortLinkRecord
	mu   sync.RWMutex
}

func NewStore() *InMemoryStore {
	return &InMemoryStore{
		data: make(map[string]service.ShortLinkRecord),
	}
}

func (m *InMemoryStore) Create(_ context.Context, record service.ShortLinkRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[record.Name]; exists {
		return service.ErrNameTaken
	}
	record = normalize(record)
	record.VisitHistory = append([]service.Visit{}, record.VisitHistory...)
	m.data[record.Name] = record
	return nil
}

func (m *InMemoryStore) RecordVisit(_ context.Context, name string, visit service.Visit) (service.ShortLinkRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, exists := m.data[name]
	if !exists {
		return service.ShortLinkRecord{}, service.ErrNotFound
	}
	record.VisitCount++
	record.VisitHistory = append(record.VisitHistory, visit)
	m.data[name] = record
	return snapshot(record), nil
}

func (m *InMemoryStore) Get(_ context.Context, name string) (service.ShortLinkRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.data[name]
	if !exists {
		return service.ShortLinkRecord{}, service.ErrNotFound
	}
	return snapshot(record), nil
}

func (m *InMemoryStore) Ping(_ context.Context) error {
	return nil
}

// snapshot копирует историю, чтобы вызывающий код не делил slice с хранилищем.
func snapshot(record service.ShortLinkRecord) service.ShortLinkRecord {
	record.VisitHistory = append(make([]service.Visit, 0, len(record.VisitHistory)), record.VisitHistory...)
	return record
}
