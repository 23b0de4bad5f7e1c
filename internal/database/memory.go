package database

import (
	"context"
	"sync"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// MemoryRepository keeps everything in process memory
type MemoryRepository struct {
	mu         sync.RWMutex
	properties []models.Property
	leads      []models.Lead
	messages   []models.Message
}

func NewMemory(properties []models.Property, leads []models.Lead) *MemoryRepository {
	return &MemoryRepository{
		properties: properties,
		leads:      leads,
	}
}

func (r *MemoryRepository) Properties(ctx context.Context) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Property(nil), r.properties...), nil
}

func (r *MemoryRepository) Leads(ctx context.Context) ([]models.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Lead(nil), r.leads...), nil
}

func (r *MemoryRepository) Messages(ctx context.Context) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Message, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		out = append(out, r.messages[i])
	}
	return out, nil
}

func (r *MemoryRepository) SaveMessage(ctx context.Context, m models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
	return nil
}

func (r *MemoryRepository) Close() error {
	return nil
}
