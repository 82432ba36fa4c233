package inmemory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/commercegate/paylink-console-service/internal/entities"
	"github.com/commercegate/paylink-console-service/internal/repository/database"
)

var _ database.Repository = (*inmemoryProvider)(nil)

type inmemoryProvider struct {
	mu         sync.RWMutex
	entries    map[uint]entities.LinkAuditEntry
	idSequence uint32
}

func NewInMemoryProvider() database.Repository {
	return &inmemoryProvider{
		entries: make(map[uint]entities.LinkAuditEntry),
	}
}

func (m *inmemoryProvider) Migrate() error {
	// Nothing to do here
	return nil
}

func (m *inmemoryProvider) RecordLinkAudit(ctx context.Context, e entities.LinkAuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = uint(atomic.AddUint32(&m.idSequence, 1))
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	m.entries[e.ID] = e
	return nil
}

func (m *inmemoryProvider) GetLinkAuditTrail(ctx context.Context, linkID string) ([]entities.LinkAuditEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]entities.LinkAuditEntry, 0)
	for _, e := range m.entries {
		if e.LinkID == linkID {
			result = append(result, e)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}
