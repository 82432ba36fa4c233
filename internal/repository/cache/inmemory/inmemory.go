package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/commercegate/paylink-console-service/internal/entities"
	"github.com/commercegate/paylink-console-service/internal/repository/cache"
)

var _ cache.Store = (*inmemoryStore)(nil)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

type inmemoryStore struct {
	mu    sync.RWMutex
	pages map[string]entry[*entities.LinkPage]
	links map[string]entry[*entities.PaymentLink]
	ttl   time.Duration
}

func NewInMemoryStore(ttl time.Duration) cache.Store {
	return &inmemoryStore{
		pages: make(map[string]entry[*entities.LinkPage]),
		links: make(map[string]entry[*entities.PaymentLink]),
		ttl:   ttl,
	}
}

func (s *inmemoryStore) GetPage(ctx context.Context, key string) (*entities.LinkPage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.pages[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

func (s *inmemoryStore) SetPage(ctx context.Context, key string, page *entities.LinkPage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages[key] = entry[*entities.LinkPage]{
		value:     page,
		expiresAt: time.Now().Add(s.ttl),
	}
}

func (s *inmemoryStore) GetLink(ctx context.Context, id string) (*entities.PaymentLink, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.links[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

func (s *inmemoryStore) SetLink(ctx context.Context, id string, link *entities.PaymentLink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.links[id] = entry[*entities.PaymentLink]{
		value:     link,
		expiresAt: time.Now().Add(s.ttl),
	}
}

func (s *inmemoryStore) InvalidatePages(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages = make(map[string]entry[*entities.LinkPage])
	return nil
}

func (s *inmemoryStore) InvalidateLink(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.links, id)
	return nil
}
