// Package cache holds the invalidate-on-write store for payment-link
// reads. The cache is a derived view only - every mutation marks the list
// entries stale as a whole instead of patching them, which trades one
// extra round trip on the next read for not having partial-merge
// staleness bugs.
package cache

import (
	"context"
	"fmt"

	"github.com/commercegate/paylink-console-service/internal/entities"
)

type Store interface {
	GetPage(ctx context.Context, key string) (*entities.LinkPage, bool)
	SetPage(ctx context.Context, key string, page *entities.LinkPage)
	GetLink(ctx context.Context, id string) (*entities.PaymentLink, bool)
	SetLink(ctx context.Context, id string, link *entities.PaymentLink)

	// InvalidatePages marks every cached list stale, regardless of the
	// filter combination it was stored under.
	InvalidatePages(ctx context.Context) error
	InvalidateLink(ctx context.Context, id string) error
}

// PageKey builds the cache key for one filter combination.
func PageKey(query entities.LinkQuery) string {
	return fmt.Sprintf("status=%s&type=%s&gateway=%s&search=%s&page=%d&limit=%d",
		query.Status, query.Type, query.GatewayID, query.Search, query.Page, query.Limit)
}
