package database

import (
	"context"

	"github.com/commercegate/paylink-console-service/internal/entities"
)

// Repository stores the local audit trail of link mutations. This is
// merchant-console bookkeeping, the upstream server remains the system of
// record for the links themselves.
type Repository interface {
	Migrate() error

	RecordLinkAudit(ctx context.Context, e entities.LinkAuditEntry) error
	GetLinkAuditTrail(ctx context.Context, linkID string) ([]entities.LinkAuditEntry, error)
}
