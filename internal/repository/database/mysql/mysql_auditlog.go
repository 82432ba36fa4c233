package mysql

import (
	"context"
	"time"

	"github.com/commercegate/paylink-console-service/internal/entities"
)

func (m *mysqlConnector) RecordLinkAudit(ctx context.Context, e entities.LinkAuditEntry) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	result := m.db.WithContext(tCtx).Create(&e)
	return result.Error
}

func (m *mysqlConnector) GetLinkAuditTrail(ctx context.Context, linkID string) ([]entities.LinkAuditEntry, error) {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	var entries []entities.LinkAuditEntry
	res := m.db.WithContext(tCtx).
		Where(&entities.LinkAuditEntry{LinkID: linkID}).
		Order("id asc").
		Find(&entries)

	if res.Error != nil {
		return nil, res.Error
	}

	return entries, nil
}
