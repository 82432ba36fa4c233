package entities

import (
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditActionCreate       AuditAction = "create"
	AuditActionUpdate       AuditAction = "update"
	AuditActionDelete       AuditAction = "delete"
	AuditActionStatusChange AuditAction = "status_change"
)

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionStatusChange:
		return true
	}

	return false
}

// LinkAuditEntry records a successful mutation of a payment link. This is
// local bookkeeping for the merchant console only - the upstream server
// remains the system of record for the links themselves.
type LinkAuditEntry struct {
	gorm.Model
	LinkID    string      `gorm:"index;type:varchar(80) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;NOT NULL"`
	OrderID   string      `gorm:"type:varchar(80) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	GatewayID string      `gorm:"type:varchar(4)"`
	Action    AuditAction `gorm:"type:enum('create', 'update', 'delete', 'status_change')"`
	Status    string      `gorm:"type:varchar(20)"`
	Actor     string      `gorm:"type:varchar(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	RequestID string      `gorm:"type:varchar(8)"`
}
