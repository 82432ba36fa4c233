package v1paymentlinks

import (
	"time"

	"github.com/commercegate/paylink-console-service/internal/entities"
)

// CreateLinkRequestDto is the draft submitted by the console UI. All
// gateway references use opaque ids.
type CreateLinkRequestDto struct {
	GatewayID     string   `json:"gatewayId"`
	Amount        *float64 `json:"amount"`
	Currency      string   `json:"currency"`
	UsageMode     string   `json:"usageMode"`
	ExpiresAt     string   `json:"expiresAt,omitempty"`
	SuccessURL    string   `json:"successUrl,omitempty"`
	FailURL       string   `json:"failUrl,omitempty"`
	CustomerEmail string   `json:"customerEmail,omitempty"`
	CustomerName  string   `json:"customerName,omitempty"`

	SourceCurrency   string `json:"sourceCurrency,omitempty"`
	Country          string `json:"country,omitempty"`
	Language         string `json:"language,omitempty"`
	AmountIsEditable *bool  `json:"amountIsEditable,omitempty"`
	MaxPayments      int    `json:"maxPayments,omitempty"`
	CustomerID       string `json:"customerId,omitempty"`
	ExpiryDate       string `json:"expiryDate,omitempty"`
}

func (dto *CreateLinkRequestDto) toCreateRequest() *entities.CreateLinkRequest {
	return &entities.CreateLinkRequest{
		GatewayID:     dto.GatewayID,
		Amount:        dto.Amount,
		Currency:      dto.Currency,
		UsageMode:     entities.UsageMode(dto.UsageMode),
		ExpiresAt:     dto.ExpiresAt,
		SuccessURL:    dto.SuccessURL,
		FailURL:       dto.FailURL,
		CustomerEmail: dto.CustomerEmail,
		CustomerName:  dto.CustomerName,

		SourceCurrency:   dto.SourceCurrency,
		Country:          dto.Country,
		Language:         dto.Language,
		AmountIsEditable: dto.AmountIsEditable,
		MaxPayments:      dto.MaxPayments,
		CustomerID:       dto.CustomerID,
		ExpiryDate:       dto.ExpiryDate,
	}
}

// UpdateLinkRequestDto is a partial patch, absent fields stay untouched.
type UpdateLinkRequestDto struct {
	GatewayID  *string  `json:"gatewayId,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	Currency   *string  `json:"currency,omitempty"`
	UsageMode  *string  `json:"usageMode,omitempty"`
	ExpiresAt  *string  `json:"expiresAt,omitempty"`
	SuccessURL *string  `json:"successUrl,omitempty"`
	FailURL    *string  `json:"failUrl,omitempty"`
}

func (dto *UpdateLinkRequestDto) toUpdateRequest() *entities.UpdateLinkRequest {
	request := &entities.UpdateLinkRequest{
		GatewayID:  dto.GatewayID,
		Amount:     dto.Amount,
		Currency:   dto.Currency,
		ExpiresAt:  dto.ExpiresAt,
		SuccessURL: dto.SuccessURL,
		FailURL:    dto.FailURL,
	}

	if dto.UsageMode != nil {
		usage := entities.UsageMode(*dto.UsageMode)
		request.UsageMode = &usage
	}

	return request
}

type StatusToggleRequestDto struct {
	Status string `json:"status"`
}

type AuditEntryDto struct {
	LinkID    string `json:"linkId"`
	OrderID   string `json:"orderId,omitempty"`
	GatewayID string `json:"gatewayId,omitempty"`
	Action    string `json:"action"`
	Status    string `json:"status,omitempty"`
	Actor     string `json:"actor,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type AuditTrailDto struct {
	Entries []AuditEntryDto `json:"entries"`
}

func auditEntryDtoFrom(entry entities.LinkAuditEntry) AuditEntryDto {
	return AuditEntryDto{
		LinkID:    entry.LinkID,
		OrderID:   entry.OrderID,
		GatewayID: entry.GatewayID,
		Action:    string(entry.Action),
		Status:    entry.Status,
		Actor:     entry.Actor,
		RequestID: entry.RequestID,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// PublicLinkDto is the payer-facing view. Merchant-side configuration
// like redirect urls and customer references is not exposed.
type PublicLinkDto struct {
	ID               string   `json:"id"`
	GatewayID        string   `json:"gatewayId"`
	Amount           *float64 `json:"amount"`
	Currency         string   `json:"currency"`
	UsageMode        string   `json:"usageMode"`
	Status           string   `json:"status"`
	PaymentURL       string   `json:"paymentUrl,omitempty"`
	ExpiresAt        string   `json:"expiresAt,omitempty"`
	AmountIsEditable *bool    `json:"amountIsEditable,omitempty"`
}

func publicLinkDtoFrom(link *entities.PaymentLink) PublicLinkDto {
	return PublicLinkDto{
		ID:               link.ID,
		GatewayID:        link.GatewayID,
		Amount:           link.Amount,
		Currency:         link.Currency,
		UsageMode:        string(link.UsageMode),
		Status:           string(link.Status),
		PaymentURL:       link.PaymentURL,
		ExpiresAt:        link.ExpiresAt,
		AmountIsEditable: link.AmountIsEditable,
	}
}
