package paylinkapi

import (
	"context"

	"github.com/commercegate/paylink-console-service/internal/gateways"
)

// PaylinkAPI is the typed client for the upstream payment-link API. All
// field naming on this boundary is the upstream's snake_case; callers see
// wire DTOs and perform the UI-shape transformation themselves.
type PaylinkAPI interface {
	ListPaymentLinks(ctx context.Context, filter ListFilter) (ListResponseDto, error)
	GetPaymentLink(ctx context.Context, id string) (PaymentLinkDto, error)
	CreatePayment(ctx context.Context, request CreatePaymentRequestDto) (CreateResultDto, error)
	UpdatePaymentLink(ctx context.Context, id string, request UpdatePaymentRequestDto) (PaymentLinkDto, error)
	UpdatePaymentLinkStatus(ctx context.Context, id string, status string) (PaymentLinkDto, error)
	DeletePaymentLink(ctx context.Context, id string) error
	GetPublicPaymentLink(ctx context.Context, token string) (PaymentLinkDto, error)
}

// ListFilter carries the outbound query. Empty values are omitted from
// the request, the caller has already translated gateway ids to canonical
// names and dropped the "all" sentinel.
type ListFilter struct {
	Status  string
	Type    string
	Gateway string
	Search  string
	Page    int
	Limit   int
}

type PaymentLinkDto struct {
	ID         string   `json:"id"`
	Gateway    string   `json:"gateway"`
	Amount     *float64 `json:"amount"`
	Currency   string   `json:"currency"`
	Usage      string   `json:"usage"`
	Status     string   `json:"status"`
	PaymentURL string   `json:"payment_url"`
	SuccessURL string   `json:"success_url"`
	FailURL    string   `json:"fail_url"`
	ExpiresAt  string   `json:"expires_at"`
	OrderID    string   `json:"order_id"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`

	SourceCurrency   string `json:"source_currency,omitempty"`
	Country          string `json:"country,omitempty"`
	Language         string `json:"language,omitempty"`
	AmountIsEditable *bool  `json:"amount_is_editable,omitempty"`
	MaxPayments      int    `json:"max_payments,omitempty"`
	CustomerID       string `json:"customer,omitempty"`
	ExpiryDate       string `json:"expiryDate,omitempty"`
}

type PaginationDto struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ListResponseDto struct {
	Success    bool             `json:"success"`
	Payments   []PaymentLinkDto `json:"payments"`
	Pagination PaginationDto    `json:"pagination"`
}

type SingleResponseDto struct {
	Success bool           `json:"success"`
	Data    PaymentLinkDto `json:"data"`
}

// CreatePaymentRequestDto is assembled in the order the upstream expects:
// base fields, general optional fields, customer fields, then the
// gateway-specific extensions.
type CreatePaymentRequestDto struct {
	PublicKey     string   `json:"public_key"`
	Gateway       string   `json:"gateway"`
	OrderID       string   `json:"order_id"`
	Amount        *float64 `json:"amount,omitempty"`
	Currency      string   `json:"currency"`
	Usage         string   `json:"usage"`
	ExpiresAt     string   `json:"expires_at,omitempty"`
	SuccessURL    string   `json:"success_url,omitempty"`
	FailURL       string   `json:"fail_url,omitempty"`
	CustomerEmail string   `json:"customer_email,omitempty"`
	CustomerName  string   `json:"customer_name,omitempty"`

	gateways.WireExtensions
}

type CreateResultDto struct {
	ID               string `json:"id"`
	GatewayPaymentID string `json:"gateway_payment_id"`
	PaymentURL       string `json:"payment_url"`
	Status           string `json:"status"`
}

type CreateResponseDto struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Result  CreateResultDto `json:"result"`
}

type UpdatePaymentRequestDto struct {
	Gateway    *string  `json:"gateway,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	Currency   *string  `json:"currency,omitempty"`
	Usage      *string  `json:"usage,omitempty"`
	ExpiresAt  *string  `json:"expires_at,omitempty"`
	SuccessURL *string  `json:"success_url,omitempty"`
	FailURL    *string  `json:"fail_url,omitempty"`
}

type StatusUpdateRequestDto struct {
	Status string `json:"status"`
}
