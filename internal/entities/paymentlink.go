package entities

import "strings"

type UsageMode string

const (
	UsageModeSingleUse UsageMode = "SINGLE_USE"
	UsageModeReusable  UsageMode = "REUSABLE"
)

func (u UsageMode) IsValid() bool {
	switch u {
	case UsageModeSingleUse, UsageModeReusable:
		return true
	}

	return false
}

const (
	WireUsageOnce     = "ONCE"
	WireUsageReusable = "REUSABLE"
)

// WireUsage returns the usage value the upstream API expects.
func (u UsageMode) WireUsage() string {
	if u == UsageModeSingleUse {
		return WireUsageOnce
	}

	return WireUsageReusable
}

// UsageModeFromWire maps the upstream usage value onto the canonical
// usage mode. Anything that is not ONCE counts as reusable.
func UsageModeFromWire(usage string) UsageMode {
	if strings.EqualFold(usage, WireUsageOnce) {
		return UsageModeSingleUse
	}

	return UsageModeReusable
}

// UsageModeFromLegacyType adapts the older type vocabulary
// (single/multi/subscription/donation) that still occurs in stored
// filters and older clients.
func UsageModeFromLegacyType(linkType string) UsageMode {
	if strings.EqualFold(linkType, "single") {
		return UsageModeSingleUse
	}

	return UsageModeReusable
}

type LinkStatus string

const (
	LinkStatusPending   LinkStatus = "PENDING"
	LinkStatusActive    LinkStatus = "ACTIVE"
	LinkStatusInactive  LinkStatus = "INACTIVE"
	LinkStatusCompleted LinkStatus = "COMPLETED"
	LinkStatusFailed    LinkStatus = "FAILED"
	LinkStatusExpired   LinkStatus = "EXPIRED"
)

func (s LinkStatus) IsValid() bool {
	switch s {
	case LinkStatusPending, LinkStatusActive, LinkStatusInactive,
		LinkStatusCompleted, LinkStatusFailed, LinkStatusExpired:
		return true
	}

	return false
}

// IsTerminal reports whether a link can never become payable again.
func (s LinkStatus) IsTerminal() bool {
	switch s {
	case LinkStatusCompleted, LinkStatusFailed, LinkStatusExpired:
		return true
	}

	return false
}

// legacy wire statuses that do not normalize via simple upper-casing
var legacyStatusAliases = map[string]LinkStatus{
	"DISABLED": LinkStatusInactive,
	"PAID":     LinkStatusCompleted,
}

// LinkStatusFromWire normalizes both status vocabularies the upstream has
// been observed to emit (pending/failed/completed in lower case and
// ACTIVE/INACTIVE/EXPIRED in upper case) onto the canonical enum. Unknown
// values pass through upper-cased instead of failing, so a new upstream
// status never breaks list rendering.
func LinkStatusFromWire(status string) LinkStatus {
	normalized := strings.ToUpper(strings.TrimSpace(status))
	if alias, ok := legacyStatusAliases[normalized]; ok {
		return alias
	}

	return LinkStatus(normalized)
}

// PaymentLink is the UI-shape record. The gateway is always referenced by
// its opaque id here, never by the canonical backend name. Timestamps and
// expiry values are opaque ISO-8601 strings owned by the upstream API.
type PaymentLink struct {
	ID         string     `json:"id"`
	GatewayID  string     `json:"gatewayId"`
	Amount     *float64   `json:"amount"`
	Currency   string     `json:"currency"`
	UsageMode  UsageMode  `json:"usageMode"`
	Status     LinkStatus `json:"status"`
	PaymentURL string     `json:"paymentUrl,omitempty"`
	SuccessURL string     `json:"successUrl,omitempty"`
	FailURL    string     `json:"failUrl,omitempty"`
	ExpiresAt  string     `json:"expiresAt,omitempty"`
	OrderID    string     `json:"orderId"`
	CreatedAt  string     `json:"createdAt,omitempty"`
	UpdatedAt  string     `json:"updatedAt,omitempty"`

	// gateway specific extension fields, not present on all records
	SourceCurrency   string `json:"sourceCurrency,omitempty"`
	Country          string `json:"country,omitempty"`
	Language         string `json:"language,omitempty"`
	AmountIsEditable *bool  `json:"amountIsEditable,omitempty"`
	MaxPayments      int    `json:"maxPayments,omitempty"`
	CustomerID       string `json:"customerId,omitempty"`
	ExpiryDate       string `json:"expiryDate,omitempty"`
}

// CreateLinkRequest is the draft form object submitted by the UI.
type CreateLinkRequest struct {
	GatewayID     string
	Amount        *float64
	Currency      string
	UsageMode     UsageMode
	ExpiresAt     string
	SuccessURL    string
	FailURL       string
	CustomerEmail string
	CustomerName  string

	SourceCurrency   string
	Country          string
	Language         string
	AmountIsEditable *bool
	MaxPayments      int
	CustomerID       string
	ExpiryDate       string
}

// UpdateLinkRequest carries a partial patch. Nil fields are left untouched.
type UpdateLinkRequest struct {
	GatewayID  *string
	Amount     *float64
	Currency   *string
	UsageMode  *UsageMode
	ExpiresAt  *string
	SuccessURL *string
	FailURL    *string
}

// FilterAll is the sentinel the UI sends for "no filtering on this
// field". It must never reach the upstream API.
const FilterAll = "all"

type LinkQuery struct {
	Status    string
	Type      string
	GatewayID string
	Search    string
	Page      int
	Limit     int
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type LinkPage struct {
	Links      []PaymentLink `json:"paymentLinks"`
	Pagination Pagination    `json:"pagination"`
}

// ShopProfile is the slice of the shop service's profile this service
// needs: the API public key and the gateways enabled for the shop, by
// canonical name.
type ShopProfile struct {
	PublicKey       string
	PaymentGateways []string
}
