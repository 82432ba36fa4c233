package gateways

import (
	"github.com/commercegate/paylink-console-service/internal/apierrors"
	"github.com/commercegate/paylink-console-service/internal/entities"
)

// WireExtensions holds the gateway-specific wire fields of a create
// request. Only the fields the policy copied over are serialized, all
// other gateways' extensions are stripped.
type WireExtensions struct {
	SourceCurrency   string `json:"source_currency,omitempty"`
	Country          string `json:"country,omitempty"`
	Language         string `json:"language,omitempty"`
	AmountIsEditable *bool  `json:"amount_is_editable,omitempty"`
	MaxPayments      int    `json:"max_payments,omitempty"`
	CustomerID       string `json:"customer,omitempty"`
	// Noda names its expiry field differently than the shared expires_at
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// policyField declares one gateway extension field: how to detect it on
// the draft request and how to copy it onto the wire shape.
type policyField struct {
	name         string
	reusableOnly bool
	present      func(in *entities.CreateLinkRequest) bool
	apply        func(ext *WireExtensions, in *entities.CreateLinkRequest)
}

// Policy describes how one gateway shapes a create request: which
// extension fields are required, which are copied when present, and
// whether the requested usage mode is overridden. Adding a gateway is a
// new table row, not new code.
type Policy struct {
	gatewayID  string
	required   []policyField
	optional   []policyField
	forceUsage entities.UsageMode
}

var (
	fieldSourceCurrency = policyField{
		name:    "sourceCurrency",
		present: func(in *entities.CreateLinkRequest) bool { return in.SourceCurrency != "" },
		apply: func(ext *WireExtensions, in *entities.CreateLinkRequest) {
			ext.SourceCurrency = in.SourceCurrency
		},
	}
	fieldCountry = policyField{
		name:    "country",
		present: func(in *entities.CreateLinkRequest) bool { return in.Country != "" },
		apply: func(ext *WireExtensions, in *entities.CreateLinkRequest) {
			ext.Country = in.Country
		},
	}
	fieldLanguage = policyField{
		name:    "language",
		present: func(in *entities.CreateLinkRequest) bool { return in.Language != "" },
		apply: func(ext *WireExtensions, in *entities.CreateLinkRequest) {
			ext.Language = in.Language
		},
	}
	fieldAmountIsEditable = policyField{
		name:    "amountIsEditable",
		present: func(in *entities.CreateLinkRequest) bool { return in.AmountIsEditable != nil },
		apply: func(ext *WireExtensions, in *entities.CreateLinkRequest) {
			ext.AmountIsEditable = in.AmountIsEditable
		},
	}
	fieldMaxPayments = policyField{
		name:         "maxPayments",
		reusableOnly: true,
		present:      func(in *entities.CreateLinkRequest) bool { return in.MaxPayments > 0 },
		apply: func(ext *WireExtensions, in *entities.CreateLinkRequest) {
			ext.MaxPayments = in.MaxPayments
		},
	}
	fieldCustomerID = policyField{
		name:    "customerId",
		present: func(in *entities.CreateLinkRequest) bool { return in.CustomerID != "" },
		apply: func(ext *WireExtensions, in *entities.CreateLinkRequest) {
			ext.CustomerID = in.CustomerID
		},
	}
	fieldExpiryDate = policyField{
		name:    "expiryDate",
		present: func(in *entities.CreateLinkRequest) bool { return in.ExpiryDate != "" },
		apply: func(ext *WireExtensions, in *entities.CreateLinkRequest) {
			ext.ExpiryDate = in.ExpiryDate
		},
	}
)

// policyTable is the behavioral table of gateway differences. Gateways
// without a row (and unknown ids) get the default policy: every
// extension field stripped, both usage modes supported.
var policyTable = map[string]Policy{
	"0001": {
		required:   []policyField{fieldSourceCurrency},
		forceUsage: entities.UsageModeSingleUse,
	},
	"0010": {
		required: []policyField{fieldCountry},
		optional: []policyField{fieldLanguage, fieldAmountIsEditable, fieldMaxPayments, fieldCustomerID},
	},
	"1000": {
		optional: []policyField{fieldExpiryDate},
	},
}

// PolicyFor returns the request policy for a gateway id.
func (r *Registry) PolicyFor(gatewayID string) Policy {
	p, ok := policyTable[gatewayID]
	if !ok {
		p = Policy{}
	}

	p.gatewayID = gatewayID
	return p
}

// EffectiveUsage resolves the usage mode the gateway will actually get.
func (p Policy) EffectiveUsage(requested entities.UsageMode) entities.UsageMode {
	if p.forceUsage != "" {
		return p.forceUsage
	}

	if !requested.IsValid() {
		return entities.UsageModeReusable
	}

	return requested
}

// Apply validates the draft request against the policy and assembles the
// gateway-specific wire fields. A missing required field fails with a
// ValidationError before any network call is attempted.
func (p Policy) Apply(in *entities.CreateLinkRequest) (WireExtensions, entities.UsageMode, error) {
	usage := p.EffectiveUsage(in.UsageMode)

	ext := WireExtensions{}
	for _, field := range p.required {
		if !field.present(in) {
			return WireExtensions{}, usage, apierrors.NewValidation(field.name, p.gatewayID)
		}

		field.apply(&ext, in)
	}

	for _, field := range p.optional {
		if field.reusableOnly && usage != entities.UsageModeReusable {
			continue
		}

		if field.present(in) {
			field.apply(&ext, in)
		}
	}

	return ext, usage, nil
}
