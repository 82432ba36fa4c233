package gateways

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/commercegate/paylink-console-service/internal/apierrors"
	"github.com/commercegate/paylink-console-service/internal/entities"
)

func TestPolicyApply(t *testing.T) {
	registry := NewDefaultRegistry()

	boolPtr := func(v bool) *bool { return &v }

	type args struct {
		gatewayID string
		request   entities.CreateLinkRequest
	}

	type expected struct {
		ext          WireExtensions
		usage        entities.UsageMode
		missingField string
	}

	tests := []struct {
		name     string
		args     args
		expected expected
	}{
		{
			name: "should require source currency for crypto gateway",
			args: args{
				gatewayID: "0001",
				request: entities.CreateLinkRequest{
					GatewayID: "0001",
					Currency:  "EUR",
					UsageMode: entities.UsageModeReusable,
				},
			},
			expected: expected{
				missingField: "sourceCurrency",
			},
		},
		{
			name: "should force single use on crypto gateway",
			args: args{
				gatewayID: "0001",
				request: entities.CreateLinkRequest{
					GatewayID:      "0001",
					Currency:       "EUR",
					UsageMode:      entities.UsageModeReusable,
					SourceCurrency: "BTC",
				},
			},
			expected: expected{
				ext:   WireExtensions{SourceCurrency: "BTC"},
				usage: entities.UsageModeSingleUse,
			},
		},
		{
			name: "should require country for card gateway",
			args: args{
				gatewayID: "0010",
				request: entities.CreateLinkRequest{
					GatewayID: "0010",
					Currency:  "USD",
					UsageMode: entities.UsageModeSingleUse,
				},
			},
			expected: expected{
				missingField: "country",
			},
		},
		{
			name: "should copy optional card gateway fields when present",
			args: args{
				gatewayID: "0010",
				request: entities.CreateLinkRequest{
					GatewayID:        "0010",
					Currency:         "USD",
					UsageMode:        entities.UsageModeReusable,
					Country:          "US",
					Language:         "en",
					AmountIsEditable: boolPtr(true),
					MaxPayments:      5,
					CustomerID:       "cust-77",
				},
			},
			expected: expected{
				ext: WireExtensions{
					Country:          "US",
					Language:         "en",
					AmountIsEditable: boolPtr(true),
					MaxPayments:      5,
					CustomerID:       "cust-77",
				},
				usage: entities.UsageModeReusable,
			},
		},
		{
			name: "should drop max payments on single use links",
			args: args{
				gatewayID: "0010",
				request: entities.CreateLinkRequest{
					GatewayID:   "0010",
					Currency:    "USD",
					UsageMode:   entities.UsageModeSingleUse,
					Country:     "DE",
					MaxPayments: 5,
				},
			},
			expected: expected{
				ext:   WireExtensions{Country: "DE"},
				usage: entities.UsageModeSingleUse,
			},
		},
		{
			name: "should copy expiry date for open banking gateway",
			args: args{
				gatewayID: "1000",
				request: entities.CreateLinkRequest{
					GatewayID:  "1000",
					Currency:   "EUR",
					UsageMode:  entities.UsageModeSingleUse,
					ExpiryDate: "2026-09-30T00:00:00Z",
				},
			},
			expected: expected{
				ext:   WireExtensions{ExpiryDate: "2026-09-30T00:00:00Z"},
				usage: entities.UsageModeSingleUse,
			},
		},
		{
			name: "should strip all extensions for gateways without a policy",
			args: args{
				gatewayID: "0100",
				request: entities.CreateLinkRequest{
					GatewayID:      "0100",
					Currency:       "EUR",
					UsageMode:      entities.UsageModeReusable,
					SourceCurrency: "BTC",
					Country:        "US",
					MaxPayments:    3,
				},
			},
			expected: expected{
				ext:   WireExtensions{},
				usage: entities.UsageModeReusable,
			},
		},
		{
			name: "should strip all extensions for unknown gateways",
			args: args{
				gatewayID: "9999",
				request: entities.CreateLinkRequest{
					GatewayID: "9999",
					Currency:  "EUR",
					UsageMode: entities.UsageModeSingleUse,
					Country:   "US",
				},
			},
			expected: expected{
				ext:   WireExtensions{},
				usage: entities.UsageModeSingleUse,
			},
		},
		{
			name: "should default invalid usage to reusable",
			args: args{
				gatewayID: "0100",
				request: entities.CreateLinkRequest{
					GatewayID: "0100",
					Currency:  "EUR",
					UsageMode: "SOMETIMES",
				},
			},
			expected: expected{
				ext:   WireExtensions{},
				usage: entities.UsageModeReusable,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := registry.PolicyFor(tt.args.gatewayID)
			ext, usage, err := policy.Apply(&tt.args.request)

			if tt.expected.missingField != "" {
				require.Error(t, err)
				validationErr := apierrors.AsValidation(err)
				require.NotNil(t, validationErr)
				require.Equal(t, tt.expected.missingField, validationErr.Field)
				require.Equal(t, tt.args.gatewayID, validationErr.GatewayID)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected.ext, ext)
			require.Equal(t, tt.expected.usage, usage)
		})
	}
}

func TestEffectiveUsage(t *testing.T) {
	registry := NewDefaultRegistry()

	require.Equal(t, entities.UsageModeSingleUse, registry.PolicyFor("0001").EffectiveUsage(entities.UsageModeReusable))
	require.Equal(t, entities.UsageModeReusable, registry.PolicyFor("0010").EffectiveUsage(entities.UsageModeReusable))
	require.Equal(t, entities.UsageModeSingleUse, registry.PolicyFor("0010").EffectiveUsage(entities.UsageModeSingleUse))
	require.Equal(t, entities.UsageModeReusable, registry.PolicyFor("0010").EffectiveUsage(""))
}
