package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkStatusFromWire(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected LinkStatus
	}{
		{
			name:     "should upper case lower case wire status",
			input:    "pending",
			expected: LinkStatusPending,
		},
		{
			name:     "should keep upper case wire status",
			input:    "ACTIVE",
			expected: LinkStatusActive,
		},
		{
			name:     "should map legacy disabled onto inactive",
			input:    "disabled",
			expected: LinkStatusInactive,
		},
		{
			name:     "should map legacy paid onto completed",
			input:    "PAID",
			expected: LinkStatusCompleted,
		},
		{
			name:     "should trim surrounding whitespace",
			input:    " expired ",
			expected: LinkStatusExpired,
		},
		{
			name:     "should pass through unknown statuses upper cased",
			input:    "on_hold",
			expected: LinkStatus("ON_HOLD"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, LinkStatusFromWire(tt.input))
		})
	}
}

func TestLinkStatusIsTerminal(t *testing.T) {
	require.True(t, LinkStatusCompleted.IsTerminal())
	require.True(t, LinkStatusFailed.IsTerminal())
	require.True(t, LinkStatusExpired.IsTerminal())

	require.False(t, LinkStatusPending.IsTerminal())
	require.False(t, LinkStatusActive.IsTerminal())
	require.False(t, LinkStatusInactive.IsTerminal())
}

func TestUsageModeFromWire(t *testing.T) {
	require.Equal(t, UsageModeSingleUse, UsageModeFromWire("ONCE"))
	require.Equal(t, UsageModeSingleUse, UsageModeFromWire("once"))
	require.Equal(t, UsageModeReusable, UsageModeFromWire("REUSABLE"))
	require.Equal(t, UsageModeReusable, UsageModeFromWire(""))
	require.Equal(t, UsageModeReusable, UsageModeFromWire("whatever"))
}

func TestUsageModeWireUsage(t *testing.T) {
	require.Equal(t, "ONCE", UsageModeSingleUse.WireUsage())
	require.Equal(t, "REUSABLE", UsageModeReusable.WireUsage())
}

func TestUsageModeFromLegacyType(t *testing.T) {
	require.Equal(t, UsageModeSingleUse, UsageModeFromLegacyType("single"))
	require.Equal(t, UsageModeSingleUse, UsageModeFromLegacyType("Single"))
	require.Equal(t, UsageModeReusable, UsageModeFromLegacyType("multi"))
	require.Equal(t, UsageModeReusable, UsageModeFromLegacyType("subscription"))
}
