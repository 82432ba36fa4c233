package interaction

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/commercegate/paylink-console-service/internal/apierrors"
	"github.com/commercegate/paylink-console-service/internal/entities"
	"github.com/commercegate/paylink-console-service/internal/gateways"
	"github.com/commercegate/paylink-console-service/internal/logging"
	cacheinmemory "github.com/commercegate/paylink-console-service/internal/repository/cache/inmemory"
	"github.com/commercegate/paylink-console-service/internal/repository/database/inmemory"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams/paylinkapi"
)

func newTestInteractor(t *testing.T, payMock *PaylinkAPIMock, shopMock *ShopServiceMock, allowedCurrencies []string) Interactor {
	t.Helper()

	i, err := NewServiceInteractor(
		gateways.NewDefaultRegistry(),
		payMock,
		shopMock,
		cacheinmemory.NewInMemoryStore(time.Minute),
		inmemory.NewInMemoryProvider(),
		allowedCurrencies,
		logging.NewNoopLogger(),
	)
	require.NoError(t, err)

	return i
}

func validShopMock() *ShopServiceMock {
	return &ShopServiceMock{
		profile: entities.ShopProfile{
			PublicKey:       "pk_test_1234567890",
			PaymentGateways: []string{"Rapyd", "Noda"},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestCreatePaymentLinkAssemblesWirePayload(t *testing.T) {
	payMock := &PaylinkAPIMock{
		createResponse: paylinkapi.CreateResultDto{
			ID:         "pl-123",
			PaymentURL: "https://pay.example.com/pl-123",
			Status:     "pending",
		},
	}
	shopMock := validShopMock()
	i := newTestInteractor(t, payMock, shopMock, nil)

	link, err := i.CreatePaymentLink(context.Background(), &entities.CreateLinkRequest{
		GatewayID:   "0010",
		Amount:      floatPtr(49.99),
		Currency:    "USD",
		UsageMode:   entities.UsageModeReusable,
		SuccessURL:  "https://shop.example.com/thanks",
		Country:     "US",
		MaxPayments: 5,
	})
	require.NoError(t, err)

	require.Len(t, payMock.createCalls, 1)
	payload := payMock.createCalls[0]

	require.Equal(t, "pk_test_1234567890", payload.PublicKey)
	require.Equal(t, "Rapyd", payload.Gateway)
	require.Equal(t, "REUSABLE", payload.Usage)
	require.Equal(t, "USD", payload.Currency)
	require.Equal(t, 49.99, *payload.Amount)
	require.Equal(t, "US", payload.Country)
	require.Equal(t, 5, payload.MaxPayments)
	require.True(t, strings.HasPrefix(payload.OrderID, "link_"))

	require.Equal(t, "pl-123", link.ID)
	require.Equal(t, "0010", link.GatewayID)
	require.Equal(t, entities.LinkStatusPending, link.Status)
	require.Equal(t, "https://pay.example.com/pl-123", link.PaymentURL)
	require.Equal(t, payload.OrderID, link.OrderID)
	require.NotEmpty(t, link.CreatedAt)

	trail, err := i.GetLinkAuditTrail(context.Background(), "pl-123")
	require.NoError(t, err)
	require.Len(t, trail, 1)
	require.Equal(t, entities.AuditActionCreate, trail[0].Action)
	require.Equal(t, "0010", trail[0].GatewayID)
}

func TestCreatePaymentLinkFailsFastOnMissingRequiredField(t *testing.T) {
	payMock := &PaylinkAPIMock{}
	shopMock := validShopMock()
	i := newTestInteractor(t, payMock, shopMock, nil)

	link, err := i.CreatePaymentLink(context.Background(), &entities.CreateLinkRequest{
		GatewayID: "0001",
		Currency:  "EUR",
		UsageMode: entities.UsageModeSingleUse,
	})
	require.Nil(t, link)

	validationErr := apierrors.AsValidation(err)
	require.NotNil(t, validationErr)
	require.Equal(t, "sourceCurrency", validationErr.Field)
	require.Equal(t, "0001", validationErr.GatewayID)

	// validation happens before any downstream contact
	require.Empty(t, payMock.createCalls)
	require.Zero(t, shopMock.calls)
}

func TestCreatePaymentLinkForcesSingleUseOnCryptoGateway(t *testing.T) {
	payMock := &PaylinkAPIMock{
		createResponse: paylinkapi.CreateResultDto{ID: "pl-9"},
	}
	i := newTestInteractor(t, payMock, validShopMock(), nil)

	link, err := i.CreatePaymentLink(context.Background(), &entities.CreateLinkRequest{
		GatewayID:      "0001",
		Currency:       "EUR",
		UsageMode:      entities.UsageModeReusable,
		SourceCurrency: "BTC",
		CustomerEmail:  "payer@example.com",
	})
	require.NoError(t, err)

	require.Len(t, payMock.createCalls, 1)
	require.Equal(t, "ONCE", payMock.createCalls[0].Usage)
	require.Equal(t, "BTC", payMock.createCalls[0].SourceCurrency)
	require.Equal(t, "payer@example.com", payMock.createCalls[0].CustomerEmail)
	require.Equal(t, entities.UsageModeSingleUse, link.UsageMode)
}

func TestCreatePaymentLinkDropsCustomerFieldsOnReusableLinks(t *testing.T) {
	payMock := &PaylinkAPIMock{
		createResponse: paylinkapi.CreateResultDto{ID: "pl-10"},
	}
	i := newTestInteractor(t, payMock, validShopMock(), nil)

	_, err := i.CreatePaymentLink(context.Background(), &entities.CreateLinkRequest{
		GatewayID:     "0010",
		Currency:      "USD",
		UsageMode:     entities.UsageModeReusable,
		Country:       "US",
		CustomerEmail: "payer@example.com",
		CustomerName:  "Payer",
	})
	require.NoError(t, err)

	require.Len(t, payMock.createCalls, 1)
	require.Empty(t, payMock.createCalls[0].CustomerEmail)
	require.Empty(t, payMock.createCalls[0].CustomerName)
}

func TestCreatePaymentLinkPrechecks(t *testing.T) {
	tests := []struct {
		name     string
		shopMock *ShopServiceMock
	}{
		{
			name:     "should fail when shop profile cannot be loaded",
			shopMock: &ShopServiceMock{err: downstreams.ErrDownStreamUnavailable},
		},
		{
			name:     "should fail when shop profile has no public key",
			shopMock: &ShopServiceMock{profile: entities.ShopProfile{PaymentGateways: []string{"Rapyd"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payMock := &PaylinkAPIMock{}
			i := newTestInteractor(t, payMock, tt.shopMock, nil)

			link, err := i.CreatePaymentLink(context.Background(), &entities.CreateLinkRequest{
				GatewayID: "0100",
				Currency:  "EUR",
				UsageMode: entities.UsageModeSingleUse,
			})
			require.Nil(t, link)
			require.True(t, apierrors.IsPrecheckError(err))
			require.Empty(t, payMock.createCalls)
		})
	}
}

func TestCreatePaymentLinkEnforcesCurrencyAllowList(t *testing.T) {
	payMock := &PaylinkAPIMock{}
	i := newTestInteractor(t, payMock, validShopMock(), []string{"EUR", "USD"})

	link, err := i.CreatePaymentLink(context.Background(), &entities.CreateLinkRequest{
		GatewayID: "0100",
		Currency:  "JPY",
		UsageMode: entities.UsageModeSingleUse,
	})
	require.Nil(t, link)
	require.True(t, apierrors.IsBadRequestError(err))
	require.Empty(t, payMock.createCalls)
}

func TestListPaymentLinksTranslatesFilters(t *testing.T) {
	payMock := &PaylinkAPIMock{
		listResponse: paylinkapi.ListResponseDto{
			Success: true,
			Payments: []paylinkapi.PaymentLinkDto{
				{ID: "pl-1", Gateway: "rapyd", Usage: "ONCE", Status: "active"},
			},
			Pagination: paylinkapi.PaginationDto{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
		},
	}
	i := newTestInteractor(t, payMock, validShopMock(), nil)

	page, err := i.ListPaymentLinks(context.Background(), entities.LinkQuery{
		Status:    "all",
		Type:      "all",
		GatewayID: "0010",
		Page:      1,
		Limit:     20,
	})
	require.NoError(t, err)

	require.Len(t, payMock.listCalls, 1)
	filter := payMock.listCalls[0]
	require.Empty(t, filter.Status)
	require.Empty(t, filter.Type)
	require.Equal(t, "Rapyd", filter.Gateway)

	require.Len(t, page.Links, 1)
	require.Equal(t, "0010", page.Links[0].GatewayID)
	require.Equal(t, entities.UsageModeSingleUse, page.Links[0].UsageMode)
	require.Equal(t, entities.LinkStatusActive, page.Links[0].Status)
}

func TestListPaymentLinksServesRepeatedReadsFromCache(t *testing.T) {
	payMock := &PaylinkAPIMock{
		listResponse: paylinkapi.ListResponseDto{Success: true},
	}
	i := newTestInteractor(t, payMock, validShopMock(), nil)

	query := entities.LinkQuery{Status: "all", Page: 1, Limit: 20}

	_, err := i.ListPaymentLinks(context.Background(), query)
	require.NoError(t, err)
	_, err = i.ListPaymentLinks(context.Background(), query)
	require.NoError(t, err)

	require.Len(t, payMock.listCalls, 1)
}

func TestDeletePaymentLinkInvalidatesCachedListings(t *testing.T) {
	payMock := &PaylinkAPIMock{
		listResponse: paylinkapi.ListResponseDto{Success: true},
	}
	i := newTestInteractor(t, payMock, validShopMock(), nil)

	query := entities.LinkQuery{Page: 1, Limit: 20}

	_, err := i.ListPaymentLinks(context.Background(), query)
	require.NoError(t, err)

	require.NoError(t, i.DeletePaymentLink(context.Background(), "pl-1"))

	_, err = i.ListPaymentLinks(context.Background(), query)
	require.NoError(t, err)

	require.Len(t, payMock.listCalls, 2)
	require.Equal(t, []string{"pl-1"}, payMock.deleteCalls)
}

func TestGetPaymentLink(t *testing.T) {
	payMock := &PaylinkAPIMock{
		linkResponse: paylinkapi.PaymentLinkDto{ID: "pl-5", Gateway: "Noda", Usage: "REUSABLE", Status: "ACTIVE"},
	}
	i := newTestInteractor(t, payMock, validShopMock(), nil)

	link, err := i.GetPaymentLink(context.Background(), "pl-5")
	require.NoError(t, err)
	require.Equal(t, "1000", link.GatewayID)

	// second read is served from the detail cache
	_, err = i.GetPaymentLink(context.Background(), "pl-5")
	require.NoError(t, err)
	require.Len(t, payMock.getCalls, 1)
}

func TestGetPaymentLinkRejectsEmptyID(t *testing.T) {
	i := newTestInteractor(t, &PaylinkAPIMock{}, validShopMock(), nil)

	link, err := i.GetPaymentLink(context.Background(), "")
	require.Nil(t, link)
	require.True(t, apierrors.IsBadRequestError(err))
}

func TestDownstreamErrorTranslation(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
	}{
		{
			name:      "should translate missing link into not found",
			err:       downstreams.ErrNotFound,
			predicate: apierrors.IsNotFoundError,
		},
		{
			name:      "should translate unreachable upstream into bad gateway",
			err:       downstreams.ErrDownStreamUnavailable,
			predicate: apierrors.IsBadGatewayError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payMock := &PaylinkAPIMock{err: tt.err}
			i := newTestInteractor(t, payMock, validShopMock(), nil)

			link, err := i.GetPaymentLink(context.Background(), "pl-404")
			require.Nil(t, link)
			require.True(t, tt.predicate(err))
		})
	}
}

func TestTogglePaymentLinkStatus(t *testing.T) {
	payMock := &PaylinkAPIMock{
		linkResponse: paylinkapi.PaymentLinkDto{ID: "pl-7", Gateway: "Plisio", Status: "INACTIVE", Usage: "ONCE"},
	}
	i := newTestInteractor(t, payMock, validShopMock(), nil)

	link, err := i.TogglePaymentLinkStatus(context.Background(), "pl-7", entities.LinkStatusInactive)
	require.NoError(t, err)
	require.Equal(t, entities.LinkStatusInactive, link.Status)
	require.Equal(t, []string{"INACTIVE"}, payMock.statusCalls)
}

func TestTogglePaymentLinkStatusRejectsUnsupportedTargets(t *testing.T) {
	tests := []struct {
		name   string
		target entities.LinkStatus
	}{
		{name: "should reject completed", target: entities.LinkStatusCompleted},
		{name: "should reject pending", target: entities.LinkStatusPending},
		{name: "should reject expired", target: entities.LinkStatusExpired},
		{name: "should reject unknown values", target: entities.LinkStatus("BROKEN")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payMock := &PaylinkAPIMock{}
			i := newTestInteractor(t, payMock, validShopMock(), nil)

			link, err := i.TogglePaymentLinkStatus(context.Background(), "pl-7", tt.target)
			require.Nil(t, link)
			require.True(t, apierrors.IsBadRequestError(err))
			require.Empty(t, payMock.statusCalls)
		})
	}
}

func TestUpdatePaymentLinkTranslatesGatewayAndUsage(t *testing.T) {
	payMock := &PaylinkAPIMock{
		linkResponse: paylinkapi.PaymentLinkDto{ID: "pl-8", Gateway: "Noda", Usage: "REUSABLE", Status: "ACTIVE"},
	}
	i := newTestInteractor(t, payMock, validShopMock(), nil)

	gatewayID := "1000"
	usage := entities.UsageModeReusable

	link, err := i.UpdatePaymentLink(context.Background(), "pl-8", &entities.UpdateLinkRequest{
		GatewayID: &gatewayID,
		UsageMode: &usage,
		Amount:    floatPtr(12.5),
	})
	require.NoError(t, err)
	require.Equal(t, "1000", link.GatewayID)

	require.Len(t, payMock.updateCalls, 1)
	payload := payMock.updateCalls[0]
	require.Equal(t, "Noda", *payload.Gateway)
	require.Equal(t, "REUSABLE", *payload.Usage)
	require.Equal(t, 12.5, *payload.Amount)
}

func TestGetPublicPaymentLink(t *testing.T) {
	payMock := &PaylinkAPIMock{
		linkResponse: paylinkapi.PaymentLinkDto{ID: "pl-11", Gateway: "Rapyd", Usage: "ONCE", Status: "ACTIVE"},
	}
	i := newTestInteractor(t, payMock, validShopMock(), nil)

	link, err := i.GetPublicPaymentLink(context.Background(), "tok-abc")
	require.NoError(t, err)
	require.Equal(t, "pl-11", link.ID)
	require.Equal(t, []string{"tok-abc"}, payMock.publicCalls)
}

func TestListShopGateways(t *testing.T) {
	shopMock := &ShopServiceMock{
		profile: entities.ShopProfile{
			PublicKey:       "pk_test",
			PaymentGateways: []string{"Noda", "plisio", "Stripe"},
		},
	}
	i := newTestInteractor(t, &PaylinkAPIMock{}, shopMock, nil)

	descriptors, err := i.ListShopGateways(context.Background())
	require.NoError(t, err)
	require.Len(t, descriptors, 3)

	require.Equal(t, "1000", descriptors[0].ID)
	require.Equal(t, "Open Banking (EU)", descriptors[0].DisplayName)

	require.Equal(t, "0001", descriptors[1].ID)

	// unknown gateways still show up, with a synthesized label
	require.Equal(t, "Stripe", descriptors[2].ID)
	require.Equal(t, "Gateway Stripe", descriptors[2].DisplayName)
}

func TestListGatewayDescriptors(t *testing.T) {
	i := newTestInteractor(t, &PaylinkAPIMock{}, validShopMock(), nil)

	descriptors := i.ListGatewayDescriptors(context.Background())
	require.Len(t, descriptors, 4)
}
