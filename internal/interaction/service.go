// Package interaction holds the service logic between the REST layer and
// the upstream clients: identity translation, per-gateway request
// shaping, cache maintenance and the local audit trail.
package interaction

import (
	"context"
	"errors"

	"github.com/commercegate/paylink-console-service/internal/entities"
	"github.com/commercegate/paylink-console-service/internal/gateways"
	"github.com/commercegate/paylink-console-service/internal/logging"
	"github.com/commercegate/paylink-console-service/internal/repository/cache"
	"github.com/commercegate/paylink-console-service/internal/repository/database"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams/paylinkapi"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams/shopservice"
)

var _ Interactor = (*serviceInteractor)(nil)

type Interactor interface {
	ListPaymentLinks(ctx context.Context, query entities.LinkQuery) (*entities.LinkPage, error)
	GetPaymentLink(ctx context.Context, id string) (*entities.PaymentLink, error)
	CreatePaymentLink(ctx context.Context, request *entities.CreateLinkRequest) (*entities.PaymentLink, error)
	UpdatePaymentLink(ctx context.Context, id string, request *entities.UpdateLinkRequest) (*entities.PaymentLink, error)
	DeletePaymentLink(ctx context.Context, id string) error
	TogglePaymentLinkStatus(ctx context.Context, id string, target entities.LinkStatus) (*entities.PaymentLink, error)
	GetPublicPaymentLink(ctx context.Context, token string) (*entities.PaymentLink, error)

	ListShopGateways(ctx context.Context) ([]gateways.Descriptor, error)
	ListGatewayDescriptors(ctx context.Context) []gateways.Descriptor

	GetLinkAuditTrail(ctx context.Context, linkID string) ([]entities.LinkAuditEntry, error)
}

type serviceInteractor struct {
	logger            logging.Logger
	registry          *gateways.Registry
	payClient         paylinkapi.PaylinkAPI
	shopClient        shopservice.ShopService
	store             cache.Store
	auditLog          database.Repository
	allowedCurrencies []string
}

func NewServiceInteractor(registry *gateways.Registry,
	payClient paylinkapi.PaylinkAPI,
	shopClient shopservice.ShopService,
	store cache.Store,
	auditLog database.Repository,
	allowedCurrencies []string,
	logger logging.Logger,
) (Interactor, error) {

	if registry == nil {
		return nil, errors.New("gateway registry must not be nil")
	}

	if payClient == nil {
		return nil, errors.New("no payment link api client provided")
	}

	if shopClient == nil {
		return nil, errors.New("no shop service client provided")
	}

	if store == nil {
		return nil, errors.New("cache store must not be nil")
	}

	if auditLog == nil {
		return nil, errors.New("audit repository must not be nil")
	}

	return &serviceInteractor{
		logger:            logger,
		registry:          registry,
		payClient:         payClient,
		shopClient:        shopClient,
		store:             store,
		auditLog:          auditLog,
		allowedCurrencies: allowedCurrencies,
	}, nil
}
