package shopservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/commercegate/paylink-console-service/internal/entities"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams"
)

type Impl struct {
	client  aurestclientapi.Client
	baseUrl string
}

func New(shopServiceBaseUrl string) (ShopService, error) {
	if shopServiceBaseUrl == "" {
		return nil, errors.New("service.shop_service not configured. This service cannot function without the shop service.")
	}

	// the merchant's own JWT is forwarded, the shop service resolves the
	// shop from the token subject
	client, err := downstreams.ClientWith(
		downstreams.JwtForwardingRequestManipulator(),
		"shop-service-breaker",
	)
	if err != nil {
		return nil, err
	}

	return &Impl{
		client:  client,
		baseUrl: shopServiceBaseUrl,
	}, nil
}

type shopProfileDto struct {
	PublicKey       string   `json:"public_key"`
	PaymentGateways []string `json:"payment_gateways"`
}

type shopProfileResponseDto struct {
	Success bool           `json:"success"`
	Data    shopProfileDto `json:"data"`
}

func (i *Impl) GetShopProfile(ctx context.Context) (entities.ShopProfile, error) {
	bodyDto := shopProfileResponseDto{}
	response := aurestclientapi.ParsedResponse{
		Body: &bodyDto,
	}

	requestUrl := fmt.Sprintf("%s/api/rest/v1/shop/profile", i.baseUrl)
	err := i.client.Perform(ctx, http.MethodGet, requestUrl, nil, &response)

	profile := entities.ShopProfile{
		PublicKey:       bodyDto.Data.PublicKey,
		PaymentGateways: bodyDto.Data.PaymentGateways,
	}
	return profile, downstreams.ErrByStatus(err, response.Status)
}
