package shopservice

import (
	"context"

	"github.com/commercegate/paylink-console-service/internal/entities"
)

// ShopService provides the shop profile of the merchant the current
// request acts for: the API public key and the enabled gateways by
// canonical name.
type ShopService interface {
	GetShopProfile(ctx context.Context) (entities.ShopProfile, error)
}
