package interaction

import (
	"github.com/commercegate/paylink-console-service/internal/entities"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams/paylinkapi"
)

// linkFromWire converts the upstream record into the UI shape. The
// gateway name is translated to its opaque id here, so no canonical name
// ever leaves the service.
func (s *serviceInteractor) linkFromWire(dto paylinkapi.PaymentLinkDto) entities.PaymentLink {
	return entities.PaymentLink{
		ID:         dto.ID,
		GatewayID:  s.registry.IDFromName(dto.Gateway),
		Amount:     dto.Amount,
		Currency:   dto.Currency,
		UsageMode:  entities.UsageModeFromWire(dto.Usage),
		Status:     entities.LinkStatusFromWire(dto.Status),
		PaymentURL: dto.PaymentURL,
		SuccessURL: dto.SuccessURL,
		FailURL:    dto.FailURL,
		ExpiresAt:  dto.ExpiresAt,
		OrderID:    dto.OrderID,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,

		SourceCurrency:   dto.SourceCurrency,
		Country:          dto.Country,
		Language:         dto.Language,
		AmountIsEditable: dto.AmountIsEditable,
		MaxPayments:      dto.MaxPayments,
		CustomerID:       dto.CustomerID,
		ExpiryDate:       dto.ExpiryDate,
	}
}

func (s *serviceInteractor) pageFromWire(response paylinkapi.ListResponseDto) *entities.LinkPage {
	links := make([]entities.PaymentLink, 0, len(response.Payments))
	for _, dto := range response.Payments {
		links = append(links, s.linkFromWire(dto))
	}

	return &entities.LinkPage{
		Links: links,
		Pagination: entities.Pagination{
			Page:       response.Pagination.Page,
			Limit:      response.Pagination.Limit,
			Total:      response.Pagination.Total,
			TotalPages: response.Pagination.TotalPages,
		},
	}
}
