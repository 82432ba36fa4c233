package interaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/commercegate/paylink-console-service/internal/apierrors"
	"github.com/commercegate/paylink-console-service/internal/entities"
	"github.com/commercegate/paylink-console-service/internal/gateways"
	"github.com/commercegate/paylink-console-service/internal/repository/cache"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams/paylinkapi"
	"github.com/commercegate/paylink-console-service/internal/restapi/common"
)

// ListPaymentLinks serves a filtered page, from cache when a previous
// read with the same filter combination is still fresh. The "all"
// sentinel and empty values never reach the upstream, and the gateway
// filter goes out under its canonical name.
func (s *serviceInteractor) ListPaymentLinks(ctx context.Context, query entities.LinkQuery) (*entities.LinkPage, error) {
	cacheKey := cache.PageKey(query)
	if page, ok := s.store.GetPage(ctx, cacheKey); ok {
		return page, nil
	}

	filter := paylinkapi.ListFilter{
		Status: dropAllSentinel(query.Status),
		Type:   dropAllSentinel(query.Type),
		Search: query.Search,
		Page:   query.Page,
		Limit:  query.Limit,
	}

	if gatewayID := dropAllSentinel(query.GatewayID); gatewayID != "" {
		filter.Gateway = s.registry.NameFromID(gatewayID)
	}

	response, err := s.payClient.ListPaymentLinks(ctx, filter)
	if err != nil {
		return nil, s.translateDownstreamError(err, "payment link listing failed")
	}

	page := s.pageFromWire(response)
	s.store.SetPage(ctx, cacheKey, page)

	return page, nil
}

func (s *serviceInteractor) GetPaymentLink(ctx context.Context, id string) (*entities.PaymentLink, error) {
	if id == "" {
		return nil, apierrors.NewBadRequest("payment link id must not be empty")
	}

	if link, ok := s.store.GetLink(ctx, id); ok {
		return link, nil
	}

	dto, err := s.payClient.GetPaymentLink(ctx, id)
	if err != nil {
		return nil, s.translateDownstreamError(err, fmt.Sprintf("payment link %s does not exist", id))
	}

	link := s.linkFromWire(dto)
	s.store.SetLink(ctx, id, &link)

	return &link, nil
}

// CreatePaymentLink runs the full create pipeline: shop profile
// precheck, gateway policy validation, payload assembly, upstream call,
// then cache invalidation and the audit record. The gateway policy can
// reject the draft before any network call towards the payment API.
func (s *serviceInteractor) CreatePaymentLink(ctx context.Context, request *entities.CreateLinkRequest) (*entities.PaymentLink, error) {
	if request == nil {
		return nil, apierrors.NewBadRequest("create request must not be empty")
	}

	policy := s.registry.PolicyFor(request.GatewayID)
	ext, usage, err := policy.Apply(request)
	if err != nil {
		return nil, err
	}

	if err := s.checkCurrencyAllowed(request.Currency); err != nil {
		return nil, err
	}

	profile, err := s.shopClient.GetShopProfile(ctx)
	if err != nil {
		s.logger.Error("could not load shop profile. [error]: %v", err)
		return nil, apierrors.NewPrecheck("shop profile is unavailable")
	}

	if profile.PublicKey == "" {
		return nil, apierrors.NewPrecheck("shop profile carries no public key")
	}

	orderID := fmt.Sprintf("link_%s", uuid.NewString())

	payload := paylinkapi.CreatePaymentRequestDto{
		PublicKey:  profile.PublicKey,
		Gateway:    s.registry.NameFromID(request.GatewayID),
		OrderID:    orderID,
		Amount:     request.Amount,
		Currency:   request.Currency,
		Usage:      usage.WireUsage(),
		ExpiresAt:  request.ExpiresAt,
		SuccessURL: request.SuccessURL,
		FailURL:    request.FailURL,

		WireExtensions: ext,
	}

	// customer contact fields only make sense on a link that is paid once
	if usage == entities.UsageModeSingleUse {
		payload.CustomerEmail = request.CustomerEmail
		payload.CustomerName = request.CustomerName
	}

	result, err := s.payClient.CreatePayment(ctx, payload)
	if err != nil {
		return nil, s.translateDownstreamError(err, "payment link creation was rejected")
	}

	link := s.mergeCreateResult(request, result, ext, usage, orderID)

	if err := s.store.InvalidatePages(ctx); err != nil {
		s.logger.Warn("could not invalidate cached listings after create. [error]: %v", err)
	}
	s.store.SetLink(ctx, link.ID, link)

	s.recordAudit(ctx, link, entities.AuditActionCreate)

	return link, nil
}

// mergeCreateResult builds the full record from the create response,
// which only echoes id, payment url and status, and the submitted draft.
func (s *serviceInteractor) mergeCreateResult(request *entities.CreateLinkRequest,
	result paylinkapi.CreateResultDto,
	ext gateways.WireExtensions,
	usage entities.UsageMode,
	orderID string,
) *entities.PaymentLink {
	status := entities.LinkStatusPending
	if result.Status != "" {
		status = entities.LinkStatusFromWire(result.Status)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	return &entities.PaymentLink{
		ID:         result.ID,
		GatewayID:  request.GatewayID,
		Amount:     request.Amount,
		Currency:   request.Currency,
		UsageMode:  usage,
		Status:     status,
		PaymentURL: result.PaymentURL,
		SuccessURL: request.SuccessURL,
		FailURL:    request.FailURL,
		ExpiresAt:  request.ExpiresAt,
		OrderID:    orderID,
		CreatedAt:  now,
		UpdatedAt:  now,

		SourceCurrency:   ext.SourceCurrency,
		Country:          ext.Country,
		Language:         ext.Language,
		AmountIsEditable: ext.AmountIsEditable,
		MaxPayments:      ext.MaxPayments,
		CustomerID:       ext.CustomerID,
		ExpiryDate:       ext.ExpiryDate,
	}
}

func (s *serviceInteractor) UpdatePaymentLink(ctx context.Context, id string, request *entities.UpdateLinkRequest) (*entities.PaymentLink, error) {
	if id == "" {
		return nil, apierrors.NewBadRequest("payment link id must not be empty")
	}

	if request == nil {
		return nil, apierrors.NewBadRequest("update request must not be empty")
	}

	payload := paylinkapi.UpdatePaymentRequestDto{
		Amount:     request.Amount,
		Currency:   request.Currency,
		ExpiresAt:  request.ExpiresAt,
		SuccessURL: request.SuccessURL,
		FailURL:    request.FailURL,
	}

	if request.GatewayID != nil {
		name := s.registry.NameFromID(*request.GatewayID)
		payload.Gateway = &name
	}

	if request.UsageMode != nil {
		usage := request.UsageMode.WireUsage()
		payload.Usage = &usage
	}

	dto, err := s.payClient.UpdatePaymentLink(ctx, id, payload)
	if err != nil {
		return nil, s.translateDownstreamError(err, fmt.Sprintf("payment link %s does not exist", id))
	}

	link := s.linkFromWire(dto)

	if err := s.store.InvalidatePages(ctx); err != nil {
		s.logger.Warn("could not invalidate cached listings after update. [error]: %v", err)
	}
	s.store.SetLink(ctx, id, &link)

	s.recordAudit(ctx, &link, entities.AuditActionUpdate)

	return &link, nil
}

func (s *serviceInteractor) DeletePaymentLink(ctx context.Context, id string) error {
	if id == "" {
		return apierrors.NewBadRequest("payment link id must not be empty")
	}

	if err := s.payClient.DeletePaymentLink(ctx, id); err != nil {
		return s.translateDownstreamError(err, fmt.Sprintf("payment link %s does not exist", id))
	}

	if err := s.store.InvalidatePages(ctx); err != nil {
		s.logger.Warn("could not invalidate cached listings after delete. [error]: %v", err)
	}
	if err := s.store.InvalidateLink(ctx, id); err != nil {
		s.logger.Warn("could not invalidate cached link %s. [error]: %v", id, err)
	}

	s.recordAudit(ctx, &entities.PaymentLink{ID: id}, entities.AuditActionDelete)

	return nil
}

// TogglePaymentLinkStatus sets a link to ACTIVE or INACTIVE. Terminal
// and transient statuses are owned by the upstream and cannot be set
// from the console.
func (s *serviceInteractor) TogglePaymentLinkStatus(ctx context.Context, id string, target entities.LinkStatus) (*entities.PaymentLink, error) {
	if id == "" {
		return nil, apierrors.NewBadRequest("payment link id must not be empty")
	}

	if target != entities.LinkStatusActive && target != entities.LinkStatusInactive {
		return nil, apierrors.NewBadRequest(fmt.Sprintf("status can only be toggled to %s or %s", entities.LinkStatusActive, entities.LinkStatusInactive))
	}

	dto, err := s.payClient.UpdatePaymentLinkStatus(ctx, id, string(target))
	if err != nil {
		return nil, s.translateDownstreamError(err, fmt.Sprintf("payment link %s does not exist", id))
	}

	link := s.linkFromWire(dto)

	if err := s.store.InvalidatePages(ctx); err != nil {
		s.logger.Warn("could not invalidate cached listings after status change. [error]: %v", err)
	}
	s.store.SetLink(ctx, id, &link)

	s.recordAudit(ctx, &link, entities.AuditActionStatusChange)

	return &link, nil
}

// GetPublicPaymentLink resolves a link by its public token. This read is
// deliberately not cached, the payer-facing page must see status changes
// immediately.
func (s *serviceInteractor) GetPublicPaymentLink(ctx context.Context, token string) (*entities.PaymentLink, error) {
	if token == "" {
		return nil, apierrors.NewBadRequest("public link token must not be empty")
	}

	dto, err := s.payClient.GetPublicPaymentLink(ctx, token)
	if err != nil {
		return nil, s.translateDownstreamError(err, "no payment link exists for this token")
	}

	link := s.linkFromWire(dto)
	return &link, nil
}

// ListShopGateways returns the descriptors for the gateways enabled on
// the shop profile, in profile order. Gateways the catalog does not know
// still show up, with a synthesized label.
func (s *serviceInteractor) ListShopGateways(ctx context.Context) ([]gateways.Descriptor, error) {
	profile, err := s.shopClient.GetShopProfile(ctx)
	if err != nil {
		return nil, s.translateDownstreamError(err, "shop profile does not exist")
	}

	ids := s.registry.NamesToIDs(profile.PaymentGateways)
	descriptors := make([]gateways.Descriptor, 0, len(ids))
	for _, id := range ids {
		if d, ok := s.registry.Describe(id); ok {
			descriptors = append(descriptors, d)
			continue
		}

		descriptors = append(descriptors, gateways.Descriptor{
			ID:          id,
			DisplayName: s.registry.DisplayLabel(id),
		})
	}

	return descriptors, nil
}

func (s *serviceInteractor) ListGatewayDescriptors(_ context.Context) []gateways.Descriptor {
	return s.registry.AllDescriptors()
}

func (s *serviceInteractor) GetLinkAuditTrail(ctx context.Context, linkID string) ([]entities.LinkAuditEntry, error) {
	if linkID == "" {
		return nil, apierrors.NewBadRequest("payment link id must not be empty")
	}

	return s.auditLog.GetLinkAuditTrail(ctx, linkID)
}

func (s *serviceInteractor) checkCurrencyAllowed(currency string) error {
	if len(s.allowedCurrencies) == 0 {
		return nil
	}

	for _, allowed := range s.allowedCurrencies {
		if currency == allowed {
			return nil
		}
	}

	return apierrors.NewBadRequest(fmt.Sprintf("currency %s is not in the list of allowed currencies", currency))
}

// recordAudit writes the local audit entry. A failing audit write is
// logged but never fails the operation that already succeeded upstream.
func (s *serviceInteractor) recordAudit(ctx context.Context, link *entities.PaymentLink, action entities.AuditAction) {
	entry := entities.LinkAuditEntry{
		LinkID:    link.ID,
		OrderID:   link.OrderID,
		GatewayID: link.GatewayID,
		Action:    action,
		Status:    string(link.Status),
		Actor:     actorFromContext(ctx),
		RequestID: common.GetRequestID(ctx),
	}

	if err := s.auditLog.RecordLinkAudit(ctx, entry); err != nil {
		s.logger.Error("could not record audit entry for payment link %s. [error]: %v", link.ID, err)
	}
}

func actorFromContext(ctx context.Context) string {
	if claims, ok := ctx.Value(common.CtxKeyClaims{}).(*common.AllClaims); ok {
		return claims.Subject
	}

	if _, ok := ctx.Value(common.CtxKeyAPIKey{}).(string); ok {
		return "api"
	}

	return ""
}

// dropAllSentinel turns the UI's "all" filter sentinel into an absent
// filter value.
func dropAllSentinel(value string) string {
	if value == entities.FilterAll {
		return ""
	}

	return value
}

// translateDownstreamError maps the transport sentinels onto the error
// taxonomy the REST layer understands.
func (s *serviceInteractor) translateDownstreamError(err error, notFoundDetails string) error {
	if errors.Is(err, downstreams.ErrNotFound) {
		return apierrors.NewNotFound(notFoundDetails)
	}

	if errors.Is(err, downstreams.ErrDownStreamUnavailable) {
		return apierrors.NewBadGateway("the upstream payment service could not be reached")
	}

	return err
}
