package v1paymentlinks

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"

	"github.com/commercegate/paylink-console-service/internal/entities"
	"github.com/commercegate/paylink-console-service/internal/interaction"
	"github.com/commercegate/paylink-console-service/internal/logging"
	"github.com/commercegate/paylink-console-service/internal/restapi/common"
	"github.com/commercegate/paylink-console-service/internal/restapi/media"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

type paymentLinkHandler struct {
	interactor interaction.Interactor
}

// Create registers the merchant-facing payment link routes on the
// authenticated router.
func Create(router chi.Router, i interaction.Interactor) {
	handler := paymentLinkHandler{
		interactor: i,
	}

	router.Get("/payment-links", handler.handleList)
	router.Post("/payment-links", handler.handleCreate)
	router.Get("/payment-links/{id}", handler.handleGet)
	router.Patch("/payment-links/{id}", handler.handleUpdate)
	router.Delete("/payment-links/{id}", handler.handleDelete)
	router.Patch("/payment-links/{id}/status", handler.handleStatusToggle)
	router.Get("/payment-links/{id}/audit", handler.handleAuditTrail)
}

// CreatePublic registers the payer-facing route, which runs without
// authentication.
func CreatePublic(router chi.Router, i interaction.Interactor) {
	handler := paymentLinkHandler{
		interactor: i,
	}

	router.Get("/public/payment-links/{token}", handler.handlePublicGet)
}

func (h *paymentLinkHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := common.GetRequestID(ctx)
	logger := logging.LoggerFromContext(ctx)

	query, err := parseLinkQuery(r)
	if err != nil {
		common.SendBadRequestResponse(w, reqID, logger, err.Error())
		return
	}

	page, err := h.interactor.ListPaymentLinks(ctx, query)
	if err != nil {
		common.SendErrorResponse(w, reqID, logger, err)
		return
	}

	sendJson(w, http.StatusOK, page, logger)
}

func (h *paymentLinkHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := common.GetRequestID(ctx)
	logger := logging.LoggerFromContext(ctx)

	link, err := h.interactor.GetPaymentLink(ctx, chi.URLParam(r, "id"))
	if err != nil {
		common.SendErrorResponse(w, reqID, logger, err)
		return
	}

	sendJson(w, http.StatusOK, link, logger)
}

func (h *paymentLinkHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := common.GetRequestID(ctx)
	logger := logging.LoggerFromContext(ctx)

	var dto CreateLinkRequestDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		common.SendBadRequestResponse(w, reqID, logger, "invalid json in request body")
		return
	}

	link, err := h.interactor.CreatePaymentLink(ctx, dto.toCreateRequest())
	if err != nil {
		common.SendErrorResponse(w, reqID, logger, err)
		return
	}

	sendJson(w, http.StatusCreated, link, logger)
}

func (h *paymentLinkHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := common.GetRequestID(ctx)
	logger := logging.LoggerFromContext(ctx)

	var dto UpdateLinkRequestDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		common.SendBadRequestResponse(w, reqID, logger, "invalid json in request body")
		return
	}

	link, err := h.interactor.UpdatePaymentLink(ctx, chi.URLParam(r, "id"), dto.toUpdateRequest())
	if err != nil {
		common.SendErrorResponse(w, reqID, logger, err)
		return
	}

	sendJson(w, http.StatusOK, link, logger)
}

func (h *paymentLinkHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := common.GetRequestID(ctx)
	logger := logging.LoggerFromContext(ctx)

	if err := h.interactor.DeletePaymentLink(ctx, chi.URLParam(r, "id")); err != nil {
		common.SendErrorResponse(w, reqID, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *paymentLinkHandler) handleStatusToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := common.GetRequestID(ctx)
	logger := logging.LoggerFromContext(ctx)

	var dto StatusToggleRequestDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		common.SendBadRequestResponse(w, reqID, logger, "invalid json in request body")
		return
	}

	link, err := h.interactor.TogglePaymentLinkStatus(ctx, chi.URLParam(r, "id"), entities.LinkStatus(dto.Status))
	if err != nil {
		common.SendErrorResponse(w, reqID, logger, err)
		return
	}

	sendJson(w, http.StatusOK, link, logger)
}

func (h *paymentLinkHandler) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := common.GetRequestID(ctx)
	logger := logging.LoggerFromContext(ctx)

	trail, err := h.interactor.GetLinkAuditTrail(ctx, chi.URLParam(r, "id"))
	if err != nil {
		common.SendErrorResponse(w, reqID, logger, err)
		return
	}

	entries := make([]AuditEntryDto, 0, len(trail))
	for _, entry := range trail {
		entries = append(entries, auditEntryDtoFrom(entry))
	}

	sendJson(w, http.StatusOK, AuditTrailDto{Entries: entries}, logger)
}

func (h *paymentLinkHandler) handlePublicGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := common.GetRequestID(ctx)
	logger := logging.LoggerFromContext(ctx)

	link, err := h.interactor.GetPublicPaymentLink(ctx, chi.URLParam(r, "token"))
	if err != nil {
		common.SendErrorResponse(w, reqID, logger, err)
		return
	}

	sendJson(w, http.StatusOK, publicLinkDtoFrom(link), logger)
}

func parseLinkQuery(r *http.Request) (entities.LinkQuery, error) {
	query := entities.LinkQuery{
		Status:    r.URL.Query().Get("status"),
		Type:      r.URL.Query().Get("type"),
		GatewayID: r.URL.Query().Get("gateway"),
		Search:    r.URL.Query().Get("search"),
		Page:      defaultPage,
		Limit:     defaultLimit,
	}

	var err error
	if query.Page, err = parsePositiveInt(r, "page", defaultPage); err != nil {
		return entities.LinkQuery{}, err
	}

	if query.Limit, err = parsePositiveInt(r, "limit", defaultLimit); err != nil {
		return entities.LinkQuery{}, err
	}

	if query.Limit > maxLimit {
		query.Limit = maxLimit
	}

	return query, nil
}

func parsePositiveInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, &queryParamError{name: name, value: raw}
	}

	return value, nil
}

type queryParamError struct {
	name  string
	value string
}

func (e *queryParamError) Error() string {
	return "query parameter " + e.name + " must be a positive integer, got " + e.value
}

func sendJson(w http.ResponseWriter, status int, v interface{}, logger logging.Logger) {
	w.Header().Add(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(status)
	common.EncodeToJSON(w, v, logger)
}
