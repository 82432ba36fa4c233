package v1gateways

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"

	"github.com/commercegate/paylink-console-service/internal/gateways"
	"github.com/commercegate/paylink-console-service/internal/interaction"
	"github.com/commercegate/paylink-console-service/internal/logging"
	"github.com/commercegate/paylink-console-service/internal/restapi/common"
	"github.com/commercegate/paylink-console-service/internal/restapi/media"
)

type gatewayHandler struct {
	interactor interaction.Interactor
}

func Create(router chi.Router, i interaction.Interactor) {
	handler := gatewayHandler{
		interactor: i,
	}

	router.Get("/gateways", handler.handleCatalog)
	router.Get("/shop/gateways", handler.handleShopGateways)
}

type GatewayListDto struct {
	Gateways []gateways.Descriptor `json:"gateways"`
}

// handleCatalog returns every gateway the console knows, independent of
// what the shop has enabled.
func (h *gatewayHandler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.LoggerFromContext(ctx)

	descriptors := h.interactor.ListGatewayDescriptors(ctx)

	sendJson(w, http.StatusOK, GatewayListDto{Gateways: descriptors}, logger)
}

// handleShopGateways returns the gateways enabled on the shop profile.
func (h *gatewayHandler) handleShopGateways(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := common.GetRequestID(ctx)
	logger := logging.LoggerFromContext(ctx)

	descriptors, err := h.interactor.ListShopGateways(ctx)
	if err != nil {
		common.SendErrorResponse(w, reqID, logger, err)
		return
	}

	sendJson(w, http.StatusOK, GatewayListDto{Gateways: descriptors}, logger)
}

func sendJson(w http.ResponseWriter, status int, v interface{}, logger logging.Logger) {
	w.Header().Add(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(status)
	common.EncodeToJSON(w, v, logger)
}
