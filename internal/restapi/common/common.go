package common

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/golang-jwt/jwt/v4"

	"github.com/commercegate/paylink-console-service/internal/apierrors"
	"github.com/commercegate/paylink-console-service/internal/logging"
)

type (
	CtxKeyRequestID struct{}
	CtxKeyToken     struct{}
	CtxKeyAPIKey    struct{}
	CtxKeyClaims    struct{}
)

type GlobalClaims struct {
	Name  string   `json:"name"`
	EMail string   `json:"email"`
	Roles []string `json:"roles"`
}

type CustomClaims struct {
	Global GlobalClaims `json:"global"`
}

type AllClaims struct {
	jwt.RegisteredClaims
	CustomClaims
}

func EncodeToJSON(w http.ResponseWriter, obj interface{}, logger logging.Logger) {
	enc := json.NewEncoder(w)

	if obj != nil {
		err := enc.Encode(obj)

		if err != nil {
			logger.Error("Could not encode response. [error]: %v", err)
		}
	}
}

func SendUnauthorizedResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusUnauthorized, reqID, AuthUnauthorizedMessage, logger, details)
}

func SendBadRequestResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusBadRequest, reqID, RequestParseErrorMessage, logger, details)
}

func SendStatusNotFoundResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusNotFound, reqID, LinkNotFoundMessage, logger, details)
}

func SendForbiddenResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusForbidden, reqID, AuthForbiddenMessage, logger, details)
}

func SendConflictResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusConflict, reqID, RequestConflictMessage, logger, details)
}

func SendInternalServerError(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusInternalServerError, reqID, InternalErrorMessage, logger, details)
}

func SendPreconditionFailedResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusPreconditionFailed, reqID, ShopProfileMessage, logger, details)
}

func SendBadGatewayResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusBadGateway, reqID, UpstreamErrorMessage, logger, details)
}

// SendErrorResponse maps a service layer error onto the appropriate
// status response. Unrecognized errors become 500s.
func SendErrorResponse(w http.ResponseWriter, reqID string, logger logging.Logger, err error) {
	if validationErr := apierrors.AsValidation(err); validationErr != nil {
		details := url.Values{
			"field":   []string{validationErr.Field},
			"gateway": []string{validationErr.GatewayID},
		}
		sendWithDetailValues(w, http.StatusBadRequest, reqID, LinkValidationMessage, logger, details)
		return
	}

	switch {
	case apierrors.IsPrecheckError(err):
		SendPreconditionFailedResponse(w, reqID, logger, err.Error())
	case apierrors.IsNotFoundError(err):
		SendStatusNotFoundResponse(w, reqID, logger, err.Error())
	case apierrors.IsBadGatewayError(err):
		SendBadGatewayResponse(w, reqID, logger, err.Error())
	case apierrors.IsBadRequestError(err):
		SendBadRequestResponse(w, reqID, logger, err.Error())
	case apierrors.IsUnauthorizedError(err):
		SendUnauthorizedResponse(w, reqID, logger, err.Error())
	case apierrors.IsForbiddenError(err):
		SendForbiddenResponse(w, reqID, logger, err.Error())
	case apierrors.IsConflictError(err):
		SendConflictResponse(w, reqID, logger, err.Error())
	default:
		SendInternalServerError(w, reqID, logger, err.Error())
	}
}

func SendResponseWithStatusAndMessage(w http.ResponseWriter, status int, reqID string, message APIErrorMessage, logger logging.Logger, details string) {
	var detailValues url.Values
	if details != "" {
		logger.Debug("Request was not successful: [error]: %s", details)
		detailValues = url.Values{"details": []string{details}}
	}

	sendWithDetailValues(w, status, reqID, message, logger, detailValues)
}

func sendWithDetailValues(w http.ResponseWriter, status int, reqID string, message APIErrorMessage, logger logging.Logger, details url.Values) {
	if reqID == "" {
		logger.Debug("request id is empty")
	}

	w.WriteHeader(status)

	apiErr := NewAPIError(reqID, message, details)
	EncodeToJSON(w, apiErr, logger)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "00000000"
	}
	if reqID, ok := ctx.Value(CtxKeyRequestID{}).(string); ok {
		return reqID
	}
	return "ffffffff"
}
