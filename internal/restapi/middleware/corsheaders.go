package middleware

import (
	"net/http"

	"github.com/go-http-utils/headers"

	"github.com/commercegate/paylink-console-service/internal/config"
	"github.com/commercegate/paylink-console-service/internal/logging"
)

func corsHeadersHandler(next http.Handler, conf *config.SecurityConfig) func(w http.ResponseWriter, r *http.Request) {
	handlerFunc := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.LoggerFromContext(ctx)

		if conf.Cors.DisableCors {
			logger.Warn("sending fully permissive CORS headers, should only be used in local development and testing")
			w.Header().Set(headers.AccessControlAllowOrigin, "*")
			w.Header().Set(headers.AccessControlAllowMethods, "POST, GET, OPTIONS, PUT, PATCH, DELETE")
			w.Header().Set(headers.AccessControlAllowHeaders, "content-type, authorization, x-api-key, x-request-id")
			w.Header().Set(headers.AccessControlExposeHeaders, "location, x-request-id")
		} else if conf.Cors.AllowOrigin != "" {
			w.Header().Set(headers.AccessControlAllowOrigin, conf.Cors.AllowOrigin)
			w.Header().Set(headers.AccessControlAllowMethods, "POST, GET, OPTIONS, PUT, PATCH, DELETE")
			w.Header().Set(headers.AccessControlAllowHeaders, "content-type, authorization, x-api-key, x-request-id")
			w.Header().Set(headers.AccessControlAllowCredentials, "true")
			w.Header().Set(headers.AccessControlExposeHeaders, "location, x-request-id")
		}

		if r.Method == http.MethodOptions {
			logger.Debug("received OPTIONS preflight request")
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	}
	return handlerFunc
}

func CorsHeadersMiddleware(conf *config.SecurityConfig) func(http.Handler) http.Handler {
	middlewareCreator := func(next http.Handler) http.Handler {
		return http.HandlerFunc(corsHeadersHandler(next, conf))
	}
	return middlewareCreator
}
