package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/commercegate/paylink-console-service/internal/config"
	"github.com/commercegate/paylink-console-service/internal/interaction"
	"github.com/commercegate/paylink-console-service/internal/restapi/middleware"
	v1gateways "github.com/commercegate/paylink-console-service/internal/restapi/v1/gateways"
	v1health "github.com/commercegate/paylink-console-service/internal/restapi/v1/health"
	v1paymentlinks "github.com/commercegate/paylink-console-service/internal/restapi/v1/paymentlinks"
)

func NewServer(ctx context.Context, conf *config.ServerConfig, router http.Handler) *http.Server {

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.BaseAddress, conf.Port),
		Handler:      router,
		ReadTimeout:  time.Second * time.Duration(conf.ReadTimeout),
		WriteTimeout: time.Second * time.Duration(conf.WriteTimeout),
		IdleTimeout:  time.Second * time.Duration(conf.IdleTimeout),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}
}

func CreateRouter(i interaction.Interactor, conf config.SecurityConfig) chi.Router {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestIdMiddleware())
	router.Use(middleware.LogRequestIdMiddleware())
	router.Use(middleware.CorsHeadersMiddleware(&conf))

	setupV1Routes(router, i, conf)

	return router
}

func setupV1Routes(router chi.Router, i interaction.Interactor, conf config.SecurityConfig) {
	v1health.Create(router)

	router.Route("/api/rest/v1", func(r chi.Router) {
		// the payer-facing route works without credentials
		v1paymentlinks.CreatePublic(r, i)

		r.Group(func(authed chi.Router) {
			authed.Use(middleware.CheckRequestAuthorization(&conf))
			v1paymentlinks.Create(authed, i)
			v1gateways.Create(authed, i)
		})
	})
}
