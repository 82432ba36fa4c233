package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/commercegate/paylink-console-service/internal/config"
	"github.com/commercegate/paylink-console-service/internal/interaction"
	"github.com/commercegate/paylink-console-service/internal/logging"
	"github.com/commercegate/paylink-console-service/internal/repository/cache"
	cacheinmemory "github.com/commercegate/paylink-console-service/internal/repository/cache/inmemory"
	cacheredis "github.com/commercegate/paylink-console-service/internal/repository/cache/redis"
	"github.com/commercegate/paylink-console-service/internal/repository/database"
	"github.com/commercegate/paylink-console-service/internal/repository/database/inmemory"
	"github.com/commercegate/paylink-console-service/internal/repository/database/mysql"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams/paylinkapi"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams/shopservice"
	"github.com/commercegate/paylink-console-service/internal/server"
)

func main() {
	// optional, local development convenience
	_ = godotenv.Load()

	configFilePath := flag.String("config", "config.yaml", "location of the configuration file")
	flag.Parse()

	logger := logging.NewLogger()

	conf, err := config.LoadConfiguration(*configFilePath, logger.Warn)
	if err != nil {
		logger.Fatal("could not load configuration. [error]: %v", err)
	}

	logging.ApplySeverity(conf.Logging.Severity)

	registry, err := conf.GatewayRegistry()
	if err != nil {
		logger.Fatal("could not build gateway registry. [error]: %v", err)
	}

	repo, err := newRepository(conf, logger)
	if err != nil {
		logger.Fatal("could not connect to database. [error]: %v", err)
	}

	if err := repo.Migrate(); err != nil {
		logger.Fatal("could not migrate database. [error]: %v", err)
	}

	store, err := newCacheStore(conf)
	if err != nil {
		logger.Fatal("could not connect to cache. [error]: %v", err)
	}

	payClient, err := paylinkapi.New(conf.Service.PaylinkAPI, conf.Security.Fixed.Api)
	if err != nil {
		logger.Fatal("could not create payment link api client. [error]: %v", err)
	}

	shopClient, err := shopservice.New(conf.Service.ShopService)
	if err != nil {
		logger.Fatal("could not create shop service client. [error]: %v", err)
	}

	interactor, err := interaction.NewServiceInteractor(registry, payClient, shopClient, store, repo, conf.Service.AllowedCurrencies, logger)
	if err != nil {
		logger.Fatal("could not create service interactor. [error]: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := server.CreateRouter(interactor, conf.Security)
	srv := server.NewServer(ctx, &conf.Server, router)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		logger.Info("stopping service now")
		cancel()

		tCtx, tcancel := context.WithTimeout(context.Background(), time.Second*5)
		defer tcancel()

		if err := srv.Shutdown(tCtx); err != nil {
			logger.Fatal("could not shut down server gracefully. [error]: %v", err)
		}
	}()

	logger.Info("listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped unexpectedly. [error]: %v", err)
	}

	logger.Info("service shut down complete")
}

func newRepository(conf *config.Application, logger logging.Logger) (database.Repository, error) {
	switch conf.Database.Use {
	case config.Mysql:
		return mysql.NewMySQLConnector(conf.Database, logger)
	default:
		logger.Warn("using in-memory audit storage, entries are lost on restart")
		return inmemory.NewInMemoryProvider(), nil
	}
}

func newCacheStore(conf *config.Application) (cache.Store, error) {
	ttl := time.Second * time.Duration(conf.Cache.CacheTTLSeconds())

	switch conf.Cache.Use {
	case config.CacheRedis:
		return cacheredis.NewRedisStore(conf.Cache.RedisURL, ttl)
	default:
		return cacheinmemory.NewInMemoryStore(ttl), nil
	}
}
