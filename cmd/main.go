package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gmarcondes/papelaria-fulfillment/internal/app"
	"github.com/gmarcondes/papelaria-fulfillment/internal/clients"
	"github.com/gmarcondes/papelaria-fulfillment/internal/config"
	"github.com/gmarcondes/papelaria-fulfillment/internal/handler"
	"github.com/gmarcondes/papelaria-fulfillment/internal/postgres"
	"github.com/gmarcondes/papelaria-fulfillment/internal/repo"
	"github.com/gmarcondes/papelaria-fulfillment/internal/service"
	"github.com/gmarcondes/papelaria-fulfillment/internal/shipping"
	"github.com/gmarcondes/papelaria-fulfillment/pkg/cache"
	"github.com/gmarcondes/papelaria-fulfillment/pkg/keyedlimit"
	"github.com/gmarcondes/papelaria-fulfillment/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Papelaria Fulfillment API
// @version         1.0
// @description     Fluxo de pedidos e cálculo de frete
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	settingsRepo := repo.NewSettingsRepo(db)
	txManager := trm.NewManager(db)

	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	quoteCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache)

	carrier := clients.NewCarrierClient(conf.Carrier.BaseURL, conf.Carrier.Timeout)
	aggregator := shipping.NewAggregator(logger, orderRepo)
	quoteEngine := shipping.NewEngine(logger, carrier, aggregator, settingsRepo, quoteCache, conf.Carrier.Timeout)
	panicIfErr("invalid pricing table", shipping.DefaultPricingTable().Validate())

	cepClient := clients.NewCEPClient(conf.CEP.BaseURL, conf.CEP.Timeout)
	trackingClient := clients.NewTrackingClient(conf.Tracking.BaseURL, conf.Tracking.Timeout)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, quoteEngine, cepClient, trackingClient)

	limiter := keyedlimit.NewMemoryStore(conf.RateLimit.MaxAttempts, conf.RateLimit.Window)

	app := app.New(logger, conf, limiter)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, quoteCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
