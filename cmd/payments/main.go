package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/paychain/paychain/internal/pkg/apikey"
	"github.com/paychain/paychain/internal/pkg/config"
	"github.com/paychain/paychain/internal/pkg/database"
	"github.com/paychain/paychain/internal/pkg/health"
	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/middleware"
	"github.com/paychain/paychain/internal/pkg/nats"
	"github.com/paychain/paychain/internal/pkg/server"
	"github.com/paychain/paychain/services/payments/gateway"
	"github.com/paychain/paychain/services/payments/handler"
	httphandler "github.com/paychain/paychain/services/payments/handler/http"
	"github.com/paychain/paychain/services/payments/repository"
	"github.com/paychain/paychain/services/payments/usecase"
	whdispatcher "github.com/paychain/paychain/services/webhooks/dispatcher"
	whrepository "github.com/paychain/paychain/services/webhooks/repository"
)

const serviceName = "payments-service"

func main() {
	cfg := config.InitConfig("")

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer pgClient.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(cfg.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	webhookRepo := whrepository.NewWebhookRepo(pgClient)
	dispatcher := whdispatcher.NewHTTPDispatcher(cfg.Webhook, webhookRepo)

	paymentRepo := repository.NewPaymentRepo(pgClient, redisClient)
	darajaClient := gateway.NewDarajaClient(cfg.Daraja)
	simulator := gateway.NewSandboxSimulator(cfg.Sandbox)
	paymentGW := gateway.NewPaymentGW(natsClient)

	paymentUC := usecase.NewPaymentUC(cfg, paymentRepo, darajaClient, simulator, paymentGW, dispatcher)
	paymentHandler := httphandler.NewPaymentHandler(paymentUC)

	resolver := apikey.NewResolver(pgClient.GetDB(), redisClient)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(echomw.CORS())

	health.RegisterHealthEndpoints(e, serviceName)
	handler.RegisterRoutes(e, paymentHandler, resolver)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
