package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/supply-ledger/internal/config"
	"github.com/Spok95/supply-ledger/internal/domain/clients"
	"github.com/Spok95/supply-ledger/internal/domain/consumption"
	"github.com/Spok95/supply-ledger/internal/domain/ledger"
	"github.com/Spok95/supply-ledger/internal/domain/payments"
	"github.com/Spok95/supply-ledger/internal/domain/pricing"
	"github.com/Spok95/supply-ledger/internal/domain/products"
	"github.com/Spok95/supply-ledger/internal/infra/db"
	httpx "github.com/Spok95/supply-ledger/internal/infra/http"
	"github.com/Spok95/supply-ledger/internal/infra/logger"
	"github.com/Spok95/supply-ledger/internal/infra/notify"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.AdminChatID)
	if err != nil {
		log.Error("telegram init failed", "err", err)
		return
	}
	var notifier payments.Notifier
	if tg != nil {
		notifier = tg
		log.Info("admin notifications enabled", "chat_id", cfg.Telegram.AdminChatID)
	}

	clientsRepo := clients.NewRepo(pool)
	productsRepo := products.NewRepo(pool)
	pricingRepo := pricing.NewRepo(pool)
	consRepo := consumption.NewRepo(pool)
	recorder := consumption.NewRecorder(pool, log)
	paymentsRepo := payments.NewRepo(pool)
	paymentsSvc := payments.NewService(pool, log, notifier, cfg.Reports.Currency)
	ledgerRepo := ledger.NewRepo(pool)

	api := httpx.NewAPI(log, clientsRepo, productsRepo, pricingRepo, consRepo, recorder, paymentsRepo, paymentsSvc, ledgerRepo)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, api)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
