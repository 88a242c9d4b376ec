package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"invoicing-dashboard/internal/config"
	customerhandler "invoicing-dashboard/internal/customer/handler"
	customerrepo "invoicing-dashboard/internal/customer/repository"
	"invoicing-dashboard/internal/db"
	identityhandler "invoicing-dashboard/internal/identity/handler"
	identityservice "invoicing-dashboard/internal/identity/service"
	"invoicing-dashboard/internal/invoice/form"
	invoicehandler "invoicing-dashboard/internal/invoice/handler"
	invoicerepo "invoicing-dashboard/internal/invoice/repository"
	invoiceservice "invoicing-dashboard/internal/invoice/service"
	"invoicing-dashboard/internal/logger"
	"invoicing-dashboard/internal/security"
	"invoicing-dashboard/internal/server"
	"invoicing-dashboard/internal/telemetry"
	userrepo "invoicing-dashboard/internal/user/repository"
	"invoicing-dashboard/internal/viewcache"
)

const serviceName = "invoicing-dashboard"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	zaplog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zaplog.Sync()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		zaplog.Fatal("db", zap.Error(err))
	}
	defer conn.Close()

	tracing, err := telemetry.NewProvider(serviceName, cfg.TraceEnabled)
	if err != nil {
		zaplog.Fatal("telemetry", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx); err != nil {
			zaplog.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	hasher := security.NewHasher(cfg.BcryptCost)
	tokens := security.NewTokenProvider([]byte(cfg.SessionSecret), cfg.SessionIssuer, cfg.SessionAudience, cfg.TokenTTL())

	cache := viewcache.NewMemory()

	invoices := invoicerepo.NewPostgresRepository(conn)
	invoiceSvc := invoiceservice.NewService(invoices, cache, form.NewSchema(), zaplog)

	users := userrepo.NewPostgresRepository(conn)
	authSvc := identityservice.NewAuthService(users, hasher, tokens, zaplog)

	customers := customerrepo.NewPostgresRepository(conn)

	engine := server.New(server.Deps{
		Logger:       zaplog,
		DB:           conn,
		Invoices:     invoicehandler.NewHandler(invoiceSvc, invoices, cache),
		Customers:    customerhandler.NewHandler(customers),
		Identity:     identityhandler.NewAuthHandler(authSvc),
		TraceEnabled: cfg.TraceEnabled,
		ServiceName:  serviceName,
		AppEnv:       cfg.Env,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zaplog.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zaplog.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zaplog.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zaplog.Error("shutdown", zap.Error(err))
	}
	zaplog.Info("http server stopped")
}
