package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend/httprpc"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend/postgres"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/controller"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/router"
	"github.com/mahfadha/wallet-gateway/src/internal/config"
	"github.com/mahfadha/wallet-gateway/src/internal/logger"
	"github.com/mahfadha/wallet-gateway/src/internal/ratelimit"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", err, nil)
		os.Exit(1)
	}

	backendClient, err := newBackendClient(cfg)
	if err != nil {
		logger.Error("failed to initialize backend client", err, logger.Fields{
			"driver": cfg.BackendDriver,
		})
		os.Exit(1)
	}

	limits := ratelimit.NewTracker()

	controllers := router.Controllers{
		Account:      controller.NewAccountController(services.NewAccountService(backendClient, limits)),
		Transfer:     controller.NewTransferController(services.NewTransferService(backendClient, limits)),
		Bill:         controller.NewBillController(services.NewBillService(backendClient, limits)),
		Rate:         controller.NewRateController(services.NewRateService()),
		Verification: controller.NewVerificationController(services.NewVerificationService(backendClient)),
		User:         controller.NewUserController(services.NewUserService(backendClient)),
		Transaction:  controller.NewTransactionController(),
	}

	handler := router.New(controllers, cfg.ChannelID, cfg.ChannelKey, cfg.AdminKeyHash)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", logger.Fields{
			"port":   cfg.Port,
			"driver": cfg.BackendDriver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", err, nil)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("server shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", err, nil)
	}
}

func newBackendClient(cfg config.Config) (backend.Client, error) {
	switch cfg.BackendDriver {
	case "http":
		return httprpc.New(cfg.BackendURL, cfg.BackendServiceKey), nil
	case "postgres":
		return postgres.Open(cfg.DatabaseDSN)
	}
	return nil, fmt.Errorf("unknown backend driver %q", cfg.BackendDriver)
}
