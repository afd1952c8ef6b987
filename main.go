package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/minimart/pos-simulator/internal/application/checkout"
	"github.com/minimart/pos-simulator/internal/config"
	"github.com/minimart/pos-simulator/internal/domain/cart"
	"github.com/minimart/pos-simulator/internal/domain/catalog"
	"github.com/minimart/pos-simulator/internal/domain/order"
	"github.com/minimart/pos-simulator/internal/infrastructure/auditlog"
	"github.com/minimart/pos-simulator/internal/infrastructure/counter"
	"github.com/minimart/pos-simulator/internal/infrastructure/memory"
	"github.com/minimart/pos-simulator/internal/infrastructure/sqlite"
	"github.com/minimart/pos-simulator/internal/pkg/logging"
	"github.com/minimart/pos-simulator/internal/pkg/metrics"
	"github.com/minimart/pos-simulator/internal/presentation/cli"
)

func main() {
	configPath := flag.String("config", "", "optional path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	baseLogger := logging.MustNewLogger(cfg.App.Name, cfg.App.Env, cfg.App.LogFile)
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	checkoutMetrics := metrics.NewCheckoutMetrics(nil)

	// Durable order archive when a DB path is configured, session-only
	// otherwise. The audit log and ID counter are always durable.
	var archive order.Repository
	if cfg.Store.DBPath != "" {
		repo, err := sqlite.Open(cfg.Store.DBPath)
		if err != nil {
			baseLogger.Error("order_archive_open_failed", zap.Error(err))
			fmt.Fprintln(os.Stderr, "order archive:", err)
			os.Exit(1)
		}
		defer func() { _ = repo.Close() }()
		archive = repo
	} else {
		archive = memory.NewOrderRepository()
	}

	sessionCart := cart.New()
	uc := checkout.NewUseCase(
		sessionCart,
		counter.NewFileCounter(cfg.Store.CounterPath),
		auditlog.NewFileLog(cfg.Store.AuditLogPath),
		archive,
		baseLogger,
		checkoutMetrics,
	)

	var metricsServer *http.Server
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsServer = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
		go func() {
			baseLogger.Info("metrics_server_start", zap.String("addr", metricsServer.Addr))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				baseLogger.Error("metrics_server_error", zap.Error(err))
			}
		}()
	}

	program := tea.NewProgram(cli.NewModel(catalog.Default(), sessionCart, uc))
	if _, err := program.Run(); err != nil {
		baseLogger.Error("ui_error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			baseLogger.Error("metrics_server_shutdown_error", zap.Error(err))
		}
	}
	baseLogger.Info("exited")
}
