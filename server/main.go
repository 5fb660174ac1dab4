package main

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-exchange/config"
	"go-currency-exchange/exchange"
	"go-currency-exchange/frankfurter"
	"go-currency-exchange/geo"
	"go-currency-exchange/history"
	"go-currency-exchange/http"
	"go-currency-exchange/logging"
	"os"
	"os/signal"
	"syscall"
	"time"

	nhttp "net/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, "info").Log("msg", "loading config", "err", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	for _, w := range cfg.Warnings {
		level.Warn(logger).Log("msg", w)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ratesService := frankfurter.NewService(cfg.RatesURL, cfg.HTTPTimeout)
	ratesService = frankfurter.NewLoggingService(log.With(logger, "component", "frankfurter_rest"), ratesService)
	ratesService = frankfurter.NewCachingService(ctx, cfg.RefreshInterval, log.With(logger, "component", "frankfurter_cache"), ratesService)

	store := history.NewStore(cfg.HistoryLimit)

	exchangeService := exchange.NewService(ratesService, cfg.BaseCurrency)
	exchangeService = exchange.NewRecordingService(store, exchangeService)
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	geoService := geo.NewService(cfg.GeoURL, cfg.HTTPTimeout)

	// rates are loaded lazily too, so a failure here is not fatal
	if _, err := exchangeService.Rates(ctx); err != nil {
		level.Warn(logger).Log("msg", "initial rates load failed", "base", cfg.BaseCurrency, "err", err)
	}

	handler := http.NewServer(exchangeService, geoService, store, log.With(logger, "component", "http"), http.WithDefaultTarget(cfg.DefaultTarget))
	server := &nhttp.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	level.Info(logger).Log("msg", "listening", "addr", server.Addr, "base", cfg.BaseCurrency)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
