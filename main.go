package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"ayursutra-server/internal/config"
	"ayursutra-server/internal/latency"
	"ayursutra-server/internal/llm"
	"ayursutra-server/internal/logger"
	"ayursutra-server/internal/metrics"
	"ayursutra-server/internal/models"
	"ayursutra-server/internal/routes"
	"ayursutra-server/internal/services"
)

func main() {
	// A .env file is optional; the environment wins.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logr, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() { _ = logr.Sync() }()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(cfg.MetricsNamespace, reg)

	opts := []services.Option{}
	if cfg.Suggest.Provider == "openai" {
		suggester := llm.NewSuggester(
			llm.NewOpenAIClient(cfg.Suggest.OpenAIAPIKey),
			cfg.Suggest.OpenAIModel,
			cfg.Suggest.Timeout,
			services.KeywordSuggest,
			func(outcome string) { collector.ModelCallsTotal.WithLabelValues(outcome).Inc() },
			logr.Named("suggest"),
		)
		opts = append(opts, services.WithSuggester(suggester.Suggest))
	}
	bookings := services.NewBookingService(models.SeedDoctors(), logr.Named("booking"), opts...)

	router := routes.NewRouter(routes.Deps{
		Config:        cfg,
		Bookings:      bookings,
		Latency:       latency.NewSimulator(cfg.Booking.SubmitDelay),
		Metrics:       collector,
		Log:           logr.Named("http"),
		SuggestSource: cfg.Suggest.Provider,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server running", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
