package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-analyzer/internal/config"
	"expense-analyzer/internal/handlers"
	custommw "expense-analyzer/internal/middleware"
	"expense-analyzer/internal/services"
	"expense-analyzer/internal/store"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	registry := store.NewRegistry()

	var metrics services.MetricsRecorderInterface = services.NewPrometheusMetrics()
	categorizer := services.NewCategoryService()
	ingestion := services.NewIngestionService(categorizer, metrics)
	summary := services.NewSummaryService(cfg.Summary.IncomeCategories)
	sampler := services.NewSampleDataService()

	sessionHandler := handlers.NewSessionHandler(registry, metrics)
	statementHandler := handlers.NewStatementHandler(registry, ingestion, sampler, cfg.Sample.DefaultRows)
	transactionHandler := handlers.NewTransactionHandler(registry, metrics)
	summaryHandler := handlers.NewSummaryHandler(registry, summary, cfg.Summary.TopN)
	healthHandler := handlers.NewHealthCheckHandler(registry)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.RateLimiterWithConfig(cfg.Limits.RateLimitPerSecond, cfg.Limits.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/sessions", sessionHandler.CreateSession)
	api.DELETE("/sessions/:sid", sessionHandler.DeleteSession)

	api.POST("/sessions/:sid/statements", statementHandler.Upload)
	api.POST("/sessions/:sid/sample", statementHandler.GenerateSample)

	api.GET("/sessions/:sid/transactions", transactionHandler.ListTransactions)
	api.GET("/sessions/:sid/transactions/other", transactionHandler.ListUncategorized)
	api.GET("/sessions/:sid/transactions/income", transactionHandler.ListIncome)
	api.PUT("/sessions/:sid/transactions/:id/category", transactionHandler.UpdateCategory)
	api.POST("/sessions/:sid/categories", transactionHandler.AddCustomCategory)

	api.GET("/sessions/:sid/summary/overview", summaryHandler.Overview)
	api.GET("/sessions/:sid/summary/categories", summaryHandler.Categories)
	api.GET("/sessions/:sid/summary/daily", summaryHandler.Daily)
	api.GET("/sessions/:sid/summary/monthly", summaryHandler.Monthly)
	api.GET("/sessions/:sid/summary/month-over-month", summaryHandler.MonthOverMonth)
	api.GET("/sessions/:sid/summary/top-categories", summaryHandler.TopCategories)
	api.GET("/sessions/:sid/summary/top-merchants", summaryHandler.TopMerchants)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
		slog.Info("Server starting", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err.Error())
	}
}
