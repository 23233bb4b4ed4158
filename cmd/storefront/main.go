package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/aslanbek/storefront/docs"
	"github.com/aslanbek/storefront/internal/cart"
	cartHTTP "github.com/aslanbek/storefront/internal/cart/delivery/http"
	cartCommand "github.com/aslanbek/storefront/internal/cart/usecase/command"
	"github.com/aslanbek/storefront/internal/catalog"
	catalogHTTP "github.com/aslanbek/storefront/internal/catalog/delivery/http"
	catalogCommand "github.com/aslanbek/storefront/internal/catalog/usecase/command"
	"github.com/aslanbek/storefront/kafka"
	"github.com/aslanbek/storefront/pkg/logger"
	"github.com/aslanbek/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// The catalog repository is shared between the catalog and cart modules;
	// the upstream client is shared between the handler and the startup fetch
	apiURL := getEnv("CATALOG_API_URL", "https://fakestoreapi.com")
	catalogRepo := catalog.ProvideCatalogRepository()
	catalogSource := catalog.ProvideProductSource(apiURL)

	catalogHandler, err := catalog.InitializeHTTPHandler(catalogSource, catalogRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	// Kafka is optional; without brokers the cart simply publishes no events
	var publisher cartCommand.CartEventPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaPublisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, cart events disabled")
		} else {
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
		}
	}

	cartHandler, err := cart.InitializeHTTPHandler(catalogRepo, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize cart handler")
	}

	logger.Logger.Info().
		Str("catalog_api", apiURL).
		Msg("Storefront handlers initialized")

	// Fetch the catalog once at startup without blocking the server. A
	// failed fetch leaves the catalog in the failed state until a client
	// triggers POST /api/catalog/refresh.
	refreshHandler := catalogCommand.NewRefreshCatalogHandler(catalogSource, catalogRepo)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := refreshHandler.Handle(ctx, catalogCommand.RefreshCatalogCommand{}); err != nil {
			logger.Logger.Error().Err(err).Msg("Initial catalog fetch failed, retry via /api/catalog/refresh")
		}
	}()

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8081")
	go startHTTPServer(catalogHandler, cartHandler, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(catalogHandler *catalogHTTP.CatalogHandler, cartHandler *cartHTTP.CartHandler, port string) {
	// Setup router
	router := mux.NewRouter()

	// Register routes
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)

	// Health check endpoint
	catalogHandler.RegisterHealthCheck(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	catalogHTTP.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
