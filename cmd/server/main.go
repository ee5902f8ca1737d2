package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"skyfare/cfg"
	"skyfare/internal/search"
	"skyfare/pkg/amadeus"
	"skyfare/pkg/idgen"
	"skyfare/pkg/logger"

	_ "skyfare/cmd/server/docs" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Skyfare Flight Search API
// @version         1.0
// @description     Proxy API for searching flights through the Amadeus travel provider.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// telemetry
	// ============
	if config.Observability.OTLPEndpoint != "" {
		shutdownOtel, err := initOtel(context.Background(), config.AppEnv, &config.Observability)
		if err != nil {
			zlogger.Warn("failed to initialize OpenTelemetry, continuing without it",
				logger.Field{Key: "err", Value: err})
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownOtel(ctx); err != nil {
					zlogger.Error("failed to shutdown OpenTelemetry",
						logger.Field{Key: "err", Value: err})
				}
			}()
		}
	}

	// ============
	// request ids
	// ============
	ids, err := idgen.NewSnowflake(1)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// provider
	// ============
	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}
	baseURL := config.Amadeus.BaseURL
	if baseURL == "" {
		baseURL = amadeus.BaseURLForEnv(config.AppEnv)
	}
	tokenCache := amadeus.NewTokenCache(httpClient, baseURL, config.Amadeus.ClientID, config.Amadeus.ClientSecret, zlogger)
	amadeusClient := amadeus.NewClient(httpClient, baseURL, tokenCache, zlogger)

	// ============
	// internal service
	// ============
	searchSvc := search.NewService(amadeusClient, config.CurrencyCode, zlogger)
	searchHandler := search.NewHandler(searchSvc)

	// ============
	// HTTP
	// ============
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(search.RequestLogger(ids, zlogger))

	searchHandler.RegisterRoutes(r)
	initSwagger(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	zlogger.Info("server starting", logger.Field{Key: "addr", Value: addr})
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
