package cfg

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	// BaseURL overrides the environment-derived provider hostname. Empty
	// means derive it from AppEnv; set it to point at a local mock.
	BaseURL string
}

type ObservabilityConfig struct {
	// OTLPEndpoint is the collector address; empty disables telemetry.
	OTLPEndpoint string
	ServiceName  string
}

type Config struct {
	AppEnv        string
	AppPort       string
	CurrencyCode  string
	Amadeus       AmadeusConfig
	Observability ObservabilityConfig
}

func Load() (*Config, error) {
	var errs []error

	// A .env file is optional; the real environment wins.
	_ = godotenv.Load()

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	currencyCode := mustEnv("CURRENCY_CODE", &errs)
	amadeusClientID := mustEnv("AMADEUS_CLIENT_ID", &errs)
	amadeusClientSecret := mustEnv("AMADEUS_CLIENT_SECRET", &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	config := &Config{
		AppEnv:       appEnv,
		AppPort:      appPort,
		CurrencyCode: currencyCode,
		Amadeus: AmadeusConfig{
			ClientID:     amadeusClientID,
			ClientSecret: amadeusClientSecret,
			BaseURL:      os.Getenv("AMADEUS_BASE_URL"),
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName:  envOr("OTEL_SERVICE_NAME", "skyfare"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.AppEnv != "development" && c.AppEnv != "production" {
		return errors.New("APP_ENV must be development or production, got: " + c.AppEnv)
	}
	return nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
