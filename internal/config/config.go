package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/validation"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	rpcEndpointEnvKey      = "RPC_ENDPOINT"
	dbConnEnvKey           = "DB_CONNECTION_URL"
	apiPortEnvKey          = "API_PORT"
	trackedContractsEnvKey = "TRACKED_CONTRACTS"
	trackedTokensEnvKey    = "TRACKED_TOKENS"
	largeThresholdEnvKey   = "LARGE_TRANSFER_THRESHOLD_BNB"
	pollIntervalEnvKey     = "POLL_INTERVAL_MS"
	maxReconnectsEnvKey    = "MAX_RECONNECT_ATTEMPTS"
	reconnectDelayEnvKey   = "RECONNECT_DELAY_MS"
	metricsAddressEnvKey   = "METRICS_ADDRESS"

	defaultLargeThresholdBNB = 100
	defaultPollInterval      = 2000 * time.Millisecond
	defaultMaxReconnects     = 5
	defaultReconnectDelay    = 5000 * time.Millisecond
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

type App struct {
	RPCEndpoint       string
	DBConnectionURL   string
	APIPort           string
	TrackedContracts  []string
	TrackedTokens     []string
	LargeThresholdBNB int64
	PollInterval      time.Duration
	MaxReconnects     int
	ReconnectDelay    time.Duration
	MetricsAddress    string
}

func NewApp() (App, error) {
	rpcEndpoint, ok := os.LookupEnv(rpcEndpointEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, rpcEndpointEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	threshold, err := intEnvOrDefault(largeThresholdEnvKey, defaultLargeThresholdBNB)
	if err != nil {
		return App{}, err
	}

	pollInterval, err := durationEnvOrDefault(pollIntervalEnvKey, defaultPollInterval)
	if err != nil {
		return App{}, err
	}

	maxReconnects, err := intEnvOrDefault(maxReconnectsEnvKey, defaultMaxReconnects)
	if err != nil {
		return App{}, err
	}

	reconnectDelay, err := durationEnvOrDefault(reconnectDelayEnvKey, defaultReconnectDelay)
	if err != nil {
		return App{}, err
	}

	cfg := App{
		RPCEndpoint:       rpcEndpoint,
		DBConnectionURL:   dbConn,
		APIPort:           port,
		TrackedContracts:  listEnv(trackedContractsEnvKey),
		TrackedTokens:     listEnv(trackedTokensEnvKey),
		LargeThresholdBNB: threshold,
		PollInterval:      pollInterval,
		MaxReconnects:     int(maxReconnects),
		ReconnectDelay:    reconnectDelay,
		MetricsAddress:    os.Getenv(metricsAddressEnvKey),
	}

	if err := cfg.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.RPCEndpoint, validation.Required),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.APIPort, validation.Required),
		validation.Field(&a.TrackedContracts, validation.Each(validation.Match(addressRegex))),
		validation.Field(&a.TrackedTokens, validation.Each(validation.Match(addressRegex))),
		validation.Field(&a.LargeThresholdBNB, validation.Min(int64(1))),
		validation.Field(&a.PollInterval, validation.Min(100*time.Millisecond)),
		validation.Field(&a.MaxReconnects, validation.Min(1)),
		validation.Field(&a.ReconnectDelay, validation.Min(100*time.Millisecond)),
	)
}

func listEnv(key string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func intEnvOrDefault(key string, fallback int64) (int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func durationEnvOrDefault(key string, fallback time.Duration) (time.Duration, error) {
	ms, err := intEnvOrDefault(key, int64(fallback/time.Millisecond))
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
