package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/fandersmf/cash-blotter/consts"
	"github.com/fandersmf/cash-blotter/entity"
)

// Config holds everything read from the environment at startup.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBName     string
	DBPassword string

	Port string

	// LowThreshold is the balance under which a low-cash warning is raised.
	// The negative-balance threshold is fixed at zero.
	LowThreshold decimal.Decimal

	// DirectionByType maps each transaction event type to inflow or outflow.
	// Fixed at deploy time.
	DirectionByType map[string]entity.FlowDirection

	CronWorkers  int
	CronInterval time.Duration

	RecalcTimeout time.Duration

	ReadRetryAttempts int
	ReadRetryBase     time.Duration
}

// Load reads the environment (optionally seeded from a .env file) into a
// validated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBName:     os.Getenv("DB_NAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		Port:       getenv("PORT", "8080"),
	}

	threshold, err := decimal.NewFromString(getenv("CASH_LOW_THRESHOLD", consts.DefaultLowThreshold))
	if err != nil {
		return nil, &entity.ConfigurationError{Reason: fmt.Sprintf("CASH_LOW_THRESHOLD is not a decimal: %v", err)}
	}
	cfg.LowThreshold = threshold

	mapping, err := parseDirections(getenv("CASH_EVENT_DIRECTIONS", defaultDirections))
	if err != nil {
		return nil, err
	}
	cfg.DirectionByType = mapping

	cfg.CronWorkers, err = getenvInt("CRON_WORKERS", consts.DefaultWorkerNumber)
	if err != nil {
		return nil, err
	}

	intervalSec, err := getenvInt("CRON_INTERVAL_SEC", consts.DefaultIntervalInSec)
	if err != nil {
		return nil, err
	}
	cfg.CronInterval = time.Duration(intervalSec) * time.Second

	timeoutSec, err := getenvInt("RECALC_TIMEOUT_SEC", consts.DefaultRecalcTimeoutInSec)
	if err != nil {
		return nil, err
	}
	cfg.RecalcTimeout = time.Duration(timeoutSec) * time.Second

	cfg.ReadRetryAttempts, err = getenvInt("READ_RETRY_ATTEMPTS", consts.DefaultReadRetryAttempts)
	if err != nil {
		return nil, err
	}
	cfg.ReadRetryBase = time.Duration(consts.DefaultReadRetryBaseInMs) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks thresholds and the type mapping. Called by Load, exported
// for configs built by hand.
func (c *Config) Validate() error {
	if c.LowThreshold.IsNegative() {
		return &entity.ConfigurationError{Reason: "low threshold must not be negative"}
	}
	if len(c.DirectionByType) == 0 {
		return &entity.ConfigurationError{Reason: "event direction mapping is empty"}
	}
	for eventType, dir := range c.DirectionByType {
		if dir != entity.FlowInflow && dir != entity.FlowOutflow {
			return &entity.ConfigurationError{Reason: fmt.Sprintf("event type %s maps to unknown direction %q", eventType, dir)}
		}
	}
	if c.CronWorkers < 1 {
		return &entity.ConfigurationError{Reason: "cron worker count must be at least 1"}
	}
	if c.ReadRetryAttempts < 1 {
		return &entity.ConfigurationError{Reason: "read retry attempts must be at least 1"}
	}
	return nil
}

// DBURI renders the Postgres connection string the way gorm's postgres
// dialect expects it.
func (c *Config) DBURI() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBPassword)
}

const defaultDirections = "PAYMENT:inflow,DISBURSEMENT:outflow,ADJUSTMENT:inflow"

// parseDirections parses "TYPE:direction,TYPE:direction" pairs.
func parseDirections(raw string) (map[string]entity.FlowDirection, error) {
	mapping := make(map[string]entity.FlowDirection)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, &entity.ConfigurationError{Reason: fmt.Sprintf("malformed direction mapping entry %q", pair)}
		}
		eventType := strings.ToUpper(strings.TrimSpace(parts[0]))
		direction := entity.FlowDirection(strings.ToLower(strings.TrimSpace(parts[1])))
		if eventType == "" {
			return nil, &entity.ConfigurationError{Reason: fmt.Sprintf("malformed direction mapping entry %q", pair)}
		}
		mapping[eventType] = direction
	}
	return mapping, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &entity.ConfigurationError{Reason: fmt.Sprintf("%s is not an integer: %v", key, err)}
	}
	return v, nil
}
