package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fandersmf/cash-blotter/entity"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CASH_LOW_THRESHOLD", "")
	t.Setenv("CASH_EVENT_DIRECTIONS", "")
	t.Setenv("CRON_WORKERS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.LowThreshold.Equal(decimal.RequireFromString("1000.00")))
	assert.Equal(t, entity.FlowInflow, cfg.DirectionByType[entity.EventTypePayment])
	assert.Equal(t, entity.FlowOutflow, cfg.DirectionByType[entity.EventTypeDisbursement])
	assert.Equal(t, entity.FlowInflow, cfg.DirectionByType[entity.EventTypeAdjustment])
	assert.Equal(t, 1, cfg.CronWorkers)
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	t.Setenv("CASH_LOW_THRESHOLD", "lots")

	_, err := Load()
	var configErr *entity.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestValidateRejectsNegativeThreshold(t *testing.T) {
	cfg := &Config{
		LowThreshold: decimal.RequireFromString("-5"),
		DirectionByType: map[string]entity.FlowDirection{
			entity.EventTypePayment: entity.FlowInflow,
		},
		CronWorkers:       1,
		ReadRetryAttempts: 1,
	}

	var configErr *entity.ConfigurationError
	assert.ErrorAs(t, cfg.Validate(), &configErr)
}

func TestValidateRejectsUnknownDirection(t *testing.T) {
	cfg := &Config{
		LowThreshold: decimal.Zero,
		DirectionByType: map[string]entity.FlowDirection{
			entity.EventTypePayment: "sideways",
		},
		CronWorkers:       1,
		ReadRetryAttempts: 1,
	}

	var configErr *entity.ConfigurationError
	assert.ErrorAs(t, cfg.Validate(), &configErr)
}

func TestValidateRejectsEmptyMapping(t *testing.T) {
	cfg := &Config{
		LowThreshold:      decimal.Zero,
		DirectionByType:   map[string]entity.FlowDirection{},
		CronWorkers:       1,
		ReadRetryAttempts: 1,
	}

	var configErr *entity.ConfigurationError
	assert.ErrorAs(t, cfg.Validate(), &configErr)
}

func TestParseDirections(t *testing.T) {
	mapping, err := parseDirections("PAYMENT:inflow, DISBURSEMENT:outflow ,penalty:INFLOW")
	require.NoError(t, err)

	assert.Equal(t, entity.FlowInflow, mapping["PAYMENT"])
	assert.Equal(t, entity.FlowOutflow, mapping["DISBURSEMENT"])
	assert.Equal(t, entity.FlowInflow, mapping["PENALTY"])
}

func TestParseDirectionsRejectsMalformedEntry(t *testing.T) {
	_, err := parseDirections("PAYMENT")
	var configErr *entity.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestDBURI(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "fanders",
		DBName:     "blotter",
		DBPassword: "secret",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=fanders dbname=blotter sslmode=disable password=secret",
		cfg.DBURI())
}
