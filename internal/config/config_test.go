package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestCheckoutConfig_Currencies(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "single", raw: "SGD", want: []string{"SGD"}},
		{name: "normalized", raw: " sgd, usd ,MYR", want: []string{"SGD", "USD", "MYR"}},
		{name: "empty items skipped", raw: "SGD,,", want: []string{"SGD"}},
		{name: "empty", raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CheckoutConfig{SupportedCurrencies: tt.raw}
			assert.Equal(t, tt.want, c.Currencies())
		})
	}
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "verbose"}.LogLevel())
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "escrowpay", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=escrowpay sslmode=disable", p.DSN())
}

func TestFraudConfig_Thresholds(t *testing.T) {
	c := FraudConfig{SingleThreshold: "2000", BurstThreshold: "1500.50"}

	assert.True(t, c.Single().Equal(decimal.NewFromInt(2000)))
	assert.True(t, c.Burst().Equal(decimal.RequireFromString("1500.5")))
}

func TestProviderConfigs_Enabled(t *testing.T) {
	assert.False(t, NetsConfig{APIKey: "k"}.Enabled())
	assert.True(t, NetsConfig{APIKey: "k", ProjectID: "p"}.Enabled())
	assert.False(t, StripeConfig{}.Enabled())
	assert.True(t, StripeConfig{SecretKey: "sk_test"}.Enabled())
	assert.False(t, PayPalConfig{ClientID: "id"}.Enabled())
	assert.True(t, AirwallexConfig{ClientID: "id", APIKey: "key"}.Enabled())
}
