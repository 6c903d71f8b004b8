package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"backend": map[string]any{
			"baseUrl": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"rabbitmq": map[string]any{
			"routingKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "RABBITMQ_ROUTINGKEY", want: "rabbitmq.routingKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBackendTimeout, cfg.Backend.Timeout)
	assert.Equal(t, defaultLocale, cfg.Checkout.Locale)

	cfg = &Config{}
	cfg.Backend.Timeout = 3 * time.Second
	cfg.Checkout.Locale = "en"
	applyDefaults(cfg)

	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "en", cfg.Checkout.Locale)
}

func TestStringToDecimalHookFunc(t *testing.T) {
	hook := stringToDecimalHookFunc()
	decimalType := reflect.TypeOf(decimal.Decimal{})

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: " 5.50 ", want: "5.5"},
		{name: "int", in: 20, want: "20"},
		{name: "float", in: 2.5, want: "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hook(reflect.TypeOf(tt.in), decimalType, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.(decimal.Decimal).String())
		})
	}

	_, err := hook(reflect.TypeOf(""), decimalType, "abc")
	assert.Error(t, err)

	passthrough, err := hook(reflect.TypeOf(""), reflect.TypeOf(""), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", passthrough)
}
