package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "flora",
			"log": map[string]any{
				"pretty": true,
			},
		},
		"secretKey": map[string]any{
			"access": "a",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{
			name:   "matches camelCase leaf",
			rawKey: "POSTGRES_SSLMODE",
			want:   "postgres.sslMode",
		},
		{
			name:   "matches nested camelCase",
			rawKey: "ENV_SERVICENAME",
			want:   "env.serviceName",
		},
		{
			name:   "matches deep nesting",
			rawKey: "ENV_LOG_PRETTY",
			want:   "env.log.pretty",
		},
		{
			name:   "matches camelCase parent",
			rawKey: "SECRETKEY_ACCESS",
			want:   "secretKey.access",
		},
		{
			name:   "falls back to lowercase for unknown keys",
			rawKey: "UNKNOWN_KEY",
			want:   "unknown.key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "secretkey", normalizeToken("secret-key"))
	assert.Equal(t, "log", normalizeToken("LOG"))
}
