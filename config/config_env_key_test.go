package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":  "disable",
			"userName": "books",
		},
		"redis": map[string]any{
			"collectionTtl": "5m",
		},
		"catalog": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "REDIS_COLLECTIONTTL", want: "redis.collectionTtl"},
		{envKey: "CATALOG_BASEURL", want: "catalog.baseUrl"},
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

func TestPostgresConfigDSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     "5432",
		UserName: "books",
		Password: "secret",
		DBName:   "bookshelf",
	}

	want := "host=localhost port=5432 user=books password=secret dbname=bookshelf sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
