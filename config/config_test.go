package config

import "testing"

func TestLoadQueryLogging(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{name: "enabled", value: "true", expected: true},
		{name: "disabled", value: "false", expected: false},
		{name: "garbage falls back to default", value: "nonsense", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_LOG_QUERIES", tt.value)
			cfg := Load()
			if cfg.Database.LogQueries != tt.expected {
				t.Errorf("expected LogQueries %v, got %v", tt.expected, cfg.Database.LogQueries)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port == 0 {
		t.Error("expected a default server port")
	}
	if cfg.Database.URL == "" {
		t.Error("expected a default database URL")
	}
	if cfg.Database.LogQueries {
		t.Error("expected query logging to default off")
	}
	if cfg.JWT.Secret == "" {
		t.Error("expected a default JWT secret")
	}
}
