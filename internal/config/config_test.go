package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
port = 5433
user = "svc"
password = "pass"
dbname = "skoda"

[auth]
jwt_secret = "secret"

[booking]
open_time = "08:00"
close_time = "20:00"
slot_granularity_minutes = 15
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "08:00", cfg.Booking.OpenTime)
	assert.Equal(t, 15, cfg.Booking.SlotGranularityMinutes)

	// Незаданные значения заполняются по умолчанию
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "skoda"

[auth]
jwt_secret = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "09:00", cfg.Booking.OpenTime)
	assert.Equal(t, "17:00", cfg.Booking.CloseTime)
	assert.Equal(t, 30, cfg.Booking.SlotGranularityMinutes)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "no database host",
			content: `
[database]
dbname = "skoda"

[auth]
jwt_secret = "secret"
`,
		},
		{
			name: "no jwt secret",
			content: `
[database]
host = "localhost"
dbname = "skoda"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "svc",
		Password: "pass",
		DBName:   "skoda",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=svc password=pass dbname=skoda sslmode=disable",
		cfg.DSN())
}
