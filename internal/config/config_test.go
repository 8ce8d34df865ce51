package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "microreserva"
password = "secret"
dbname = "microreserva"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "microreserva"

[auth]
admin_username = "admin"
admin_password_hash = "$2a$10$abcdefghijklmnopqrstuv"

[cors]
allowed_origin = "*"

[limits]
max_slots_per_person = 4
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigin)
	assert.Equal(t, 4, cfg.Limits.MaxSlotsPerPerson)
	assert.Zero(t, cfg.Limits.RateLimitMaxInserts, "unset limits stay zero for downstream defaults")
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t,
		"host=localhost port=5432 user=microreserva password=secret dbname=microreserva sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
}

func TestLoad_MissingAuthRejected(t *testing.T) {
	content := `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "microreserva"
`
	_, err := Load(writeConfig(t, content))

	assert.ErrorContains(t, err, "auth")
}

func TestLoad_MissingPortRejected(t *testing.T) {
	content := `
[database]
host = "localhost"
dbname = "microreserva"

[auth]
admin_username = "admin"
admin_password_hash = "hash"
`
	_, err := Load(writeConfig(t, content))

	assert.ErrorContains(t, err, "http_port")
}
