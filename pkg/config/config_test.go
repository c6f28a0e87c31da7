package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validConfig = `
service_name = "storefront"
version = "1.0.0"
environment = "dev"

[http]
host = "0.0.0.0"
port = 8080

[database]
driver = "mysql"
dsn = "user:pass@tcp(127.0.0.1:3306)/petstore?parseTime=True"

[auth]
jwt_secret = "test-secret"
token_ttl = 3600

[kafka]
brokers = ["127.0.0.1:9092"]
group_id = "storefront"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfig))
		require.NoError(t, err)
		require.Equal(t, "storefront", cfg.ServiceName)
		require.Equal(t, 8080, cfg.HTTP.Port)
		require.Equal(t, []string{"127.0.0.1:9092"}, cfg.Kafka.Brokers)
		require.Equal(t, 3600, cfg.Auth.TokenTTL)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})

	t.Run("missing service name", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[database]
dsn = "user:pass@tcp(127.0.0.1:3306)/petstore"
[auth]
jwt_secret = "x"
[http]
port = 8080
`))
		require.ErrorContains(t, err, "service_name")
	})

	t.Run("missing dsn", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
service_name = "storefront"
[http]
port = 8080
[auth]
jwt_secret = "x"
`))
		require.ErrorContains(t, err, "DSN")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
service_name = "storefront"
[http]
port = 8080
[database]
dsn = "user:pass@tcp(127.0.0.1:3306)/petstore"
`))
		require.ErrorContains(t, err, "jwt_secret")
	})

	t.Run("invalid port", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
service_name = "storefront"
[http]
port = 70000
[database]
dsn = "user:pass@tcp(127.0.0.1:3306)/petstore"
[auth]
jwt_secret = "x"
`))
		require.ErrorContains(t, err, "port")
	})
}

func TestValidateDefaultsEnvironment(t *testing.T) {
	cfg := &Config{
		ServiceName: "storefront",
		HTTP:        HTTPConfig{Port: 8080},
		Database:    DatabaseConfig{DSN: "dsn"},
		Auth:        AuthConfig{JWTSecret: "x"},
	}
	require.NoError(t, cfg.Validate())
	require.Equal(t, "dev", cfg.Environment)
}
