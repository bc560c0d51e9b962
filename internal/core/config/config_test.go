package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// clearEnv 屏蔽宿主机上可能存在的同名变量
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG_PATH", "JWT_SECRET", "API_PORT", "PORT", "DATABASE_URL", "APP_JWT_SECRET", "APP_DB_DSN"} {
		t.Setenv(k, "")
	}
}

func TestRead_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3001, c.App.HTTP.Port)
	assert.Equal(t, 9091, c.App.Admin.Port)
	assert.Equal(t, "postgres", c.DB.Driver)
	assert.Equal(t, 7*24*60, c.JWT.AccessTokenTTLMin)
	assert.Equal(t, "", c.JWT.Secret)
	assert.Equal(t, []string{"http://localhost:3000"}, c.App.CORSOrigins)
	assert.False(t, c.App.IsProduction())
}

func TestRead_File(t *testing.T) {
	clearEnv(t)
	p := writeYAML(t, `
app:
  env: production
  http:
    port: 4100
  corsOrigins:
    - https://hair.example.com
jwt:
  secret: from-file
db:
  driver: sqlite
  dsn: ":memory:"
redis:
  addr: 127.0.0.1:6379
cache:
  profileTTLSec: 60
`)
	c, err := Read(p)
	require.NoError(t, err)

	assert.True(t, c.App.IsProduction())
	assert.Equal(t, 4100, c.App.HTTP.Port)
	assert.Equal(t, []string{"https://hair.example.com"}, c.App.CORSOrigins)
	assert.Equal(t, "from-file", c.JWT.Secret)
	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.Equal(t, ":memory:", c.DB.DSN)
	assert.Equal(t, "127.0.0.1:6379", c.Redis.Addr)
	assert.Equal(t, 60, c.Cache.ProfileTTLSec)
}

func TestRead_EnvOverrides(t *testing.T) {
	clearEnv(t)
	p := writeYAML(t, "jwt:\n  secret: from-file\n")

	t.Run("prefixed", func(t *testing.T) {
		t.Setenv("APP_JWT_SECRET", "from-env")
		t.Setenv("APP_DB_DRIVER", "mysql")
		c, err := Read(p)
		require.NoError(t, err)
		assert.Equal(t, "from-env", c.JWT.Secret)
		assert.Equal(t, "mysql", c.DB.Driver)
	})

	t.Run("plain aliases", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "plain")
		t.Setenv("API_PORT", "3999")
		t.Setenv("DATABASE_URL", "postgres://u:p@localhost/hair")
		c, err := Read(p)
		require.NoError(t, err)
		assert.Equal(t, "plain", c.JWT.Secret)
		assert.Equal(t, 3999, c.App.HTTP.Port)
		assert.Equal(t, "postgres://u:p@localhost/hair", c.DB.DSN)
	})
}

func TestRead_ConfigPathEnv(t *testing.T) {
	clearEnv(t)
	p := writeYAML(t, "app:\n  name: via-env-path\n")
	t.Setenv("CONFIG_PATH", p)

	c, err := Read("")
	require.NoError(t, err)
	assert.Equal(t, "via-env-path", c.App.Name)
}

func TestRead_BrokenFile(t *testing.T) {
	p := writeYAML(t, "app: [unclosed\n")
	_, err := Read(p)
	assert.Error(t, err)
}
