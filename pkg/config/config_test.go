package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "cotizador", cfg.App.Name)
	assert.Equal(t, "admin", cfg.Auth.User)
	assert.Equal(t, "password", cfg.Auth.Password)
	assert.Equal(t, "Secure Area", cfg.Auth.Realm)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 10*1024*1024, cfg.HTTP.ImportMaxBytes)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "cotizador:", cfg.Redis.KeyPrefix)
	require.NoError(t, cfg.Validate())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("BASIC_AUTH_USER", "ventas")
	v.Set("HTTP_PORT", "9090")
	v.Set("STORE_DRIVER", "Redis")
	v.Set("REDIS_DB", "2")

	cfg := fromViper(v)

	assert.Equal(t, "ventas", cfg.Auth.User)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, StoreRedis, cfg.Store.Driver)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestGetInt_ValorNoNumericoUsaDefault(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "abc")
	assert.Equal(t, 8080, getInt(v, "HTTP_PORT", 8080))
}

func TestValidate_Errores(t *testing.T) {
	cfg := fromViper(viper.New())
	cfg.Store.Driver = "mongo"
	cfg.Auth.Password = ""
	cfg.HTTP.ImportMaxBytes = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
	assert.Contains(t, err.Error(), "BASIC_AUTH_PASSWORD")
	assert.Contains(t, err.Error(), "IMPORT_MAX_BYTES")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@h:5432/d?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", db.ConnectionString())
}
