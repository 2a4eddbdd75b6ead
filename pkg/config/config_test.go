package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MiNegocio-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, int64(1), cfg.Business.CashBalanceID)
	assert.Equal(t, 5, cfg.Business.LowStockThreshold)
	assert.Equal(t, 5, cfg.Business.TopSellers)
	assert.Equal(t, 20, cfg.Business.RecentSales)
	assert.Equal(t, "10-M", cfg.RateLimit.Login)
	assert.Equal(t, 12*time.Hour, cfg.JWT.TTL())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("LOW_STOCK_THRESHOLD", "3")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 3, cfg.Business.LowStockThreshold)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_SinSecretoFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("STORE_DRIVER", "mysql")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "tienda", SSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/tienda?sslmode=require", c.ConnectionString())

	c.DatabaseURL = "postgresql://x@y/z"
	assert.Equal(t, "postgresql://x@y/z", c.ConnectionString())
}

func TestBusinessConfig_LocationInvalidaUsaUTC(t *testing.T) {
	assert.Equal(t, time.UTC, config.BusinessConfig{TimeZone: "No/Existe"}.Location())
}

func TestLoad_SeedCash(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	t.Setenv("SEED_CASH", "250.50")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "250.5", cfg.Business.SeedCash.String())

	for _, bad := range []string{"doscientos", "10.005", "-1"} {
		t.Setenv("SEED_CASH", bad)
		_, err := config.Load()
		assert.Error(t, err, bad)
	}
}
