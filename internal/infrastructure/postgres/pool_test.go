package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MiNegocio-api/pkg/config"
)

func TestLookupIPv4_LiteralNoConsultaDNS(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = lookupIPv4(context.Background(), "::1")
	assert.ErrorIs(t, err, errNoIPv4)
}

func TestPreferIPv4_ConIPLiteral(t *testing.T) {
	dsn := preferIPv4(context.Background(), config.DBConfig{DatabaseURL: "postgres://u:p@127.0.0.1/tienda?sslmode=disable"})
	assert.Equal(t, "postgres://u:p@127.0.0.1:5432/tienda?sslmode=disable", dsn)

	dsn = preferIPv4(context.Background(), config.DBConfig{
		Host: "127.0.0.1", Port: 5433, User: "app", Password: "x", DBName: "tienda", SSLMode: "disable",
	})
	assert.Equal(t, "postgres://app:x@127.0.0.1:5433/tienda?sslmode=disable", dsn)
}

func TestPreferIPv4_URLInvalidaSeDejaIgual(t *testing.T) {
	raw := "postgres://%zz"
	assert.Equal(t, raw, preferIPv4(context.Background(), config.DBConfig{DatabaseURL: raw}))
}
