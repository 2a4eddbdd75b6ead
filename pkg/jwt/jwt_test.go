package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MiNegocio-api/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate("s3cr3t", "mi-negocio", "u-1", "dueno@tienda.mx", "sess-1", time.Hour)
	require.NoError(t, err)

	claims, err := jwt.Parse("s3cr3t", token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "dueno@tienda.mx", claims.Email)
	assert.Equal(t, "sess-1", claims.SessionID())
	assert.Equal(t, "mi-negocio", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("uno", "x", "u", "e", "s", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("s", "x", "u", "e", "s", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.Parse("s", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "x", "u", "e", "s", time.Hour)
	assert.Error(t, err)
}
