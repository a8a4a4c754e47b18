package jwt_test

import (
	"testing"

	"github.com/jhoicas/mm-inventario/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user_1", "ADMIN", "mm-inventario", 5)
	require.NoError(t, err)

	userID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", userID)
	assert.Equal(t, "ADMIN", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user_1", "USER", "mm-inventario", 5)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user_1", "USER", "mm-inventario", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user_1", "USER", "mm-inventario", 5)
	assert.Error(t, err)
}
