package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igrii/tienda/internal/models"
	"github.com/igrii/tienda/internal/tokens"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"nombre":   "Ana",
		"email":    "ana@example.com",
		"password": "Secret123",
	}
	rec := env.serve(http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.Usuario
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "Ana", user.Nombre)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, models.RoleCliente, user.Role)
	assert.NotEmpty(t, user.ID)

	// the password hash must never leave the server
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "Secret123")

	var stored models.Usuario
	require.NoError(t, env.DB.Where("email = ?", "ana@example.com").First(&stored).Error)
	assert.NotEqual(t, "Secret123", stored.PasswordHash)
}

func TestRegister_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodPost, "/auth/register", "", map[string]string{
		"email": "ana@example.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Faltan datos", decodeBody(t, rec)["error"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"nombre":   "Ana",
		"email":    "ana@example.com",
		"password": "Secret123",
	}
	rec := env.serve(http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.serve(http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email ya registrado", decodeBody(t, rec)["error"])
	assert.EqualValues(t, 1, env.count(&models.Usuario{}))
}

func TestRegister_AdminRole(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodPost, "/auth/register", "", map[string]string{
		"nombre":   "Ana",
		"email":    "admin@example.com",
		"password": "Secret123",
		"role":     "admin",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.Usuario
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.createUser(models.RoleCliente)

	rec := env.serve(http.MethodPost, "/auth/login", "", map[string]string{
		"email":    user.Email,
		"password": "Secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	tokenStr, _ := body["token"].(string)
	require.NotEmpty(t, tokenStr)

	claims, err := tokens.AccessClaimsFromToken(tokenStr, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID())
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)

	respUser, _ := body["user"].(map[string]interface{})
	require.NotNil(t, respUser)
	assert.Equal(t, user.Email, respUser["email"])
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.createUser(models.RoleCliente)

	rec := env.serve(http.MethodPost, "/auth/login", "", map[string]string{
		"email":    user.Email,
		"password": "incorrecta",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Contraseña incorrecta", decodeBody(t, rec)["error"])
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "nadie@example.com",
		"password": "Secret123",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Usuario no encontrado", decodeBody(t, rec)["error"])
}

func TestLogin_MissingCredentials(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ana@example.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Faltan credenciales", decodeBody(t, rec)["error"])
}

func TestVerify_ValidToken(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUser(models.RoleAdmin)

	rec := env.serve(http.MethodGet, "/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["valid"])

	respUser, _ := body["user"].(map[string]interface{})
	require.NotNil(t, respUser)
	assert.EqualValues(t, user.ID, respUser["id"])
	assert.Equal(t, user.Email, respUser["email"])
	assert.Equal(t, string(user.Role), respUser["role"])
}

func TestVerify_NoToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodGet, "/auth/verify", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "No token", body["error"])
}

func TestVerify_BadToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodGet, "/auth/verify", "no-es-un-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "Token inválido", body["error"])
}
