package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/igrii/tienda/internal/hash"
	"github.com/igrii/tienda/internal/models"
	"github.com/igrii/tienda/internal/repo"
	"github.com/igrii/tienda/internal/service"
	"github.com/igrii/tienda/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	Auth       *AuthHTTP
	Categories *CategoryHTTP
	Products   *ProductHTTP
	Images     *ImageHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Categoria{},
		&models.Producto{},
		&models.ImagenProducto{},
		&models.Usuario{},
	))

	r := &repo.GormRepo{DB: db}
	authSvc := &service.AuthService{Repo: r, JWTSecret: testSecret}
	catalogSvc := &service.CatalogService{Repo: r}

	env := &testEnv{
		T:          t,
		E:          echo.New(),
		DB:         db,
		Auth:       &AuthHTTP{Svc: authSvc},
		Categories: &CategoryHTTP{Svc: catalogSvc},
		Products:   &ProductHTTP{Svc: catalogSvc},
		Images:     &ImageHTTP{Svc: catalogSvc},
	}

	Register(env.E, &Deps{
		Auth:       env.Auth,
		Categories: env.Categories,
		Products:   env.Products,
		Images:     env.Images,
		Search:     &SearchHTTP{Index: "productos"},
		JWTSecret:  testSecret,
	})

	return env
}

// serve pushes a request through the full router, middleware included.
func (env *testEnv) serve(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) createUser(role models.Role) (*models.Usuario, string) {
	env.T.Helper()

	pwHash, err := hash.HashPassword("Secret123")
	require.NoError(env.T, err)

	user := models.Usuario{
		Nombre:       "Usuario de prueba",
		Email:        string(role) + "@example.com",
		PasswordHash: pwHash,
		Role:         role,
	}
	require.NoError(env.T, env.DB.Create(&user).Error)

	token, _, err := tokens.SignAccessToken(user.ID, user.Email, user.Role, testSecret)
	require.NoError(env.T, err)

	return &user, token
}

func (env *testEnv) adminToken() string {
	env.T.Helper()
	_, token := env.createUser(models.RoleAdmin)
	return token
}

func (env *testEnv) clienteToken() string {
	env.T.Helper()
	_, token := env.createUser(models.RoleCliente)
	return token
}

func (env *testEnv) count(model interface{}) int64 {
	env.T.Helper()
	var n int64
	require.NoError(env.T, env.DB.Model(model).Count(&n).Error)
	return n
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}
