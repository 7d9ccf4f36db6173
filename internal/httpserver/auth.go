package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/igrii/tienda/internal/logging"
	authmw "github.com/igrii/tienda/internal/middleware/auth"
	"github.com/igrii/tienda/internal/models"
	"github.com/igrii/tienda/internal/repo"
	"github.com/igrii/tienda/internal/service"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req struct {
		Nombre   string `json:"nombre"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan datos"})
	}

	user, err := h.Svc.Register(ctx, req.Nombre, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan datos"})
		case errors.Is(err, repo.ErrUserAlreadyExist):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email ya registrado"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}

	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan credenciales"})
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan credenciales"})
		case errors.Is(err, service.ErrUserNotFound):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Usuario no encontrado"})
		case errors.Is(err, service.ErrWrongPassword):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Contraseña incorrecta"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": res.Token,
		"user":  res.User,
	})
}

// Verify answers {valid:false} for any bad token instead of failing the
// request pipeline; the storefront polls it on page load.
func (h *AuthHTTP) Verify(c echo.Context) error {
	raw := authmw.BearerToken(c)
	if raw == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"valid": false, "error": "No token"})
	}

	claims, err := h.Svc.Verify(raw)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"valid": false, "error": "Token inválido"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"valid": true,
		"user": echo.Map{
			"id":    claims.UserID(),
			"email": claims.Email,
			"role":  claims.Role,
		},
	})
}
