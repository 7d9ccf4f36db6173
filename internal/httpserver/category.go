package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/igrii/tienda/internal/logging"
	"github.com/igrii/tienda/internal/models"
	"github.com/igrii/tienda/internal/service"
)

type CategoryHTTP struct {
	Svc *service.CatalogService
}

func (h *CategoryHTTP) GetCategorias(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get_categorias")

	items, err := h.Svc.GetCategorias(ctx)
	if err != nil {
		l.Error("get_categorias_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHTTP) CreateCategoria(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create_categoria")

	var req struct {
		Nombre string `json:"nombre"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_categoria_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	cat := models.Categoria{Nombre: req.Nombre}
	if err := h.Svc.CreateCategoria(ctx, &cat); err != nil {
		l.Error("create_categoria_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	l.Info("create_categoria_success", "categoria_id", cat.ID)
	return c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHTTP) DeleteCategoria(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete_categoria")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		l.Warn("delete_categoria_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	if err := h.Svc.DeleteCategoria(ctx, uint(id)); err != nil {
		l.Error("delete_categoria_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"mensaje": "Categoría eliminada"})
}
