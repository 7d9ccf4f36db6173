package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/igrii/tienda/internal/logging"
	"github.com/igrii/tienda/internal/models"
	"github.com/igrii/tienda/internal/service"
)

type ProductHTTP struct {
	Svc *service.CatalogService
}

func (h *ProductHTTP) GetProductos(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get_productos")

	items, err := h.Svc.GetProductos(ctx)
	if err != nil {
		l.Error("get_productos_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) CreateProducto(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create_producto")

	var req struct {
		Nombre      string  `json:"nombre"`
		Precio      float64 `json:"precio"`
		CategoriaID *uint   `json:"categoria_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_producto_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	prod := models.Producto{
		Nombre:      req.Nombre,
		Precio:      req.Precio,
		CategoriaID: req.CategoriaID,
	}
	if err := h.Svc.CreateProducto(ctx, &prod); err != nil {
		l.Error("create_producto_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	l.Info("create_producto_success", "producto_id", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHTTP) DeleteProducto(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete_producto")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		l.Warn("delete_producto_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	if err := h.Svc.DeleteProducto(ctx, uint(id)); err != nil {
		l.Error("delete_producto_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"mensaje": "Producto eliminado"})
}
