package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/igrii/tienda/internal/logging"
	"github.com/igrii/tienda/internal/models"
	"github.com/igrii/tienda/internal/service"
)

type ImageHTTP struct {
	Svc *service.CatalogService
}

func (h *ImageHTTP) GetImagenes(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get_imagenes")

	productoID, err := strconv.ParseUint(c.Param("producto_id"), 10, 64)
	if err != nil {
		l.Warn("get_imagenes_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	items, err := h.Svc.GetImagenes(ctx, uint(productoID))
	if err != nil {
		l.Error("get_imagenes_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ImageHTTP) CreateImagen(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create_imagen")

	var req struct {
		URL        string `json:"url"`
		ProductoID uint   `json:"producto_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_imagen_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	img := models.ImagenProducto{URL: req.URL, ProductoID: req.ProductoID}
	if err := h.Svc.CreateImagen(ctx, &img); err != nil {
		l.Error("create_imagen_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	l.Info("create_imagen_success", "imagen_id", img.ID)
	return c.JSON(http.StatusCreated, img)
}

func (h *ImageHTTP) DeleteImagen(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete_imagen")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		l.Warn("delete_imagen_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	if err := h.Svc.DeleteImagen(ctx, uint(id)); err != nil {
		l.Error("delete_imagen_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"mensaje": "Imagen eliminada"})
}
