package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/igrii/tienda/internal/middleware/auth"
)

type Deps struct {
	Auth       *AuthHTTP
	Categories *CategoryHTTP
	Products   *ProductHTTP
	Images     *ImageHTTP
	Search     *SearchHTTP
	JWTSecret  []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.GET("/verify", d.Auth.Verify)

	mw := authmw.New(d.JWTSecret)

	e.GET("/categorias", d.Categories.GetCategorias)
	e.POST("/categorias", d.Categories.CreateCategoria, mw.RequireAdmin)
	e.DELETE("/categorias/:id", d.Categories.DeleteCategoria, mw.RequireAdmin)

	e.GET("/productos", d.Products.GetProductos)
	e.GET("/productos/buscar", d.Search.SearchProductos)
	e.POST("/productos", d.Products.CreateProducto, mw.RequireAdmin)
	e.DELETE("/productos/:id", d.Products.DeleteProducto, mw.RequireAdmin)

	e.GET("/imagenes/:producto_id", d.Images.GetImagenes)
	e.POST("/imagenes", d.Images.CreateImagen, mw.RequireAdmin)
	e.DELETE("/imagenes/:id", d.Images.DeleteImagen, mw.RequireAdmin)
}
