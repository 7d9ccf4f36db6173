package repo

import (
	"context"

	"github.com/igrii/tienda/internal/models"
)

func (r *GormRepo) GetCategorias(ctx context.Context) ([]models.Categoria, error) {
	items := []models.Categoria{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateCategoria(ctx context.Context, cat *models.Categoria) error {
	return r.DB.WithContext(ctx).Create(cat).Error
}

// DeleteCategoria removes the row and reports how many rows were hit.
// Zero affected rows is not an error, delete is idempotent.
func (r *GormRepo) DeleteCategoria(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.Categoria{}, id)
	return res.RowsAffected, res.Error
}

func (r *GormRepo) GetProductos(ctx context.Context) ([]models.ProductoConCategoria, error) {
	items := []models.ProductoConCategoria{}
	err := r.DB.WithContext(ctx).
		Table("productos").
		Select("productos.id, productos.nombre, productos.precio, productos.categoria_id, categorias.nombre AS categoria").
		Joins("LEFT JOIN categorias ON categorias.id = productos.categoria_id").
		Order("productos.id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProducto(ctx context.Context, prod *models.Producto) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) DeleteProducto(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.Producto{}, id)
	return res.RowsAffected, res.Error
}

func (r *GormRepo) GetImagenes(ctx context.Context, productoID uint) ([]models.ImagenProducto, error) {
	items := []models.ImagenProducto{}
	if err := r.DB.WithContext(ctx).Where("producto_id = ?", productoID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateImagen(ctx context.Context, img *models.ImagenProducto) error {
	return r.DB.WithContext(ctx).Create(img).Error
}

func (r *GormRepo) DeleteImagen(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.ImagenProducto{}, id)
	return res.RowsAffected, res.Error
}
