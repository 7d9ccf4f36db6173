package service

import (
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/igrii/tienda/internal/es"
	"github.com/igrii/tienda/internal/logging"
	"github.com/igrii/tienda/internal/models"
	"github.com/igrii/tienda/internal/mykafka"
	"github.com/igrii/tienda/internal/repo"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer

	// ES is optional; search and indexing are skipped when nil.
	ES      *elasticsearch.Client
	ESIndex string
}

func (s *CatalogService) GetCategorias(ctx context.Context) ([]models.Categoria, error) {
	return s.Repo.GetCategorias(ctx)
}

func (s *CatalogService) CreateCategoria(ctx context.Context, cat *models.Categoria) error {
	if err := s.Repo.CreateCategoria(ctx, cat); err != nil {
		return err
	}
	s.publish(ctx, fmt.Sprint(cat.ID), map[string]any{
		"type":         "category_created",
		"categoria_id": cat.ID,
		"nombre":       cat.Nombre,
	})
	return nil
}

func (s *CatalogService) DeleteCategoria(ctx context.Context, id uint) error {
	rows, err := s.Repo.DeleteCategoria(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		logging.FromContext(ctx).Info("delete_categoria_noop", "categoria_id", id)
		return nil
	}
	s.publish(ctx, fmt.Sprint(id), map[string]any{
		"type":         "category_deleted",
		"categoria_id": id,
	})
	return nil
}

func (s *CatalogService) GetProductos(ctx context.Context) ([]models.ProductoConCategoria, error) {
	return s.Repo.GetProductos(ctx)
}

func (s *CatalogService) CreateProducto(ctx context.Context, prod *models.Producto) error {
	if err := s.Repo.CreateProducto(ctx, prod); err != nil {
		return err
	}

	if s.ES != nil {
		if err := es.IndexProducto(ctx, s.ES, s.ESIndex, prod); err != nil {
			logging.FromContext(ctx).Warn("es_index_failed", "producto_id", prod.ID, "error", err)
		}
	}

	s.publish(ctx, fmt.Sprint(prod.ID), map[string]any{
		"type":        "product_created",
		"producto_id": prod.ID,
		"nombre":      prod.Nombre,
	})
	return nil
}

func (s *CatalogService) DeleteProducto(ctx context.Context, id uint) error {
	rows, err := s.Repo.DeleteProducto(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		logging.FromContext(ctx).Info("delete_producto_noop", "producto_id", id)
		return nil
	}

	if s.ES != nil {
		if err := es.DeleteProducto(ctx, s.ES, s.ESIndex, id); err != nil {
			logging.FromContext(ctx).Warn("es_delete_failed", "producto_id", id, "error", err)
		}
	}

	s.publish(ctx, fmt.Sprint(id), map[string]any{
		"type":        "product_deleted",
		"producto_id": id,
	})
	return nil
}

func (s *CatalogService) GetImagenes(ctx context.Context, productoID uint) ([]models.ImagenProducto, error) {
	return s.Repo.GetImagenes(ctx, productoID)
}

func (s *CatalogService) CreateImagen(ctx context.Context, img *models.ImagenProducto) error {
	if err := s.Repo.CreateImagen(ctx, img); err != nil {
		return err
	}
	s.publish(ctx, fmt.Sprint(img.ID), map[string]any{
		"type":        "image_created",
		"imagen_id":   img.ID,
		"producto_id": img.ProductoID,
	})
	return nil
}

func (s *CatalogService) DeleteImagen(ctx context.Context, id uint) error {
	rows, err := s.Repo.DeleteImagen(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		logging.FromContext(ctx).Info("delete_imagen_noop", "imagen_id", id)
		return nil
	}
	s.publish(ctx, fmt.Sprint(id), map[string]any{
		"type":      "image_deleted",
		"imagen_id": id,
	})
	return nil
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]any) {
	if err := s.Producer.PublishEvent(ctx, "catalog_events", key, event); err != nil {
		logging.FromContext(ctx).Warn("kafka_publish_failed", "topic", "catalog_events", "error", err)
	}
}
