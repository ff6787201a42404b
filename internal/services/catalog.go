package service

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
)

// Collection names served by ProductsInCollection.
const (
	CollectionFeatured    = "featured"
	CollectionNew         = "new"
	CollectionBestsellers = "bestsellers"
	CollectionOnSale      = "on-sale"
)

type CatalogService interface {
	ListProducts(ctx context.Context, query models.CatalogQuery) (*models.ProductListResponse, error)
	GetProduct(ctx context.Context, slug string) (*models.ProductDetailResponse, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ListBrands(ctx context.Context) []models.Brand
	ListCategories(ctx context.Context) []models.Category
	ProductsByBrand(ctx context.Context, brandID string) ([]*models.Product, error)
	ProductsByCategory(ctx context.Context, slug string) ([]*models.Product, error)
	ProductsInCollection(ctx context.Context, name string) ([]*models.Product, error)
}

type catalogService struct {
	catalog  *catalog.Catalog
	pageSize int
}

func NewCatalogService(c *catalog.Catalog, pageSize int) CatalogService {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}

	return &catalogService{catalog: c, pageSize: pageSize}
}

// ListProducts runs the query pipeline. The page size is fixed by the
// service and the search text is trimmed and capped first.
func (s *catalogService) ListProducts(_ context.Context, query models.CatalogQuery) (*models.ProductListResponse, error) {
	query.Text = searchText(query.Text)
	query.PageSize = s.pageSize

	if query.Page < 1 {
		query.Page = 1
	}

	start := time.Now()
	page := catalog.Run(s.catalog.Products(), query)
	metrics.ObserveCatalogQuery(time.Since(start))

	return &models.ProductListResponse{
		ProductPage: page,
		Query:       query,
		Params:      catalog.EncodeQuery(query),
	}, nil
}

func (s *catalogService) GetProduct(_ context.Context, slug string) (*models.ProductDetailResponse, error) {
	product, ok := s.catalog.ProductBySlug(slug)
	if !ok {
		return nil, errors.NotFoundError("Product not found").WithDetail(slug)
	}

	return &models.ProductDetailResponse{
		Product:        product,
		Related:        s.catalog.Related(product),
		FormattedPrice: catalog.FormatPrice(product.EffectivePrice()),
	}, nil
}

func (s *catalogService) GetProductByID(_ context.Context, id string) (*models.Product, error) {
	product, ok := s.catalog.ProductByID(id)
	if !ok {
		return nil, errors.NotFoundError("Product not found").WithDetail(id)
	}

	return product, nil
}

func (s *catalogService) ListBrands(context.Context) []models.Brand {
	return s.catalog.Brands()
}

func (s *catalogService) ListCategories(context.Context) []models.Category {
	return s.catalog.Categories()
}

func (s *catalogService) ProductsByBrand(_ context.Context, brandID string) ([]*models.Product, error) {
	if _, ok := s.catalog.BrandByID(brandID); !ok {
		return nil, errors.NotFoundError("Brand not found").WithDetail(brandID)
	}

	return s.catalog.ByBrand(brandID), nil
}

func (s *catalogService) ProductsByCategory(_ context.Context, slug string) ([]*models.Product, error) {
	category, ok := s.catalog.CategoryBySlug(slug)
	if !ok {
		return nil, errors.NotFoundError("Category not found").WithDetail(slug)
	}

	return s.catalog.ByCategory(category.ID), nil
}

func (s *catalogService) ProductsInCollection(_ context.Context, name string) ([]*models.Product, error) {
	switch name {
	case CollectionFeatured:
		return s.catalog.Featured(), nil
	case CollectionNew:
		return s.catalog.NewArrivals(), nil
	case CollectionBestsellers:
		return s.catalog.Bestsellers(), nil
	case CollectionOnSale:
		return s.catalog.OnSale(), nil
	default:
		return nil, errors.NotFoundError("Collection not found").WithDetail(name)
	}
}
