package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bike-storefront/internal/catalog"
	service "github.com/aaravmahajanofficial/bike-storefront/internal/services"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts godoc
//	@Summary		Browse the catalog
//	@Description	Filters, sorts and paginates bikes. Malformed parameters fall back to their defaults.
//	@Tags			Catalog
//	@Produce		json
//	@Param			q			query		string	false	"Search text"
//	@Param			brand		query		string	false	"Comma separated brand ids"
//	@Param			category	query		string	false	"Comma separated category ids"
//	@Param			minPrice	query		number	false	"Lower price bound"
//	@Param			maxPrice	query		number	false	"Upper price bound"
//	@Param			sort		query		string	false	"featured, priceAsc, priceDesc, newest or rating"
//	@Param			page		query		int		false	"Page number"
//	@Success		200			{object}	models.ProductListResponse
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := catalog.FromValues(r.URL.Query())

		products, err := h.catalogService.ListProducts(r.Context(), query)
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Debug("Products listed", slog.Int("total", products.Total), slog.Int("page", products.Page))
		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//	@Summary		Get a bike by slug
//	@Tags			Catalog
//	@Produce		json
//	@Param			slug	path		string	true	"Product slug"
//	@Success		200		{object}	models.ProductDetailResponse
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{slug} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		slug := r.PathValue("slug")

		product, err := h.catalogService.GetProduct(r.Context(), slug)
		if err != nil {
			logger.Warn("Product lookup failed", slog.String("slug", slug), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *CatalogHandler) ListBrands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.catalogService.ListBrands(r.Context()))
	}
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.catalogService.ListCategories(r.Context()))
	}
}

// BrandProducts godoc
//	@Summary	List the bikes of a brand
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path		string	true	"Brand id"
//	@Success	200	{array}		models.Product
//	@Failure	404	{object}	response.ErrorResponse	"Brand not found"
//	@Router		/brands/{id}/products [get]
func (h *CatalogHandler) BrandProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		brandID := r.PathValue("id")

		products, err := h.catalogService.ProductsByBrand(r.Context(), brandID)
		if err != nil {
			logger.Warn("Brand lookup failed", slog.String("brandId", brandID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// CategoryProducts godoc
//	@Summary	List the bikes of a category
//	@Tags		Catalog
//	@Produce	json
//	@Param		slug	path		string	true	"Category slug"
//	@Success	200		{array}		models.Product
//	@Failure	404		{object}	response.ErrorResponse	"Category not found"
//	@Router		/categories/{slug}/products [get]
func (h *CatalogHandler) CategoryProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		slug := r.PathValue("slug")

		products, err := h.catalogService.ProductsByCategory(r.Context(), slug)
		if err != nil {
			logger.Warn("Category lookup failed", slog.String("slug", slug), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// Collection serves the featured, new, bestsellers and on-sale shelves.
func (h *CatalogHandler) Collection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		name := r.PathValue("name")

		products, err := h.catalogService.ProductsInCollection(r.Context(), name)
		if err != nil {
			logger.Warn("Unknown collection", slog.String("collection", name))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}
