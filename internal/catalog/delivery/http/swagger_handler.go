package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListProducts godoc
// @Summary List visible products
// @Description Get the visible product list derived from the catalog, the selected category and the search text
// @Tags Catalog
// @Produce json
// @Param category query string false "Category filter (sentinel 'all' matches everything)"
// @Param search query string false "Case-insensitive substring match on the title"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int,category=string,search=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product from the fetched catalog
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// ListCategories godoc
// @Summary List categories
// @Description Get the fixed category set, including the 'all' sentinel
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{categories=array}}
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}

// GetCatalogStatus godoc
// @Summary Get catalog status
// @Description Report whether the catalog is loading, ready or failed
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{status=string,product_count=int}}
// @Router /api/catalog/status [get]
func (h *CatalogHandler) GetCatalogStatusDoc() {}

// RefreshCatalog godoc
// @Summary Refresh the catalog
// @Description Re-fetch the full product collection from the upstream API (the manual reload path)
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=object{products=int}}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/catalog/refresh [post]
func (h *CatalogHandler) RefreshCatalogDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}
