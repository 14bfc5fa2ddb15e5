package controllers

import (
	"net/http"
	"strconv"

	"storefront/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{Catalog: catalog}
}

// GetProduct returns the product detail for a numeric catalog id.
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, svcErr := pc.Catalog.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, product)
}

// Search runs a case-insensitive name search. An empty result carries an
// explicit marker so clients can show a "no results" state.
func (pc *ProductController) Search(c *gin.Context) {
	query := c.Query("q")

	products, svcErr := pc.Catalog.Search(c.Request.Context(), query)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusOK, gin.H{"results": []any{}, "message": "No results found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": products})
}
