package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/models"
)

// productResponse wraps a product with the derived discount percent the
// storefront renders next to the old price.
type productResponse struct {
	models.Product
	DiscountPercent int `json:"discount_percent"`
}

func toResponse(p models.Product) productResponse {
	return productResponse{Product: p, DiscountPercent: p.DiscountPercent()}
}

func toResponses(products []models.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toResponse(p)
	}
	return out
}

// GetProductBySlug returns a single active product.
// URL param: /products/:slug
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var product models.Product
		err := db.Preload("Category").
			Where("slug = ? AND is_active = ?", slug, true).
			First(&product).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": models.ErrProductNotFound.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, toResponse(product))
	}
}
