package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/models"
)

// UpdateProductRequest carries only the mutable fields. The slug is
// fixed at creation and deliberately absent here.
type UpdateProductRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	OldPrice        *decimal.Decimal `json:"old_price"`
	CategoryID      *uint            `json:"category_id"`
	ImageURL        *string          `json:"image_url"`
	AvailableSizes  *string          `json:"available_sizes"`
	AvailableColors *string          `json:"available_colors"`
	Stock           *int             `json:"stock"`
	IsActive        *bool            `json:"is_active"`
}

func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": models.ErrProductNotFound.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Price != nil {
			if req.Price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
				return
			}
			product.Price = *req.Price
		}
		if req.OldPrice != nil {
			product.OldPrice = req.OldPrice
		}
		if req.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *req.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrCategoryNotFound.Error()})
				return
			}
			product.CategoryID = *req.CategoryID
		}
		if req.ImageURL != nil {
			product.ImageURL = *req.ImageURL
		}
		if req.AvailableSizes != nil {
			product.AvailableSizes = *req.AvailableSizes
		}
		if req.AvailableColors != nil {
			product.AvailableColors = *req.AvailableColors
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock must not be negative"})
				return
			}
			product.Stock = *req.Stock
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, toResponse(product))
	}
}
