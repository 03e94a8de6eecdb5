package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/models"
)

type CreateProductRequest struct {
	Name            string           `json:"name" binding:"required"`
	Slug            string           `json:"slug" binding:"required"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price" binding:"required"`
	OldPrice        *decimal.Decimal `json:"old_price"`
	CategoryID      uint             `json:"category_id" binding:"required"`
	ImageURL        string           `json:"image_url"`
	AvailableSizes  string           `json:"available_sizes"`
	AvailableColors string           `json:"available_colors"`
	Stock           int              `json:"stock"`
	IsActive        *bool            `json:"is_active"`
}

func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		if req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must not be negative"})
			return
		}

		var category models.Category
		if err := db.First(&category, req.CategoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrCategoryNotFound.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			}
			return
		}

		product := models.Product{
			Name:            req.Name,
			Slug:            req.Slug,
			Description:     req.Description,
			Price:           req.Price,
			OldPrice:        req.OldPrice,
			CategoryID:      req.CategoryID,
			ImageURL:        req.ImageURL,
			AvailableSizes:  req.AvailableSizes,
			AvailableColors: req.AvailableColors,
			Stock:           req.Stock,
			IsActive:        true,
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, toResponse(product))
	}
}
