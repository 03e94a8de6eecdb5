package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/config"
	"github.com/Ixollozi/clothing-shop/models"
)

// orderings whitelists the values accepted for ?ordering= so the param
// never reaches the ORDER BY clause raw.
var orderings = map[string]string{
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
	"price":       "price ASC",
	"-price":      "price DESC",
	"name":        "name ASC",
	"-name":       "name DESC",
	"rating":      "rating ASC",
	"-rating":     "rating DESC",
}

// GetProducts lists active products with the storefront filters. While
// the catalog is empty the placeholder showcase is served instead, when
// the config enables it.
func GetProducts(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).
			Preload("Category").
			Where("is_active = ?", true)

		if category := c.Query("category"); category != "" {
			query = query.
				Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.slug = ?", category)
		}

		if minPrice := c.Query("min_price"); minPrice != "" {
			mp, err := strconv.ParseFloat(minPrice, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPrice := c.Query("max_price"); maxPrice != "" {
			mp, err := strconv.ParseFloat(maxPrice, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		if search := c.Query("search"); search != "" {
			like := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}

		orderClause, ok := orderings[c.DefaultQuery("ordering", "-created_at")]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ordering"})
			return
		}

		offset, limit := pagination(c)

		var products []models.Product
		if err := query.Order(orderClause).Offset(offset).Limit(limit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if len(products) == 0 && cfg.Get().Catalog.ShowPlaceholders {
			var count int64
			if err := db.Model(&models.Product{}).Count(&count).Error; err == nil && count == 0 {
				c.JSON(http.StatusOK, gin.H{"products": toResponses(PlaceholderProducts()), "placeholder": true})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"products": toResponses(products)})
	}
}

// GetPopularProducts returns the storefront's "popular" strip: top
// products by rating, then review count.
func GetPopularProducts(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := cfg.Get().Catalog.PopularLimit
		if limit <= 0 {
			limit = 8
		}

		var products []models.Product
		err := db.Preload("Category").
			Where("is_active = ?", true).
			Order("rating DESC, reviews_count DESC").
			Limit(limit).
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": toResponses(products)})
	}
}

// GetAllProductsAdmin lists every product, inactive included.
func GetAllProductsAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": toResponses(products)})
	}
}

func pagination(c *gin.Context) (offset, limit int) {
	offset = 0
	limit = 20
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	return offset, limit
}
