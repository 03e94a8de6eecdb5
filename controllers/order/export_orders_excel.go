package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/models"
)

// ExportOrdersToExcel streams all orders as an .xlsx download for the
// back-office, one row per order item so line prices stay visible.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "Status", "Customer", "Phone", "City",
			"Product", "Size", "Color", "Quantity", "Price", "Subtotal",
			"OrderTotal", "Payment", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			for _, item := range o.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(o.FirstName + " " + o.LastName)
				row.AddCell().SetValue(o.Phone)
				row.AddCell().SetValue(o.City)
				row.AddCell().SetValue(item.ProductName)
				row.AddCell().SetValue(item.Size)
				row.AddCell().SetValue(item.Color)
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.Price.StringFixed(2))
				row.AddCell().SetValue(item.Subtotal().StringFixed(2))
				row.AddCell().SetValue(o.Total.StringFixed(2))
				row.AddCell().SetValue(string(o.PaymentMethod))
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
