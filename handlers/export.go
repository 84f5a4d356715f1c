package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportOrders streams all orders as an .xlsx workbook (owner only)
func ExportOrders(c *gin.Context) {
	all, err := repo.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Created", "Customer", "Email", "Phone", "Type", "Status", "Courier", "Items", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, o := range all {
		courier := ""
		if o.LivreurID != nil {
			courier = *o.LivreurID
		}
		itemCount := 0
		for _, it := range o.Items {
			itemCount += it.Quantity
		}
		values := []any{
			o.ID,
			o.CreatedAt.Format(time.RFC3339),
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			string(o.OrderType),
			string(o.Status),
			courier,
			itemCount,
			o.TotalAmount,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("write orders export: %v", err)
	}
}
