// Package controllers file: controllers/inventory_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go-skate-track/logger"
	"go-skate-track/services"
)

// InventoryController serves the skate inventory endpoints.
type InventoryController struct {
	InventoryService *services.InventoryService
	ExportService    *services.ExportService
}

// NewInventoryController creates an instance of InventoryController
func NewInventoryController(inventory *services.InventoryService, exports *services.ExportService) *InventoryController {
	logger.Debug.Println("NewInventoryController: Initializing InventoryController")
	return &InventoryController{InventoryService: inventory, ExportService: exports}
}

// restockRequest is the JSON body for POST /api/inventory/restock.
type restockRequest struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// ListInventory returns every inventory line, optionally narrowed by ?q=.
func (ic *InventoryController) ListInventory(c *gin.Context) {
	query := c.Query("q")
	items := ic.InventoryService.List()
	if query != "" {
		items = ic.InventoryService.Search(query)
	}
	c.JSON(http.StatusOK, gin.H{
		"items":   items,
		"summary": ic.InventoryService.Summary(),
	})
}

// Restock adds quantity pairs to one shoe size's total and availability.
func (ic *InventoryController) Restock(c *gin.Context) {
	var req restockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn.Printf("Restock: Malformed body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity cannot be negative"})
		return
	}

	item, err := ic.InventoryService.Restock(req.Size, req.Quantity)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	logger.Info.Printf("Restock: Size %s set to %d available (%s)", item.Size, item.Available, item.Status)
	c.JSON(http.StatusOK, item)
}

// ExportInventoryCSV downloads the inventory table as delimited text.
func (ic *InventoryController) ExportInventoryCSV(c *gin.Context) {
	items := ic.InventoryService.List()
	body := ic.ExportService.DelimitedText(services.InventoryHeaders, ic.ExportService.InventoryRows(items))
	name := ic.ExportService.ExportFileName("inventory", "", "csv", time.Now())

	logger.Info.Printf("ExportInventoryCSV: Exporting %d lines as %s", len(items), name)
	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.Data(http.StatusOK, "text/csv", []byte(body))
}

// ExportInventoryXLSX downloads the inventory table as a workbook.
func (ic *InventoryController) ExportInventoryXLSX(c *gin.Context) {
	items := ic.InventoryService.List()
	sheet := services.Sheet{Name: "Inventory", Rows: append([][]string{services.InventoryHeaders}, ic.ExportService.InventoryRows(items)...)}

	data, err := ic.ExportService.Workbook([]services.Sheet{sheet})
	if err != nil {
		logger.Error.Printf("ExportInventoryXLSX: Workbook build failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	name := ic.ExportService.ExportFileName("inventory", "", "xlsx", time.Now())
	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
