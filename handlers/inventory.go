package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/inventory"
)

func (hb *HandlerBundle) CreateInventoryItemHandler(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if item.StayID == "" || item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stayId and name are required"})
		return
	}

	if err := hb.InventoryService.CreateItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (hb *HandlerBundle) GetInventoryItemHandler(c *gin.Context) {
	item, err := hb.InventoryService.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (hb *HandlerBundle) UpdateInventoryItemHandler(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	item.ID = c.Param("id")

	if err := hb.InventoryService.UpdateItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (hb *HandlerBundle) DeleteInventoryItemHandler(c *gin.Context) {
	if err := hb.InventoryService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

func (hb *HandlerBundle) ListInventoryItemsHandler(c *gin.Context) {
	items, err := hb.InventoryService.ListItems(c.Request.Context(), c.Query("stayId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (hb *HandlerBundle) ListLowStockHandler(c *gin.Context) {
	items, err := hb.InventoryService.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// MoveInventoryHandler records a stock movement. Outbound moves that would
// take quantity below zero are rejected.
func (hb *HandlerBundle) MoveInventoryHandler(c *gin.Context) {
	var in inventory.MovementInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	item, err := hb.InventoryService.Move(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (hb *HandlerBundle) ListInventoryMovementsHandler(c *gin.Context) {
	movements, err := hb.InventoryService.ListMovements(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}
