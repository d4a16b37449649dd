package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

func (hb *HandlerBundle) CreateGuestHandler(c *gin.Context) {
	var g models.Guest
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if g.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := hb.GuestService.Create(c.Request.Context(), &g); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (hb *HandlerBundle) GetGuestHandler(c *gin.Context) {
	g, err := hb.GuestService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (hb *HandlerBundle) UpdateGuestHandler(c *gin.Context) {
	var g models.Guest
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	g.ID = c.Param("id")

	if err := hb.GuestService.Update(c.Request.Context(), &g); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (hb *HandlerBundle) DeleteGuestHandler(c *gin.Context) {
	if err := hb.GuestService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "guest deleted"})
}

func (hb *HandlerBundle) ListGuestsHandler(c *gin.Context) {
	guests, err := hb.GuestService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}
