package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/maintenance"
)

func (hb *HandlerBundle) CreateMaintenanceTaskHandler(c *gin.Context) {
	var in maintenance.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	task, err := hb.MaintenanceService.CreateTask(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (hb *HandlerBundle) GetMaintenanceTaskHandler(c *gin.Context) {
	task, err := hb.MaintenanceService.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (hb *HandlerBundle) UpdateMaintenanceTaskHandler(c *gin.Context) {
	var in maintenance.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	task, err := hb.MaintenanceService.UpdateTask(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (hb *HandlerBundle) SetMaintenanceStatusHandler(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := hb.MaintenanceService.SetTaskStatus(c.Request.Context(), c.Param("id"), in.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

func (hb *HandlerBundle) DeleteMaintenanceTaskHandler(c *gin.Context) {
	if err := hb.MaintenanceService.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

func (hb *HandlerBundle) ListMaintenanceTasksHandler(c *gin.Context) {
	tasks, err := hb.MaintenanceService.ListTasks(c.Request.Context(), c.Query("stayId"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (hb *HandlerBundle) CompleteOccurrenceHandler(c *gin.Context) {
	var in struct {
		Notes string `json:"notes"`
	}
	// Body is optional for completion.
	_ = c.ShouldBindJSON(&in)

	occ, err := hb.MaintenanceService.CompleteOccurrence(c.Request.Context(), c.Param("id"), in.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, occ)
}

func (hb *HandlerBundle) ListOccurrencesHandler(c *gin.Context) {
	var from, to time.Time
	var err error
	if f := c.Query("from"); f != "" {
		if from, err = time.Parse("2006-01-02", f); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date", "details": err.Error()})
			return
		}
	}
	if t := c.Query("to"); t != "" {
		if to, err = time.Parse("2006-01-02", t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date", "details": err.Error()})
			return
		}
	}

	occurrences, err := hb.MaintenanceService.ListOccurrences(c.Request.Context(), c.Query("taskId"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, occurrences)
}
