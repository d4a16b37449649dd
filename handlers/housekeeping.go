package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/housekeeping"
)

func (hb *HandlerBundle) CreateMaidHandler(c *gin.Context) {
	var m models.Maid
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if m.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := hb.HousekeepingService.CreateMaid(c.Request.Context(), &m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (hb *HandlerBundle) GetMaidHandler(c *gin.Context) {
	m, err := hb.HousekeepingService.GetMaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (hb *HandlerBundle) UpdateMaidHandler(c *gin.Context) {
	var m models.Maid
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	m.ID = c.Param("id")

	if err := hb.HousekeepingService.UpdateMaid(c.Request.Context(), &m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (hb *HandlerBundle) ListMaidsHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	maids, err := hb.HousekeepingService.ListMaids(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, maids)
}

func (hb *HandlerBundle) CreateScheduleHandler(c *gin.Context) {
	var in housekeeping.ScheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sched, err := hb.HousekeepingService.Schedule(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sched)
}

// CompleteScheduleHandler marks a cleaning done and freezes its payout.
func (hb *HandlerBundle) CompleteScheduleHandler(c *gin.Context) {
	sched, err := hb.HousekeepingService.CompleteSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

func (hb *HandlerBundle) DeleteScheduleHandler(c *gin.Context) {
	if err := hb.HousekeepingService.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule deleted"})
}

// ListSchedulesHandler lists cleaning schedules filtered by maidId and a
// from/to day window.
func (hb *HandlerBundle) ListSchedulesHandler(c *gin.Context) {
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

	schedules, err := hb.HousekeepingService.ListSchedules(c.Request.Context(), c.Query("maidId"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// GenerateCleaningsHandler creates pending cleanings for today's departures
// on demand. The nightly job does the same automatically.
func (hb *HandlerBundle) GenerateCleaningsHandler(c *gin.Context) {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": err.Error()})
			return
		}
		day = parsed
	}

	created, err := hb.HousekeepingService.GenerateFromDepartures(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}
