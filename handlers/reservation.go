package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	reservationRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/reservation"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/reservation"
)

// CreateReservationHandler books a room. Overlapping dates come back as 409;
// the write is never silently adjusted.
func (hb *HandlerBundle) CreateReservationHandler(c *gin.Context) {
	var in reservation.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := hb.ReservationService.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (hb *HandlerBundle) GetReservationHandler(c *gin.Context) {
	res, err := hb.ReservationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (hb *HandlerBundle) UpdateReservationHandler(c *gin.Context) {
	var in reservation.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := hb.ReservationService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (hb *HandlerBundle) CancelReservationHandler(c *gin.Context) {
	if err := hb.ReservationService.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation cancelled"})
}

func (hb *HandlerBundle) SetReservationStatusHandler(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := hb.ReservationService.SetStatus(c.Request.Context(), c.Param("id"), in.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

func (hb *HandlerBundle) DeleteReservationHandler(c *gin.Context) {
	if err := hb.ReservationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation deleted"})
}

// ListReservationsHandler lists reservations filtered by query params:
// roomId, stayId, guestId, status, and a from/to window (YYYY-MM-DD).
func (hb *HandlerBundle) ListReservationsHandler(c *gin.Context) {
	filter := reservationRepo.ListFilter{
		RoomID:  c.Query("roomId"),
		StayID:  c.Query("stayId"),
		GuestID: c.Query("guestId"),
		Status:  c.Query("status"),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date", "details": err.Error()})
			return
		}
		filter.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date", "details": err.Error()})
			return
		}
		filter.To = t
	}

	reservations, err := hb.ReservationService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// ReservationCalendarHandler returns non-cancelled reservations intersecting
// [from, to), for the calendar view.
func (hb *HandlerBundle) ReservationCalendarHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query params are required"})
		return
	}

	reservations, err := hb.ReservationService.Calendar(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}
