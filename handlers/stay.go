package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

func (hb *HandlerBundle) CreateStayHandler(c *gin.Context) {
	var st models.Stay
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if st.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := hb.StayService.CreateStay(c.Request.Context(), &st); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (hb *HandlerBundle) GetStayHandler(c *gin.Context) {
	st, err := hb.StayService.GetStay(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (hb *HandlerBundle) UpdateStayHandler(c *gin.Context) {
	var st models.Stay
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	st.ID = c.Param("id")

	if err := hb.StayService.UpdateStay(c.Request.Context(), &st); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (hb *HandlerBundle) DeleteStayHandler(c *gin.Context) {
	if err := hb.StayService.DeleteStay(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stay deleted"})
}

func (hb *HandlerBundle) ListStaysHandler(c *gin.Context) {
	stays, err := hb.StayService.ListStays(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stays)
}

func (hb *HandlerBundle) CreateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if room.StayID == "" || room.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stayId and name are required"})
		return
	}

	if err := hb.StayService.CreateRoom(c.Request.Context(), &room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (hb *HandlerBundle) GetRoomHandler(c *gin.Context) {
	room, err := hb.StayService.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (hb *HandlerBundle) UpdateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	room.ID = c.Param("id")

	if err := hb.StayService.UpdateRoom(c.Request.Context(), &room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (hb *HandlerBundle) DeleteRoomHandler(c *gin.Context) {
	if err := hb.StayService.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

// ListRoomsHandler lists rooms, optionally scoped to one stay and to active
// rooms only (?stayId=...&active=true).
func (hb *HandlerBundle) ListRoomsHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	rooms, err := hb.StayService.ListRooms(c.Request.Context(), c.Query("stayId"), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// UploadRoomPhotoHandler accepts a multipart photo and attaches its hosted
// URL to the room.
func (hb *HandlerBundle) UploadRoomPhotoHandler(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required", "details": err.Error()})
		return
	}

	url, err := hb.StayService.AttachRoomPhoto(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}
