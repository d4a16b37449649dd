package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/user"
)

// RegisterUserHandler creates a staff account.
func (hb *HandlerBundle) RegisterUserHandler(c *gin.Context) {
	var in user.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, err := hb.UserService.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// LoginHandler authenticates a staff member and returns a bearer token.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := hb.UserService.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MeHandler returns the authenticated user.
func (hb *HandlerBundle) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	u, err := hb.UserService.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// RevokeTokenHandler invalidates the user's current session token.
func (hb *HandlerBundle) RevokeTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := hb.UserService.RevokeToken(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token revoked"})
}

// ListUsersHandler returns all staff accounts (admin only).
func (hb *HandlerBundle) ListUsersHandler(c *gin.Context) {
	users, err := hb.UserService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
