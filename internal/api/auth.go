package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/respicy/backend/internal/middleware"
	"github.com/respicy/backend/internal/service"
	"github.com/respicy/backend/internal/types"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	// Identifier is the user's email or username. The original field names
	// are accepted as aliases so older clients keep working.
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password" binding:"required"`
}

// AuthResponse is the public user payload plus the issued credential.
type AuthResponse struct {
	types.PublicUser
	Token string `json:"token"`
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	authService service.IAuthService
	limiter     *middleware.RateLimiter
}

func NewAuthHandler(authService service.IAuthService, limiter *middleware.RateLimiter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		limiter:     limiter,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(h.limiter.ByClientIP())
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, username, email and password are required"})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		PublicUser: types.NewPublicUser(user),
		Token:      token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "password is required"})
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		identifier = req.Username
	}

	user, token, err := h.authService.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		PublicUser: types.NewPublicUser(user),
		Token:      token,
	})
}
