package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/respicy/backend/internal/middleware"
	"github.com/respicy/backend/internal/service"
	"github.com/respicy/backend/internal/types"
)

// maxAvatarSize caps uploaded avatar binaries at 5MB.
const maxAvatarSize = 5 << 20

// UserHandler serves profile reads and updates.
type UserHandler struct {
	profileService service.IProfileService
	authService    service.IAuthService
}

func NewUserHandler(profileService service.IProfileService, authService service.IAuthService) *UserHandler {
	return &UserHandler{
		profileService: profileService,
		authService:    authService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/:id", middleware.AuthMiddleware(h.authService), h.GetProfile)
		users.PUT("/profile", middleware.AuthMiddleware(h.authService), h.UpdateProfile)
		users.POST("/avatar", middleware.AuthMiddleware(h.authService), h.UploadAvatar)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	profile, err := h.profileService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	user, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadAvatar accepts a multipart avatar file, stores it and returns the
// normalized URL.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "avatar file is required"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "avatar file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize))
	if err != nil {
		respondError(c, err)
		return
	}

	url, err := h.profileService.StoreAvatarBlob(c.Request.Context(), userID, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
