package controllers

import (
	"errors"
	"net/http"

	"github.com/DevLink/devlink_backend/internal/models"
	"github.com/DevLink/devlink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController ユーザー登録に関するコントローラー
type UserController struct {
	authService   services.AuthService
	avatarService services.AvatarService
}

// NewUserController UserControllerを作成
func NewUserController(authService services.AuthService, avatarService services.AvatarService) *UserController {
	return &UserController{
		authService:   authService,
		avatarService: avatarService,
	}
}

// RegisterRequest ユーザー登録リクエスト
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// TokenResponse トークンレスポンス
type TokenResponse struct {
	Token string `json:"token"`
}

// Register ユーザー登録
func (c *UserController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// UploadAvatar アバター画像をアップロード
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "アバター画像が必要です"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}
	defer file.Close()

	updated, err := c.avatarService.Upload(u.ID, file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
