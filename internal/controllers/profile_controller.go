package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DevLink/devlink_backend/internal/models"
	"github.com/DevLink/devlink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ProfileController プロフィールに関するコントローラー
type ProfileController struct {
	profileService services.ProfileService
	githubService  services.GithubService
}

// NewProfileController ProfileControllerを作成
func NewProfileController(profileService services.ProfileService, githubService services.GithubService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		githubService:  githubService,
	}
}

// ProfileRequest プロフィール作成・更新リクエスト
// skillsはカンマ区切りのテキスト
type ProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" binding:"required"`
	Skills         string `json:"skills" binding:"required"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	Linkedin       string `json:"linkedin"`
	Facebook       string `json:"facebook"`
}

// ExperienceRequest 職歴追加リクエスト
type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationRequest 学歴追加リクエスト
type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// currentUser コンテキストから認証済みユーザーを取得
func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return nil, false
	}
	return user.(*models.User), true
}

// GetMe 自分のプロフィールを取得
func (c *ProfileController) GetMe(ctx *gin.Context) {
	u, ok := currentUser(ctx)
	if !ok {
		return
	}

	profile, err := c.profileService.GetByUserID(u.ID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			// 互換のためNotFoundも400で返す
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// Upsert プロフィールを作成または更新
func (c *ProfileController) Upsert(ctx *gin.Context) {
	u, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := c.profileService.Upsert(u.ID, services.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		Skills:         req.Skills,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Instagram:      req.Instagram,
		Linkedin:       req.Linkedin,
		Facebook:       req.Facebook,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// List すべてのプロフィールを取得
func (c *ProfileController) List(ctx *gin.Context) {
	profiles, err := c.profileService.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, profiles)
}

// GetByUserID ユーザーIDでプロフィールを取得（公開）
func (c *ProfileController) GetByUserID(ctx *gin.Context) {
	// 不正なID形式もNotFound扱いにする
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": services.ErrProfileNotFound.Error()})
		return
	}

	profile, perr := c.profileService.GetByUserID(uint(userID))
	if perr != nil {
		if errors.Is(perr, services.ErrProfileNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": perr.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// DeleteAccount 投稿・プロフィール・ユーザーをまとめて削除
func (c *ProfileController) DeleteAccount(ctx *gin.Context) {
	u, ok := currentUser(ctx)
	if !ok {
		return
	}

	if err := c.profileService.DeleteAccount(u.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "ユーザーを削除しました"})
}

// AddExperience 職歴を追加
func (c *ProfileController) AddExperience(ctx *gin.Context) {
	u, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req ExperienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := c.profileService.AddExperience(u.ID, services.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// DeleteExperience 職歴を削除
func (c *ProfileController) DeleteExperience(ctx *gin.Context) {
	u, ok := currentUser(ctx)
	if !ok {
		return
	}

	// 数値でないIDはどの行にも一致しないので、そのまま現状のプロフィールが返る
	expID, _ := strconv.ParseUint(ctx.Param("exp_id"), 10, 64)

	profile, err := c.profileService.RemoveExperience(u.ID, uint(expID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// AddEducation 学歴を追加
func (c *ProfileController) AddEducation(ctx *gin.Context) {
	u, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req EducationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := c.profileService.AddEducation(u.ID, services.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// DeleteEducation 学歴を削除
func (c *ProfileController) DeleteEducation(ctx *gin.Context) {
	u, ok := currentUser(ctx)
	if !ok {
		return
	}

	eduID, _ := strconv.ParseUint(ctx.Param("edu_id"), 10, 64)

	profile, err := c.profileService.RemoveEducation(u.ID, uint(eduID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// GithubRepos GitHubの公開リポジトリ一覧を取得（公開）
func (c *ProfileController) GithubRepos(ctx *gin.Context) {
	repos, err := c.githubService.ListRepos(ctx.Param("username"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, repos)
}
