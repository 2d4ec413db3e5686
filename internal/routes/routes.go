package routes

import (
	"log"

	"github.com/DevLink/devlink_backend/internal/config"
	"github.com/DevLink/devlink_backend/internal/controllers"
	"github.com/DevLink/devlink_backend/internal/middlewares"
	"github.com/DevLink/devlink_backend/internal/repository"
	"github.com/DevLink/devlink_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	profileService := services.NewProfileService(profileRepo, userRepo, postRepo)
	githubService := services.NewGithubService(cfg)
	avatarService, err := services.NewAvatarService(cfg, userRepo)
	if err != nil {
		log.Fatalf("アバターサービスの初期化に失敗しました: %v", err)
	}

	// コントローラーを作成
	userController := controllers.NewUserController(authService, avatarService)
	authController := controllers.NewAuthController(authService)
	profileController := controllers.NewProfileController(profileService, githubService)
	healthController := controllers.NewHealthController()

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)

	// APIグループを作成
	api := r.Group("/api")
	{
		// ヘルスチェックルート（認証不要）
		api.GET("/health", healthController.Check)

		// ユーザー登録ルート
		api.POST("/users", userController.Register)
		api.POST("/users/avatar", authMiddleware, userController.UploadAvatar)

		// 認証ルート
		api.POST("/auth", authController.Login)
		api.GET("/auth", authMiddleware, authController.GetMe)

		// プロフィールルート
		profile := api.Group("/profile")
		{
			// 認証不要
			profile.GET("", profileController.List)
			profile.GET("/user/:user_id", profileController.GetByUserID)
			profile.GET("/github/:username", profileController.GithubRepos)

			// 認証が必要
			profile.GET("/me", authMiddleware, profileController.GetMe)
			profile.POST("", authMiddleware, profileController.Upsert)
			profile.DELETE("", authMiddleware, profileController.DeleteAccount)
			profile.PUT("/experience", authMiddleware, profileController.AddExperience)
			profile.DELETE("/experience/:exp_id", authMiddleware, profileController.DeleteExperience)
			profile.PUT("/education", authMiddleware, profileController.AddEducation)
			profile.DELETE("/education/:edu_id", authMiddleware, profileController.DeleteEducation)
		}
	}

	return r
}
