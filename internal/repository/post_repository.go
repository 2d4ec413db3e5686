package repository

import (
	"github.com/DevLink/devlink_backend/internal/models"

	"gorm.io/gorm"
)

// PostRepository 投稿に関するデータベース操作を行うインターフェース
type PostRepository interface {
	ListByUser(userID uint) ([]models.Post, error)
	DeleteByUser(userID uint) error
}

// postRepository PostRepositoryの実装
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository PostRepositoryを作成
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// ListByUser ユーザーの投稿一覧を取得
func (r *postRepository) ListByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// DeleteByUser ユーザーの投稿をすべて削除（アカウント削除カスケード用）
func (r *postRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Post{}).Error
}
