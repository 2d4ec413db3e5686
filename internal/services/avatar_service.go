package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/DevLink/devlink_backend/internal/config"
	"github.com/DevLink/devlink_backend/internal/models"
	"github.com/DevLink/devlink_backend/internal/repository"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// AvatarService アバター画像のアップロードを管理するサービス
// アップロード成功時はGravatar由来のURLをCloudinaryのURLで置き換える
type AvatarService interface {
	Upload(userID uint, file multipart.File) (*models.User, error)
}

type avatarService struct {
	cld      *cloudinary.Cloudinary
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewAvatarService AvatarServiceを作成
func NewAvatarService(cfg *config.Config, userRepo repository.UserRepository) (AvatarService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, err
	}

	return &avatarService{
		cld:      cld,
		cfg:      cfg,
		userRepo: userRepo,
	}, nil
}

// Upload アバター画像をアップロードしてユーザーに反映
func (s *avatarService) Upload(userID uint, file multipart.File) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	// ファイルデータを読み込み
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(file); err != nil {
		return nil, fmt.Errorf("ファイルの読み込みに失敗しました: %v", err)
	}

	// ユーザーごとに1枚だけ保持する（同じPublicIDで上書き）
	uploadParams := uploader.UploadParams{
		Folder:       s.cfg.Cloudinary.Folder,
		PublicID:     fmt.Sprintf("user_%d", userID),
		ResourceType: "image",
	}

	result, err := s.cld.Upload.Upload(context.Background(), buf, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("アバターのアップロードに失敗しました: %v", err)
	}

	user.Avatar = result.SecureURL
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}
