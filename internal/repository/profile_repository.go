package repository

import (
	"github.com/DevLink/devlink_backend/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository プロフィールに関するデータベース操作を行うインターフェース
type ProfileRepository interface {
	Create(profile *models.Profile) error
	UpdateFields(userID uint, fields map[string]interface{}) error
	FindByUserID(userID uint) (*models.Profile, error)
	List() ([]models.Profile, error)
	DeleteByUserID(userID uint) error
	AddExperience(exp *models.Experience) error
	RemoveExperience(profileID, expID uint) error
	AddEducation(edu *models.Education) error
	RemoveEducation(profileID, eduID uint) error
}

// profileRepository ProfileRepositoryの実装
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository ProfileRepositoryを作成
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// preloadAll 所有ユーザーと職歴・学歴を読み込むスコープ
// 職歴・学歴は新しい順（先頭に追加された順）で返す
func preloadAll(db *gorm.DB) *gorm.DB {
	return db.
		// 公開レスポンスに必要なカラムだけ読み込む
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "avatar")
		}).
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("experiences.id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("educations.id DESC")
		})
}

// Create 新しいプロフィールを作成
func (r *profileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// UpdateFields 指定フィールドのみを更新（スパース更新）
func (r *profileRepository) UpdateFields(userID uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(fields).Error
}

// FindByUserID ユーザーIDでプロフィールを検索
func (r *profileRepository) FindByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := preloadAll(r.db).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	profile.ApplyOwner()
	return &profile, nil
}

// List すべてのプロフィールを取得
func (r *profileRepository) List() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := preloadAll(r.db).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for i := range profiles {
		profiles[i].ApplyOwner()
	}
	return profiles, nil
}

// DeleteByUserID プロフィールと職歴・学歴を削除
func (r *profileRepository) DeleteByUserID(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				// プロフィール未作成のユーザーも削除できる
				return nil
			}
			return err
		}

		if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
			return err
		}
		return tx.Delete(&profile).Error
	})
}

// AddExperience 職歴エントリを追加
func (r *profileRepository) AddExperience(exp *models.Experience) error {
	return r.db.Create(exp).Error
}

// RemoveExperience 職歴エントリを削除（存在しないIDは何もしない）
func (r *profileRepository) RemoveExperience(profileID, expID uint) error {
	return r.db.Where("profile_id = ?", profileID).Delete(&models.Experience{}, expID).Error
}

// AddEducation 学歴エントリを追加
func (r *profileRepository) AddEducation(edu *models.Education) error {
	return r.db.Create(edu).Error
}

// RemoveEducation 学歴エントリを削除（存在しないIDは何もしない）
func (r *profileRepository) RemoveEducation(profileID, eduID uint) error {
	return r.db.Where("profile_id = ?", profileID).Delete(&models.Education{}, eduID).Error
}
