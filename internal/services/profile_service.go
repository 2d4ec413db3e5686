package services

import (
	"errors"

	"github.com/DevLink/devlink_backend/internal/models"
	"github.com/DevLink/devlink_backend/internal/repository"

	"gorm.io/gorm"
)

// ErrProfileNotFound プロフィール未作成
var ErrProfileNotFound = errors.New("プロフィールが見つかりません")

// ProfileInput プロフィール作成・更新の入力
// Skillsはカンマ区切りのテキストで受け取る
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	Skills         string
	GithubUsername string
	Youtube        string
	Twitter        string
	Instagram      string
	Linkedin       string
	Facebook       string
}

// ExperienceInput 職歴エントリの入力
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput 学歴エントリの入力
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// ProfileService プロフィールに関するサービスインターフェース
type ProfileService interface {
	GetByUserID(userID uint) (*models.Profile, error)
	Upsert(userID uint, input ProfileInput) (*models.Profile, error)
	List() ([]models.Profile, error)
	DeleteAccount(userID uint) error
	AddExperience(userID uint, input ExperienceInput) (*models.Profile, error)
	RemoveExperience(userID, expID uint) (*models.Profile, error)
	AddEducation(userID uint, input EducationInput) (*models.Profile, error)
	RemoveEducation(userID, eduID uint) (*models.Profile, error)
}

// profileService ProfileServiceの実装
type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
}

// NewProfileService ProfileServiceを作成
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, postRepo repository.PostRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
	}
}

// GetByUserID ユーザーIDでプロフィールを取得
func (s *profileService) GetByUserID(userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Upsert プロフィールを作成または更新
// 更新時は渡されたトップレベルフィールドのみ上書きする。
// SNSリンクは毎回まるごと置き換える（省略したリンクはクリアされる）
func (s *profileService) Upsert(userID uint, input ProfileInput) (*models.Profile, error) {
	skills := models.ParseSkills(input.Skills)

	_, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// 初回は新規作成
		profile := &models.Profile{
			UserID:         userID,
			Company:        input.Company,
			Website:        input.Website,
			Location:       input.Location,
			Bio:            input.Bio,
			Status:         input.Status,
			Skills:         skills,
			GithubUsername: input.GithubUsername,
			Social: models.Social{
				Youtube:   input.Youtube,
				Twitter:   input.Twitter,
				Instagram: input.Instagram,
				Linkedin:  input.Linkedin,
				Facebook:  input.Facebook,
			},
		}
		if err := s.profileRepo.Create(profile); err != nil {
			return nil, err
		}
		return s.profileRepo.FindByUserID(userID)
	}

	// 2回目以降はスパース更新
	fields := map[string]interface{}{
		"status": input.Status,
		"skills": skills,
		// SNSリンクは全置き換え
		"social_youtube":   input.Youtube,
		"social_twitter":   input.Twitter,
		"social_instagram": input.Instagram,
		"social_linkedin":  input.Linkedin,
		"social_facebook":  input.Facebook,
	}
	if input.Company != "" {
		fields["company"] = input.Company
	}
	if input.Website != "" {
		fields["website"] = input.Website
	}
	if input.Location != "" {
		fields["location"] = input.Location
	}
	if input.Bio != "" {
		fields["bio"] = input.Bio
	}
	if input.GithubUsername != "" {
		fields["github_username"] = input.GithubUsername
	}

	if err := s.profileRepo.UpdateFields(userID, fields); err != nil {
		return nil, err
	}
	return s.profileRepo.FindByUserID(userID)
}

// List すべてのプロフィールを取得
func (s *profileService) List() ([]models.Profile, error) {
	return s.profileRepo.List()
}

// DeleteAccount 投稿・プロフィール・ユーザーを順に削除
// 3つのストア操作をまたぐトランザクションは張らない（途中で失敗した場合は
// 中途状態が残り、呼び出し側には500が返る）
func (s *profileService) DeleteAccount(userID uint) error {
	if err := s.postRepo.DeleteByUser(userID); err != nil {
		return err
	}
	if err := s.profileRepo.DeleteByUserID(userID); err != nil {
		return err
	}
	return s.userRepo.Delete(userID)
}

// AddExperience 職歴エントリをリストの先頭に追加
func (s *profileService) AddExperience(userID uint, input ExperienceInput) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	if err := s.profileRepo.AddExperience(exp); err != nil {
		return nil, err
	}

	return s.GetByUserID(userID)
}

// RemoveExperience 職歴エントリを削除（存在しないIDは何もしない）
func (s *profileService) RemoveExperience(userID, expID uint) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.RemoveExperience(profile.ID, expID); err != nil {
		return nil, err
	}

	return s.GetByUserID(userID)
}

// AddEducation 学歴エントリをリストの先頭に追加
func (s *profileService) AddEducation(userID uint, input EducationInput) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	if err := s.profileRepo.AddEducation(edu); err != nil {
		return nil, err
	}

	return s.GetByUserID(userID)
}

// RemoveEducation 学歴エントリを削除（存在しないIDは何もしない）
func (s *profileService) RemoveEducation(userID, eduID uint) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.RemoveEducation(profile.ID, eduID); err != nil {
		return nil, err
	}

	return s.GetByUserID(userID)
}
