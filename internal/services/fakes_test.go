package services

import (
	"github.com/DevLink/devlink_backend/internal/models"

	"gorm.io/gorm"
)

// テスト用のインメモリリポジトリ実装

type fakeUserRepo struct {
	nextID uint
	users  map[uint]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

// erroringUserRepo 常に失敗するリポジトリ（インフラ障害の再現用）
type erroringUserRepo struct {
	err error
}

func (r *erroringUserRepo) Create(*models.User) error                  { return r.err }
func (r *erroringUserRepo) FindByID(uint) (*models.User, error)        { return nil, r.err }
func (r *erroringUserRepo) FindByEmail(string) (*models.User, error)   { return nil, r.err }
func (r *erroringUserRepo) Update(*models.User) error                  { return r.err }
func (r *erroringUserRepo) Delete(uint) error                          { return r.err }

type fakeProfileRepo struct {
	nextProfileID uint
	nextChildID   uint
	profiles      map[uint]models.Profile // key: ユーザーID（子リストは含めない）
	experiences   []models.Experience
	educations    []models.Education
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uint]models.Profile{}}
}

func (r *fakeProfileRepo) Create(profile *models.Profile) error {
	r.nextProfileID++
	profile.ID = r.nextProfileID
	r.profiles[profile.UserID] = *profile
	return nil
}

func (r *fakeProfileRepo) UpdateFields(userID uint, fields map[string]interface{}) error {
	p, ok := r.profiles[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "company":
			p.Company = value.(string)
		case "website":
			p.Website = value.(string)
		case "location":
			p.Location = value.(string)
		case "bio":
			p.Bio = value.(string)
		case "status":
			p.Status = value.(string)
		case "skills":
			p.Skills = value.(models.SkillList)
		case "github_username":
			p.GithubUsername = value.(string)
		case "social_youtube":
			p.Social.Youtube = value.(string)
		case "social_twitter":
			p.Social.Twitter = value.(string)
		case "social_instagram":
			p.Social.Instagram = value.(string)
		case "social_linkedin":
			p.Social.Linkedin = value.(string)
		case "social_facebook":
			p.Social.Facebook = value.(string)
		}
	}
	r.profiles[userID] = p
	return nil
}

// FindByUserID 実装同様、子リストは新しい順で返す
func (r *fakeProfileRepo) FindByUserID(userID uint) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p.Experience = nil
	p.Education = nil
	for i := len(r.experiences) - 1; i >= 0; i-- {
		if r.experiences[i].ProfileID == p.ID {
			p.Experience = append(p.Experience, r.experiences[i])
		}
	}
	for i := len(r.educations) - 1; i >= 0; i-- {
		if r.educations[i].ProfileID == p.ID {
			p.Education = append(p.Education, r.educations[i])
		}
	}
	p.ApplyOwner()
	return &p, nil
}

func (r *fakeProfileRepo) List() ([]models.Profile, error) {
	var profiles []models.Profile
	for userID := range r.profiles {
		p, err := r.FindByUserID(userID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (r *fakeProfileRepo) DeleteByUserID(userID uint) error {
	p, ok := r.profiles[userID]
	if !ok {
		return nil
	}
	r.removeChildren(p.ID)
	delete(r.profiles, userID)
	return nil
}

func (r *fakeProfileRepo) removeChildren(profileID uint) {
	var exps []models.Experience
	for _, e := range r.experiences {
		if e.ProfileID != profileID {
			exps = append(exps, e)
		}
	}
	r.experiences = exps

	var edus []models.Education
	for _, e := range r.educations {
		if e.ProfileID != profileID {
			edus = append(edus, e)
		}
	}
	r.educations = edus
}

func (r *fakeProfileRepo) AddExperience(exp *models.Experience) error {
	r.nextChildID++
	exp.ID = r.nextChildID
	r.experiences = append(r.experiences, *exp)
	return nil
}

func (r *fakeProfileRepo) RemoveExperience(profileID, expID uint) error {
	var exps []models.Experience
	for _, e := range r.experiences {
		if e.ProfileID == profileID && e.ID == expID {
			continue
		}
		exps = append(exps, e)
	}
	r.experiences = exps
	return nil
}

func (r *fakeProfileRepo) AddEducation(edu *models.Education) error {
	r.nextChildID++
	edu.ID = r.nextChildID
	r.educations = append(r.educations, *edu)
	return nil
}

func (r *fakeProfileRepo) RemoveEducation(profileID, eduID uint) error {
	var edus []models.Education
	for _, e := range r.educations {
		if e.ProfileID == profileID && e.ID == eduID {
			continue
		}
		edus = append(edus, e)
	}
	r.educations = edus
	return nil
}

type fakePostRepo struct {
	posts []models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{}
}

func (r *fakePostRepo) ListByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	for _, p := range r.posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (r *fakePostRepo) DeleteByUser(userID uint) error {
	var posts []models.Post
	for _, p := range r.posts {
		if p.UserID != userID {
			posts = append(posts, p)
		}
	}
	r.posts = posts
	return nil
}
