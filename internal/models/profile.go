package models

import (
	"time"
)

// Profile プロフィールモデル（1ユーザーにつき1件）
type Profile struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Company        string    `json:"company"`
	Website        string    `json:"website"`
	Location       string    `json:"location"`
	Bio            string    `json:"bio"`
	Status         string    `json:"status" gorm:"not null"`
	Skills         SkillList `json:"skills" gorm:"type:text;not null"`
	GithubUsername string    `json:"githubusername"`
	Social         Social    `json:"social" gorm:"embedded;embeddedPrefix:social_"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// リレーション
	User       *User        `json:"-" gorm:"foreignKey:UserID"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`

	// 公開レスポンス用の所有ユーザー情報
	Owner *ProfileOwner `json:"user,omitempty" gorm:"-"`
}

// ProfileOwner 公開プロフィールに載せる所有ユーザー情報
// メールアドレス等は含めず、名前とアバターだけを公開する
type ProfileOwner struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ApplyOwner 読み込んだ所有ユーザーから公開用の情報を組み立てる
func (p *Profile) ApplyOwner() {
	if p.User != nil {
		p.Owner = &ProfileOwner{
			ID:     p.User.ID,
			Name:   p.User.Name,
			Avatar: p.User.Avatar,
		}
	}
}

// Social SNSリンク（Profileに埋め込み）
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// Experience 職歴エントリ
// 日付はクライアントから渡された文字列をそのまま保持する
type Experience struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProfileID   uint      `json:"-" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Company     string    `json:"company" gorm:"not null"`
	Location    string    `json:"location"`
	From        string    `json:"from" gorm:"not null"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current" gorm:"default:false"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Education 学歴エントリ
type Education struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProfileID    uint      `json:"-" gorm:"not null;index"`
	School       string    `json:"school" gorm:"not null"`
	Degree       string    `json:"degree" gorm:"not null"`
	FieldOfStudy string    `json:"fieldofstudy" gorm:"not null"`
	From         string    `json:"from" gorm:"not null"`
	To           string    `json:"to,omitempty"`
	Current      bool      `json:"current" gorm:"default:false"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
