package services

import (
	"errors"
	"time"

	"github.com/DevLink/devlink_backend/internal/config"
	"github.com/DevLink/devlink_backend/internal/models"
	"github.com/DevLink/devlink_backend/internal/repository"
	"github.com/DevLink/devlink_backend/internal/utils"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrUserExists 登録済みメールアドレスでの再登録
	ErrUserExists = errors.New("このメールアドレスは既に登録されています")
	// ErrInvalidCredentials メールアドレス不明・パスワード不一致（区別しない）
	ErrInvalidCredentials = errors.New("メールアドレスまたはパスワードが正しくありません")
	// ErrInvalidToken トークンが不正または期限切れ
	ErrInvalidToken = errors.New("無効なトークンです")
)

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Register(name, email, password string) (string, error)
	Login(email, password string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Claims JWTのペイロード
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	jwt.StandardClaims
}

// Register ユーザー登録
// Gravatar由来のアバターURLを設定し、登録と同時にトークンを発行する
func (s *authService) Register(name, email, password string) (string, error) {
	// メールアドレスが既に使用されているか確認
	// インフラ障害は重複と区別してそのまま呼び出し元へ返す
	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if existingUser != nil {
		return "", ErrUserExists
	}

	// パスワードをハッシュ化
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	// 新しいユーザーを作成
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Avatar:   utils.GravatarURL(email),
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", err
	}

	return s.generateToken(user)
}

// Login ログイン
func (s *authService) Login(email, password string) (string, error) {
	// ユーザーを検索
	// 未登録のみ認証エラー扱いにし、インフラ障害はそのまま返す
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	// パスワードを検証
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user)
}

// ValidateToken トークンを検証
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	// トークンを解析
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetUserFromToken トークンからユーザーを取得
func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// generateToken JWTトークンを生成
func (s *authService) generateToken(user *models.User) (string, error) {
	// トークンの有効期限を設定（デフォルト24時間）
	expirationTime := time.Now().Add(s.config.Auth.TokenExpiry)

	// クレームを作成
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	// トークンを生成
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
