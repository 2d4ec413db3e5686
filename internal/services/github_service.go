package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/DevLink/devlink_backend/internal/config"
)

// ErrGithubProfileNotFound GitHubリポジトリ取得失敗（通信・ステータスを区別しない）
var ErrGithubProfileNotFound = errors.New("GitHubプロフィールが見つかりません")

// GithubRepo GitHub APIのリポジトリ情報（必要なフィールドのみ）
type GithubRepo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
	CreatedAt       string `json:"created_at"`
}

// GithubService GitHub APIとの連携を管理するサービス
type GithubService interface {
	ListRepos(username string) ([]GithubRepo, error)
}

// githubService GithubServiceの実装
type githubService struct {
	cfg    *config.Config
	client *http.Client
}

// NewGithubService GithubServiceを作成
func NewGithubService(cfg *config.Config) GithubService {
	return &githubService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListRepos ユーザーの公開リポジトリを作成日の昇順で最大5件取得
// リトライはしない。失敗理由は区別せずErrGithubProfileNotFoundを返す
func (s *githubService) ListRepos(username string) ([]GithubRepo, error) {
	if username == "" {
		return nil, ErrGithubProfileNotFound
	}

	uri := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		s.cfg.Github.APIBaseURL, url.PathEscape(username))

	req, err := http.NewRequest(http.MethodGet, uri, nil)
	if err != nil {
		return nil, ErrGithubProfileNotFound
	}
	req.Header.Set("User-Agent", "devlink-backend")
	if s.cfg.Github.Token != "" {
		req.Header.Set("Authorization", "token "+s.cfg.Github.Token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, ErrGithubProfileNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrGithubProfileNotFound
	}

	var repos []GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, ErrGithubProfileNotFound
	}

	return repos, nil
}
