package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DevLink/devlink_backend/internal/config"
)

func githubTestConfig(baseURL string) *config.Config {
	return &config.Config{
		Github: config.GithubConfig{
			APIBaseURL: baseURL,
			Token:      "test-token",
		},
	}
}

func TestListRepos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/repos" {
			t.Errorf("予期しないパス: %s", r.URL.Path)
		}
		if r.URL.Query().Get("per_page") != "5" {
			t.Errorf("per_pageが5ではありません: %s", r.URL.Query().Get("per_page"))
		}
		if r.URL.Query().Get("sort") != "created:asc" {
			t.Errorf("sortがcreated:ascではありません: %s", r.URL.Query().Get("sort"))
		}
		if r.Header.Get("Authorization") != "token test-token" {
			t.Errorf("Authorizationヘッダーが不正です: %s", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"id": 1, "name": "repo-a", "created_at": "2015-01-01T00:00:00Z"},
			{"id": 2, "name": "repo-b", "created_at": "2016-01-01T00:00:00Z"},
			{"id": 3, "name": "repo-c", "created_at": "2017-01-01T00:00:00Z"},
			{"id": 4, "name": "repo-d", "created_at": "2018-01-01T00:00:00Z"},
			{"id": 5, "name": "repo-e", "created_at": "2019-01-01T00:00:00Z"}
		]`)
	}))
	defer server.Close()

	svc := NewGithubService(githubTestConfig(server.URL))

	repos, err := svc.ListRepos("octocat")
	if err != nil {
		t.Fatalf("リポジトリ取得に失敗: %v", err)
	}
	if len(repos) != 5 {
		t.Fatalf("リポジトリが5件ではありません: %d", len(repos))
	}
	// 作成日の昇順で返る
	if repos[0].Name != "repo-a" || repos[4].Name != "repo-e" {
		t.Errorf("リポジトリの順序が不正です: %+v", repos)
	}
}

func TestListReposUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewGithubService(githubTestConfig(server.URL))

	if _, err := svc.ListRepos("no-such-user"); !errors.Is(err, ErrGithubProfileNotFound) {
		t.Errorf("上流の404が ErrGithubProfileNotFound になりません: %v", err)
	}
}

func TestListReposEmptyUsername(t *testing.T) {
	svc := NewGithubService(githubTestConfig("http://127.0.0.1:0"))

	if _, err := svc.ListRepos(""); !errors.Is(err, ErrGithubProfileNotFound) {
		t.Errorf("空のユーザー名が ErrGithubProfileNotFound になりません: %v", err)
	}
}

func TestListReposUnreachableHost(t *testing.T) {
	// 到達不能なホストも同じエラー種別に集約される
	svc := NewGithubService(githubTestConfig("http://127.0.0.1:1"))

	if _, err := svc.ListRepos("octocat"); !errors.Is(err, ErrGithubProfileNotFound) {
		t.Errorf("接続エラーが ErrGithubProfileNotFound になりません: %v", err)
	}
}
