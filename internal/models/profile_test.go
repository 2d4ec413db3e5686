package models

import (
	"encoding/json"
	"strings"
	"testing"
)

// 公開プロフィールのJSONには所有ユーザーの名前とアバターだけが載り、
// メールアドレスは含まれない
func TestProfileJSONExposesOnlyOwnerNameAndAvatar(t *testing.T) {
	profile := Profile{
		UserID: 1,
		Status: "Developer",
		Skills: SkillList{" Go"},
		User: &User{
			ID:     1,
			Name:   "Taro",
			Email:  "taro@example.com",
			Avatar: "https://www.gravatar.com/avatar/xxxx?s=200&r=pg&d=mm",
		},
	}
	profile.ApplyOwner()

	data, err := json.Marshal(&profile)
	if err != nil {
		t.Fatalf("JSONへの変換に失敗: %v", err)
	}

	body := string(data)
	if strings.Contains(body, "taro@example.com") {
		t.Errorf("公開プロフィールにメールアドレスが含まれています: %s", body)
	}
	if !strings.Contains(body, `"name":"Taro"`) {
		t.Errorf("所有ユーザーの名前が含まれていません: %s", body)
	}
	if !strings.Contains(body, `"avatar":"https://www.gravatar.com/avatar/`) {
		t.Errorf("所有ユーザーのアバターが含まれていません: %s", body)
	}
}

// 所有ユーザーを読み込んでいない場合はuserフィールド自体を省略する
func TestProfileJSONOmitsOwnerWhenNotLoaded(t *testing.T) {
	profile := Profile{UserID: 1, Status: "Developer", Skills: SkillList{" Go"}}
	profile.ApplyOwner()

	data, err := json.Marshal(&profile)
	if err != nil {
		t.Fatalf("JSONへの変換に失敗: %v", err)
	}

	if strings.Contains(string(data), `"user"`) {
		t.Errorf("未読み込みのuserフィールドが含まれています: %s", data)
	}
}
