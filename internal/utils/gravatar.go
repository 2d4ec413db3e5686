package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL メールアドレスからGravatarのアバターURLを生成する
// サイズ200px、レーティングpg、未登録時はデフォルト画像(mm)
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
