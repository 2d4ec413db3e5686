package models

import (
	"database/sql/driver"
	"errors"
	"strings"
)

// SkillList 順序付きスキルリスト
// DBにはカンマ区切りの1カラムとして保存する。
// 要素は必ずParseSkillsのカンマ分割から生まれるため要素自体がカンマを
// 含むことはなく、この保存形式で順序も値も失われない
type SkillList []string

// Value driver.Valuerの実装
func (s SkillList) Value() (driver.Value, error) {
	return strings.Join(s, ","), nil
}

// Scan sql.Scannerの実装
func (s *SkillList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return errors.New("SkillListに変換できない型です")
	}

	if str == "" {
		*s = nil
		return nil
	}

	*s = strings.Split(str, ",")
	return nil
}

// ParseSkills カンマ区切りのテキストをスキルリストに変換
// 各要素は先頭に半角スペースを付けて保持する（既存データとの互換のため）
func ParseSkills(raw string) SkillList {
	parts := strings.Split(raw, ",")
	skills := make(SkillList, 0, len(parts))
	for _, p := range parts {
		skills = append(skills, " "+strings.TrimSpace(p))
	}
	return skills
}
