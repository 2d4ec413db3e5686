package models

import (
	"reflect"
	"strings"
	"testing"
)

// 各スキルはtrim後に先頭へ半角スペースを付けて保持する（既存データとの互換仕様）
func TestParseSkills(t *testing.T) {
	got := ParseSkills("a, b,c")
	want := SkillList{" a", " b", " c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSkills = %#v, want %#v", got, want)
	}
}

// 分割結果の要素はカンマを含まない（カンマ区切り保存が損なわれない前提）
func TestParseSkillsElementsContainNoComma(t *testing.T) {
	for _, raw := range []string{"a, b,c", "Go,,SQL", " , spaced , "} {
		for _, skill := range ParseSkills(raw) {
			if strings.Contains(skill, ",") {
				t.Errorf("ParseSkills(%q) の要素にカンマが含まれています: %q", raw, skill)
			}
		}
	}
}

func TestSkillListScanRoundTrip(t *testing.T) {
	original := ParseSkills("Go, TypeScript,SQL")

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() でエラー: %v", err)
	}

	var restored SkillList
	if err := restored.Scan(value); err != nil {
		t.Fatalf("Scan() でエラー: %v", err)
	}

	if !reflect.DeepEqual(original, restored) {
		t.Errorf("保存前後でスキルリストが一致しません: %#v != %#v", original, restored)
	}
}
