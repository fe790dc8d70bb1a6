// Package answer 定义匹配器返回的答案载荷类型。
//
// 答案是一个带标签的变体：纯文本、Markdown 文本或结构化 JSON 值。
// 相等性和字符串化都区分变体。
package answer

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Kind 答案变体类型
type Kind string

const (
	// KindText 纯文本答案
	KindText Kind = "text"
	// KindMarkdown Markdown 格式答案
	KindMarkdown Kind = "markdown"
	// KindJSON 结构化 JSON 答案
	KindJSON Kind = "json"
)

// Answer 答案载荷
//
// 每个答案恰好携带一个底层值：文本变体使用 text 字段，
// JSON 变体使用 value 字段。零值是空文本答案。
type Answer struct {
	kind  Kind
	text  string
	value interface{}
}

// Text 创建纯文本答案
func Text(s string) Answer {
	return Answer{kind: KindText, text: s}
}

// Markdown 创建 Markdown 答案
func Markdown(s string) Answer {
	return Answer{kind: KindMarkdown, text: s}
}

// JSON 创建结构化 JSON 答案
func JSON(v interface{}) Answer {
	return Answer{kind: KindJSON, value: v}
}

// Kind 返回答案变体类型
func (a Answer) Kind() Kind {
	if a.kind == "" {
		return KindText
	}
	return a.kind
}

// String 按变体字符串化：原始文本、Markdown 源码或序列化的 JSON
func (a Answer) String() string {
	switch a.Kind() {
	case KindJSON:
		data, err := json.Marshal(a.value)
		if err != nil {
			return fmt.Sprintf("%v", a.value)
		}
		return string(data)
	default:
		return a.text
	}
}

// Value 返回 JSON 变体的底层值，非 JSON 变体返回 nil
func (a Answer) Value() interface{} {
	return a.value
}

// IsEmpty 检查答案是否为空
func (a Answer) IsEmpty() bool {
	if a.Kind() == KindJSON {
		return a.value == nil
	}
	return a.text == ""
}

// Equal 变体感知的相等性比较
//
// 不同变体的答案永不相等，即使字符串化结果相同。
func (a Answer) Equal(other Answer) bool {
	if a.Kind() != other.Kind() {
		return false
	}
	if a.Kind() == KindJSON {
		return reflect.DeepEqual(a.value, other.value)
	}
	return a.text == other.text
}

// answerJSON 带标签的序列化形式
type answerJSON struct {
	Text     *string     `json:"text,omitempty"`
	Markdown *string     `json:"markdown,omitempty"`
	JSON     interface{} `json:"json,omitempty"`
}

// MarshalJSON 序列化为带标签的对象形式
func (a Answer) MarshalJSON() ([]byte, error) {
	var out answerJSON
	switch a.Kind() {
	case KindMarkdown:
		out.Markdown = &a.text
	case KindJSON:
		out.JSON = a.value
	default:
		out.Text = &a.text
	}
	return json.Marshal(out)
}

// UnmarshalJSON 反序列化答案
//
// 同时接受带标签的对象形式和裸字符串（旧版语料格式，
// 视为纯文本答案）。
func (a *Answer) UnmarshalJSON(data []byte) error {
	// 旧版格式：裸字符串
	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		*a = Text(legacy)
		return nil
	}

	var tagged answerJSON
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("invalid answer payload: %w", err)
	}

	switch {
	case tagged.Markdown != nil:
		*a = Markdown(*tagged.Markdown)
	case tagged.JSON != nil:
		*a = JSON(tagged.JSON)
	case tagged.Text != nil:
		*a = Text(*tagged.Text)
	default:
		*a = Text("")
	}
	return nil
}
