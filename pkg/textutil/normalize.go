package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize 归一化文本用于后续处理
//
// 转小写、NFKD 兼容分解并去除首尾空白。
func Normalize(text string) string {
	return strings.TrimSpace(norm.NFKD.String(strings.ToLower(text)))
}
