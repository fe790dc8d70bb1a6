// Package textutil 提供所有匹配器共享的文本处理函数。
//
// 所有函数都是纯函数，没有共享可变状态；停用词表是进程级的
// 只读常量。语料和查询必须使用同一套分词策略，以保证两侧
// 的词项对称。
package textutil

import (
	"strings"
	"unicode"
)

// 停用词表（进程级只读常量，初始化后不再修改）
var (
	stopwordsDE = map[string]struct{}{
		"der": {}, "die": {}, "das": {}, "und": {}, "in": {}, "ist": {},
		"von": {}, "mit": {}, "zum": {}, "zur": {}, "zu": {}, "ein": {},
		"eine": {}, "eines": {},
	}

	stopwordsEN = map[string]struct{}{
		"the": {}, "and": {}, "is": {}, "in": {}, "of": {}, "to": {},
		"a": {}, "with": {}, "for": {}, "on": {}, "at": {}, "this": {},
		"that": {},
	}
)

// Tokenize 将文本分词为小写词元序列
//
// 按空白分隔，仅保留 Unicode 字母和数字字符。标点被剥离而
// 不是作为分隔符，因此 "can't" 分词为 "cant"。
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		var word strings.Builder
		for _, r := range field {
			if unicode.IsLetter(r) || unicode.IsNumber(r) {
				word.WriteRune(r)
			}
		}
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
		}
	}

	return tokens
}

// UniqueTerms 返回文本中的唯一词项集合
func UniqueTerms(text string) map[string]struct{} {
	tokens := Tokenize(text)
	terms := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		terms[token] = struct{}{}
	}
	return terms
}

// RemoveStopwords 从词元列表中移除停用词
//
// lang 支持 "de"/"deu"/"german"，其他值使用默认英文停用词表。
func RemoveStopwords(tokens []string, lang string) []string {
	var stopwords map[string]struct{}
	switch strings.ToLower(lang) {
	case "de", "deu", "german":
		stopwords = stopwordsDE
	default:
		stopwords = stopwordsEN
	}

	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := stopwords[token]; !ok {
			filtered = append(filtered, token)
		}
	}
	return filtered
}
