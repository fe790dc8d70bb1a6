package textutil

// Levenshtein 计算两个字符串之间的编辑距离
//
// 基于 Unicode 标量值（rune）计数而不是字节，保证非 ASCII
// 文本的行为正确。使用两行滚动数组，空间复杂度 O(len(b))。
func Levenshtein(a, b string) int {
	aRunes := []rune(a)
	bRunes := []rune(b)

	if len(aRunes) == 0 {
		return len(bRunes)
	}
	if len(bRunes) == 0 {
		return len(aRunes)
	}

	prev := make([]int, len(bRunes)+1)
	curr := make([]int, len(bRunes)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ar := range aRunes {
		curr[0] = i + 1
		for j, br := range bRunes {
			cost := 1
			if ar == br {
				cost = 0
			}
			curr[j+1] = min3(curr[j]+1, prev[j+1]+1, prev[j]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(bRunes)]
}

// Jaccard 计算两个字符串词项集合的 Jaccard 相似度
//
// 两个集合都为空时返回 0。
func Jaccard(a, b string) float32 {
	setA := UniqueTerms(a)
	setB := UniqueTerms(b)

	intersection := 0
	for term := range setA {
		if _, ok := setB[term]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float32(intersection) / float32(union)
}

// NGrams 提取定宽字符 n-gram
//
// 文本短于 n 时返回整个文本作为单个元素；空文本或 n 为 0
// 时返回 nil。
func NGrams(text string, n int) []string {
	if text == "" || n == 0 {
		return nil
	}

	runes := []rune(text)
	if len(runes) < n {
		return []string{text}
	}

	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
