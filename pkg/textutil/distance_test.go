package textutil

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"classic", "kitten", "sitting", 3},
		{"identical", "hello", "hello", 0},
		{"empty left", "", "abc", 3},
		{"empty right", "abc", "", 3},
		{"both empty", "", "", 0},
		{"single substitution", "cat", "car", 1},
		{"insertion", "cat", "cart", 1},
		{"unicode runes", "straße", "strasse", 2},
		{"symmetric", "sitting", "kitten", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float32
	}{
		{"identical", "the cat", "the cat", 1.0},
		{"disjoint", "cat dog", "bird fish", 0.0},
		{"half overlap", "a b", "b c", 1.0 / 3.0},
		{"both empty", "", "", 0.0},
		{"order irrelevant", "cat the", "the cat", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Jaccard(tt.a, tt.b); got != tt.expected {
				t.Errorf("Jaccard(%q, %q) = %f, expected %f", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestNGrams(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		n        int
		expected []string
	}{
		{"bigrams", "abcd", 2, []string{"ab", "bc", "cd"}},
		{"trigrams", "hello", 3, []string{"hel", "ell", "llo"}},
		{"shorter than n", "ab", 5, []string{"ab"}},
		{"exact length", "abc", 3, []string{"abc"}},
		{"empty text", "", 2, nil},
		{"zero n", "abc", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NGrams(tt.text, tt.n)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d grams, got %d: %v", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("gram %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}
