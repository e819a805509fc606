package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Slice returns the grapheme-safe substring for [start, end).
// Out-of-range bounds are clamped.
func Slice(text string, start, end int) string {
	clusters := Split(text)
	start = clamp(start, 0, len(clusters))
	end = clamp(end, start, len(clusters))
	return Join(clusters[start:end])
}

// LastIndex returns the cluster index of the last occurrence of seq in
// clusters, or -1. seq is compared cluster by cluster.
func LastIndex(clusters []string, seq string) int {
	want := Split(seq)
	if len(want) == 0 || len(want) > len(clusters) {
		return -1
	}
	for i := len(clusters) - len(want); i >= 0; i-- {
		if hasAt(clusters, i, want) {
			return i
		}
	}
	return -1
}

// Index returns the cluster index of the first occurrence of seq in
// clusters at or after from, or -1.
func Index(clusters []string, seq string, from int) int {
	want := Split(seq)
	if len(want) == 0 {
		return -1
	}
	if from < 0 {
		from = 0
	}
	for i := from; i+len(want) <= len(clusters); i++ {
		if hasAt(clusters, i, want) {
			return i
		}
	}
	return -1
}

func hasAt(clusters []string, i int, want []string) bool {
	for j, w := range want {
		if clusters[i+j] != w {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
