package utils

import "strings"

func RemoveDuplicates[T comparable](in []T) []T {
	seen := make(map[T]bool)
	out := []T{}
	for _, v := range in {
		if _, ok := seen[v]; !ok {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// CleanStrings trims every element and drops the empty ones. Order and
// repeated values are kept.
func CleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
