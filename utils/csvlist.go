package utils

import "strings"

// CSV-encoded multi-value columns (focus_sectors, stages, tags) are stored as
// a comma-joined string of trimmed, non-empty tokens with their original
// order. Business logic only ever sees the decoded slice.

func SplitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

func JoinList(tokens []string) string {
	cleaned := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return strings.Join(cleaned, ",")
}

// NormalizeList re-encodes a raw CSV string, e.g. "Solar, Wind" -> "Solar,Wind".
func NormalizeList(value string) string {
	return JoinList(SplitList(value))
}

// ListToSet lower-cases the decoded tokens for case-insensitive membership
// checks.
func ListToSet(value string) map[string]struct{} {
	tokens := SplitList(value)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}
