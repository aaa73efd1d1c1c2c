package question

import (
	"encoding/json"
	"strings"
)

// SplitBatch breaks a bulk paste into individual question inputs.
//
//   - a JSON array yields one input per element
//   - lines consisting of "---" separate questions
//   - otherwise blank lines separate questions, and a block made only of
//     pipe lines yields one input per line
func SplitBatch(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			out := make([]string, 0, len(items))
			for _, item := range items {
				out = append(out, string(item))
			}
			return out
		}
	}

	lines := strings.Split(text, "\n")
	for _, l := range lines {
		if strings.TrimSpace(l) == "---" {
			return splitOn(lines, func(l string) bool { return strings.TrimSpace(l) == "---" })
		}
	}

	var out []string
	for _, block := range splitOn(lines, func(l string) bool { return strings.TrimSpace(l) == "" }) {
		if isPipeBlock(block) {
			for _, l := range strings.Split(block, "\n") {
				out = append(out, strings.TrimSpace(l))
			}
			continue
		}
		out = append(out, block)
	}
	return out
}

func splitOn(lines []string, sep func(string) bool) []string {
	var (
		out     []string
		current []string
	)
	flush := func() {
		if block := strings.TrimSpace(strings.Join(current, "\n")); block != "" {
			out = append(out, block)
		}
		current = current[:0]
	}
	for _, l := range lines {
		if sep(l) {
			flush()
			continue
		}
		current = append(current, l)
	}
	flush()
	return out
}

func isPipeBlock(block string) bool {
	if strings.HasPrefix(block, "{") || strings.HasPrefix(block, "#") {
		return false
	}
	for _, l := range strings.Split(block, "\n") {
		if !strings.Contains(l, "|") {
			return false
		}
	}
	return true
}
