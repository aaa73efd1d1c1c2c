package parser

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	// "- [x] A", "* [ ] B", "- A ✓", "- B ✔"
	markdownMarkedBullet = regexp.MustCompile(`(?m)^\s*[-*]\s+(\[[ xX]\]|.*[✓✔])`)
	naturalLabel         = regexp.MustCompile(`(?i)^\s*(question|السؤال|سؤال)\s*[:：]`)
)

// DetectFormat classifies raw input into one of the supported syntaxes.
// The first matching rule wins: json, markdown, natural, pipe, unknown.
func DetectFormat(input string) Format {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return FormatUnknown
	}
	if (trimmed[0] == '{' || trimmed[0] == '[') && json.Valid([]byte(trimmed)) {
		return FormatJSON
	}
	if strings.HasPrefix(trimmed, "#") || markdownMarkedBullet.MatchString(trimmed) {
		return FormatMarkdown
	}
	if naturalLabel.MatchString(firstLine(trimmed)) {
		return FormatNatural
	}
	if strings.Contains(trimmed, "|") {
		return FormatPipe
	}
	return FormatUnknown
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
