package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedFormat is returned by Render for formats without a serializer.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Render serializes q in the requested syntax.
func Render(q Question, f Format) (string, error) {
	switch f {
	case FormatPipe:
		return ToPipeFormat(q), nil
	case FormatJSON:
		return ToJSONFormat(q), nil
	case FormatMarkdown:
		return ToMarkdownFormat(q), nil
	case FormatNatural:
		return ToNaturalFormat(q), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// ToPipeFormat renders "text | answer | o1, o2", dropping empty trailing parts.
// Options are newline-separated when one of them contains a comma. "|" and
// backslashes are escaped, and an empty option is written as a bare backslash
// so parsing the output gives back the same record.
func ToPipeFormat(q Question) string {
	parts := []string{escapePipe(q.Text)}
	if q.CorrectAnswer != "" || len(q.Options) > 0 {
		parts = append(parts, escapePipe(q.CorrectAnswer))
	}
	if len(q.Options) > 0 {
		sep := ", "
		opts := make([]string, len(q.Options))
		for i, o := range q.Options {
			if strings.ContainsAny(o, ",،") {
				sep = "\n"
			}
			if strings.TrimSpace(o) == "" {
				opts[i] = emptyOptionMark
				continue
			}
			opts[i] = escapePipe(o)
		}
		parts = append(parts, strings.Join(opts, sep))
	}
	return strings.Join(parts, " | ")
}

// ToStringFormat is the editor's name for the pipe syntax.
func ToStringFormat(q Question) string {
	return ToPipeFormat(q)
}

type labeledQuestion struct {
	Text          string   `json:"text"`
	Type          string   `json:"type,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Options       []string `json:"options"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Grade         int      `json:"grade,omitempty"`
	Subject       string   `json:"subject,omitempty"`
	MediaURL      string   `json:"mediaUrl,omitempty"`
}

// ToJSONFormat pretty-prints q with readable labels for the enum fields.
func ToJSONFormat(q Question) string {
	out := labeledQuestion{
		Text:          q.Text,
		Type:          label(TypeLabels, q.Type),
		CorrectAnswer: q.CorrectAnswer,
		Options:       q.Options,
		Difficulty:    label(DifficultyLabels, q.Difficulty),
		Grade:         q.Grade,
		Subject:       label(SubjectLabels, q.Subject),
		MediaURL:      q.MediaURL,
	}
	if out.Options == nil {
		out.Options = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// strings, ints and string slices always encode
	_ = enc.Encode(out)
	return strings.TrimRight(buf.String(), "\n")
}

// ToMarkdownFormat renders a heading and bullet options, the answer marked with ✓.
func ToMarkdownFormat(q Question) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(q.Text)
	options := q.Options
	if len(options) == 0 && q.CorrectAnswer != "" {
		options = []string{q.CorrectAnswer}
	}
	for _, o := range options {
		b.WriteString("\n- ")
		b.WriteString(o)
		if o == q.CorrectAnswer {
			b.WriteString(" ✓")
		}
	}
	return b.String()
}

// ToNaturalFormat renders Arabic "key: value" lines.
func ToNaturalFormat(q Question) string {
	lines := []string{"السؤال: " + q.Text, "الإجابة: " + q.CorrectAnswer}
	if len(q.Options) > 0 {
		lines = append(lines, "الخيارات: "+strings.Join(q.Options, "، "))
	}
	if q.Type != "" {
		lines = append(lines, "النوع: "+label(TypeLabels, q.Type))
	}
	if q.Difficulty != "" {
		lines = append(lines, "الصعوبة: "+label(DifficultyLabels, q.Difficulty))
	}
	if q.Grade != 0 {
		lines = append(lines, "الصف: "+strconv.Itoa(q.Grade))
	}
	if q.Subject != "" {
		lines = append(lines, "المادة: "+label(SubjectLabels, q.Subject))
	}
	if q.MediaURL != "" {
		lines = append(lines, "الرابط: "+q.MediaURL)
	}
	return strings.Join(lines, "\n")
}

func label[T ~string](labels map[T]string, v T) string {
	if v == "" {
		return ""
	}
	if l, ok := labels[v]; ok {
		return l
	}
	return string(v)
}
