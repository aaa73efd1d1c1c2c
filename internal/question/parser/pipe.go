package parser

import (
	"strings"
	"unicode/utf8"
)

// emptyOptionMark stands for an empty option slot in pipe syntax. A literal
// backslash is always written escaped, so the bare mark is unambiguous.
const emptyOptionMark = `\`

var pipeEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`)

// parsePipe reads "text | answer | option1, option2, ...". A backslash
// escapes "|" and itself.
func (p *Parser) parsePipe(input string, r *Result) {
	parts := splitPipeSegments(input)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	r.Data.Text = unescapePipe(parts[0])
	if r.Data.Text == "" {
		r.addError(FieldText, MsgTextRequired)
	} else if utf8.RuneCountInString(r.Data.Text) < shortTextLen {
		r.warn(MsgTextShort)
		r.suggest(SuggestLongerText)
	}

	if len(parts) < 2 || parts[1] == "" {
		r.addError(FieldCorrectAnswer, MsgAnswerRequired)
	} else {
		r.Data.CorrectAnswer = unescapePipe(parts[1])
	}

	if len(parts) >= 3 {
		r.Data.Options = splitPipeOptions(parts[2])
	}
	if len(parts) > 3 {
		r.warn(MsgExtraSegments)
	}
}

// splitOptions splits on newlines when present, otherwise on Latin or Arabic commas.
func splitOptions(s string) []string {
	raw := rawOptions(s)
	out := make([]string, 0, len(raw))
	for _, o := range raw {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// splitPipeOptions is splitOptions plus pipe escapes; the empty option mark
// keeps its slot.
func splitPipeOptions(s string) []string {
	raw := rawOptions(s)
	out := make([]string, 0, len(raw))
	for _, o := range raw {
		o = strings.TrimSpace(o)
		switch {
		case o == emptyOptionMark:
			out = append(out, "")
		case o != "":
			out = append(out, unescapePipe(o))
		}
	}
	return out
}

func rawOptions(s string) []string {
	if strings.Contains(s, "\n") {
		return splitLines(s)
	}
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '،' })
}

// splitPipeSegments splits on "|" not preceded by an escaping backslash.
// Escape sequences are left in place for unescapePipe.
func splitPipeSegments(s string) []string {
	var (
		parts []string
		cur   strings.Builder
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && (s[i+1] == '|' || s[i+1] == '\\') {
			cur.WriteByte(c)
			cur.WriteByte(s[i+1])
			i++
			continue
		}
		if c == '|' {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	return append(parts, cur.String())
}

// unescapePipe resolves `\|` and `\\`. Other backslashes are literal.
func unescapePipe(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '|' || s[i+1] == '\\') {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func escapePipe(s string) string {
	return pipeEscaper.Replace(s)
}
