package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var keyValueLine = regexp.MustCompile(`^\s*([^:：]+?)\s*[:：]\s*(.*?)\s*$`)

// parseNatural reads "key: value" lines such as "السؤال: ..." and "الإجابة: ...".
func (p *Parser) parseNatural(input string, r *Result) {
	for _, line := range splitLines(input) {
		m := keyValueLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		field := p.fieldForKey(m[1])
		if field == "" {
			continue
		}
		p.assignNatural(r, field, m[2])
	}

	if r.Data.Text == "" {
		r.addError(FieldText, MsgTextRequired)
	}
	if r.Data.CorrectAnswer == "" {
		r.addError(FieldCorrectAnswer, MsgAnswerRequired)
	}
}

// fieldForKey returns the first field whose keyword appears in key. Latin
// keywords match anywhere ("mediaUrl", "correct_answer"); Arabic keywords
// must stand as whole words so "صف" does not hit "وصف".
func (p *Parser) fieldForKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, fs := range p.fields {
		for _, w := range fs.words {
			if keyHasWord(k, w) {
				return fs.field
			}
		}
	}
	return ""
}

func keyHasWord(key, word string) bool {
	if word == "" {
		return false
	}
	if isASCII(word) {
		return strings.Contains(key, word)
	}
	for from := 0; ; {
		i := strings.Index(key[from:], word)
		if i < 0 {
			return false
		}
		start, end := from+i, from+i+len(word)
		before, _ := utf8.DecodeLastRuneInString(key[:start])
		after, _ := utf8.DecodeRuneInString(key[end:])
		if (start == 0 || !unicode.IsLetter(before)) && (end == len(key) || !unicode.IsLetter(after)) {
			return true
		}
		from = end
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (p *Parser) assignNatural(r *Result, field, value string) {
	if value == "" {
		return
	}
	switch field {
	case FieldText:
		r.Data.Text = value
	case FieldCorrectAnswer:
		r.Data.CorrectAnswer = value
	case FieldOptions:
		r.Data.Options = splitOptions(value)
	case FieldType:
		r.Data.Type = ParseQuestionType(value)
	case FieldDifficulty:
		r.Data.Difficulty = ParseDifficulty(value)
	case FieldGrade:
		r.Data.Grade = ParseGrade(value)
	case FieldSubject:
		r.Data.Subject = ParseSubject(value)
	case FieldMediaURL:
		r.Data.MediaURL = value
	}
}
