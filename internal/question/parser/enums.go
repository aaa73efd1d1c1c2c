package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Keyword maps a set of free-text words onto an enum value.
type Keyword[T comparable] struct {
	Value T
	Words []string
}

// QuestionTypeKeywords is consulted in order; the first entry is the fallback.
var QuestionTypeKeywords = []Keyword[QuestionType]{
	{TypeMultipleChoice, []string{"multiple_choice", "multiple choice", "multiple-choice", "mcq", "choice", "اختيار من متعدد", "اختيار", "متعدد"}},
	{TypeTrueFalse, []string{"true_false", "true/false", "true-false", "truefalse", "true or false", "true false", "t/f", "boolean",
		"صواب وخطأ", "صواب أو خطأ", "صواب أم خطأ", "صواب/خطأ", "صح وخطأ", "صح أو خطأ", "صح أم خطأ", "صح/خطأ", "صح/غلط", "صح أو غلط"}},
	{TypeConnect, []string{"connect", "matching", "match", "توصيل", "وصل"}},
	{TypeFillBlank, []string{"fill_blank", "fill in the blank", "fill-in-the-blank", "fill", "blank", "أكمل الفراغ", "املأ الفراغ", "أكمل", "فراغ"}},
	{TypeDragDrop, []string{"drag_drop", "drag and drop", "drag-drop", "drag", "سحب وإفلات", "اسحب وأفلت", "سحب"}},
}

var DifficultyKeywords = []Keyword[Difficulty]{
	{DifficultyEasy, []string{"easy", "simple", "سهل", "سهلة", "1"}},
	{DifficultyMedium, []string{"medium", "moderate", "normal", "متوسط", "متوسطة", "2"}},
	{DifficultyHard, []string{"hard", "difficult", "صعب", "صعبة", "3"}},
}

var SubjectKeywords = []Keyword[Subject]{
	{SubjectArabic, []string{"arabic", "language", "لغة عربية", "اللغة العربية", "العربية", "عربي"}},
	{SubjectMath, []string{"math", "maths", "mathematics", "الرياضيات", "رياضيات"}},
	{SubjectScience, []string{"science", "sciences", "العلوم", "علوم"}},
}

// GradeKeywords covers ordinal spellings; digits are handled separately.
var GradeKeywords = []Keyword[int]{
	{3, []string{"third", "الثالث", "ثالث"}},
	{4, []string{"fourth", "الرابع", "رابع"}},
	{5, []string{"fifth", "الخامس", "خامس"}},
	{6, []string{"sixth", "السادس", "سادس"}},
}

// Human-readable labels used by the JSON formatter.
var (
	TypeLabels = map[QuestionType]string{
		TypeMultipleChoice: "اختيار من متعدد",
		TypeTrueFalse:      "صواب وخطأ",
		TypeConnect:        "توصيل",
		TypeFillBlank:      "أكمل الفراغ",
		TypeDragDrop:       "سحب وإفلات",
	}
	DifficultyLabels = map[Difficulty]string{
		DifficultyEasy:   "سهل",
		DifficultyMedium: "متوسط",
		DifficultyHard:   "صعب",
	}
	SubjectLabels = map[Subject]string{
		SubjectArabic:  "اللغة العربية",
		SubjectMath:    "الرياضيات",
		SubjectScience: "العلوم",
	}
)

// minSubstringRunes keeps digit keywords from matching inside unrelated text.
const minSubstringRunes = 3

func matchKeyword[T comparable](table []Keyword[T], text string) (T, bool) {
	var zero T
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return zero, false
	}
	for _, k := range table {
		if s == strings.ToLower(fmt.Sprint(k.Value)) {
			return k.Value, true
		}
		for _, w := range k.Words {
			if s == w {
				return k.Value, true
			}
		}
	}
	for _, k := range table {
		for _, w := range k.Words {
			if utf8.RuneCountInString(w) >= minSubstringRunes && strings.Contains(s, w) {
				return k.Value, true
			}
		}
	}
	return zero, false
}

// textOf renders an arbitrary decoded value as text for keyword matching.
func textOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// ParseQuestionType coerces v to a QuestionType, defaulting to multiple choice.
func ParseQuestionType(v any) QuestionType {
	if t, ok := v.(QuestionType); ok {
		if _, known := TypeLabels[t]; known {
			return t
		}
		v = string(t)
	}
	if t, ok := matchKeyword(QuestionTypeKeywords, textOf(v)); ok {
		return t
	}
	return QuestionTypeKeywords[0].Value
}

// ParseDifficulty coerces v to a Difficulty, defaulting to easy.
func ParseDifficulty(v any) Difficulty {
	if d, ok := v.(Difficulty); ok {
		if _, known := DifficultyLabels[d]; known {
			return d
		}
		v = string(d)
	}
	if d, ok := matchKeyword(DifficultyKeywords, textOf(v)); ok {
		return d
	}
	return DifficultyKeywords[0].Value
}

// ParseSubject coerces v to a Subject, defaulting to Arabic.
func ParseSubject(v any) Subject {
	if s, ok := v.(Subject); ok {
		if _, known := SubjectLabels[s]; known {
			return s
		}
		v = string(s)
	}
	if s, ok := matchKeyword(SubjectKeywords, textOf(v)); ok {
		return s
	}
	return SubjectKeywords[0].Value
}

// ParseGrade coerces v to a grade in [MinGrade, MaxGrade], defaulting to MinGrade.
func ParseGrade(v any) int {
	n, ok := gradeNumber(v)
	if !ok {
		if g, found := matchKeyword(GradeKeywords, textOf(v)); found {
			return g
		}
		return MinGrade
	}
	if n < MinGrade || n > MaxGrade {
		return MinGrade
	}
	return n
}

func gradeNumber(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case float64:
		if x != float64(int(x)) {
			return 0, false
		}
		return int(x), true
	}
	digits := leadingDigits(normalizeDigits(textOf(v)))
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// normalizeDigits maps Arabic-Indic and Eastern Arabic-Indic digits to ASCII.
func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		}
		return r
	}, s)
}

// leadingDigits returns the first run of ASCII digits in s.
func leadingDigits(s string) string {
	start := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return ""
	}
	end := strings.IndexFunc(s[start:], func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		return s[start:]
	}
	return s[start : start+end]
}
