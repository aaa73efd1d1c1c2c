package parser

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CanonicalBooleanOptions are filled into true/false questions written without options.
var CanonicalBooleanOptions = [2]string{"صواب", "خطأ"}

// DefaultBooleanPairs are the option sets recognized as a true/false question.
var DefaultBooleanPairs = [][2]string{
	{"true", "false"},
	{"صواب", "خطأ"},
	{"نعم", "لا"},
}

type fieldSynonyms struct {
	field string
	words []string
}

// defaultFieldSynonyms drives the natural-language extractor. Order matters:
// the first field whose keyword appears in a line's key wins, so composite keys
// such as "نوع السؤال" or "خيارات الإجابة" must hit the specific field first.
var defaultFieldSynonyms = []fieldSynonyms{
	{FieldType, []string{"type", "kind", "نوع"}},
	{FieldDifficulty, []string{"difficulty", "level", "الصعوبة", "صعوبة", "المستوى", "مستوى"}},
	{FieldGrade, []string{"grade", "class", "الصف", "صف"}},
	{FieldSubject, []string{"subject", "المادة", "مادة"}},
	{FieldMediaURL, []string{"media", "url", "image", "link", "الوسائط", "الصورة", "صورة", "الرابط", "رابط"}},
	{FieldOptions, []string{"options", "choices", "الخيارات", "خيارات", "الاختيارات", "اختيارات", "البدائل"}},
	{FieldCorrectAnswer, []string{"answer", "correct", "الإجابة", "الاجابة", "إجابة", "اجابة", "الجواب", "جواب"}},
	{FieldText, []string{"question", "text", "السؤال", "سؤال", "النص", "نص"}},
}

// Vocabulary extends the built-in keyword tables. The zero value adds nothing.
type Vocabulary struct {
	// Fields maps a field name (text, correctAnswer, options, type, difficulty,
	// grade, subject, mediaUrl) to extra keywords for natural-language input.
	Fields map[string][]string `yaml:"fields"`
	// BooleanPairs are extra two-element option sets meaning true/false.
	BooleanPairs [][]string `yaml:"boolean_pairs"`
}

// LoadVocabulary reads a YAML vocabulary file.
func LoadVocabulary(path string) (Vocabulary, error) {
	var v Vocabulary
	data, err := os.ReadFile(path)
	if err != nil {
		return v, fmt.Errorf("read vocabulary: %w", err)
	}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode vocabulary: %w", err)
	}
	if err := v.Validate(); err != nil {
		return v, err
	}
	return v, nil
}

// Validate rejects unknown field names and malformed boolean pairs.
func (v Vocabulary) Validate() error {
	for field := range v.Fields {
		if !knownField(field) {
			return fmt.Errorf("vocabulary: unknown field %q", field)
		}
	}
	for i, pair := range v.BooleanPairs {
		if len(pair) != 2 {
			return fmt.Errorf("vocabulary: boolean_pairs[%d] must have exactly two entries", i)
		}
		if strings.TrimSpace(pair[0]) == "" || strings.TrimSpace(pair[1]) == "" {
			return fmt.Errorf("vocabulary: boolean_pairs[%d] has an empty entry", i)
		}
	}
	return nil
}

func knownField(field string) bool {
	for _, fs := range defaultFieldSynonyms {
		if fs.field == field {
			return true
		}
	}
	return false
}

func (v Vocabulary) fieldSynonyms() []fieldSynonyms {
	out := make([]fieldSynonyms, 0, len(defaultFieldSynonyms))
	for _, fs := range defaultFieldSynonyms {
		words := append([]string(nil), fs.words...)
		for _, extra := range v.Fields[fs.field] {
			if w := strings.ToLower(strings.TrimSpace(extra)); w != "" {
				words = append(words, w)
			}
		}
		out = append(out, fieldSynonyms{field: fs.field, words: words})
	}
	return out
}

func (v Vocabulary) booleanPairs() [][2]string {
	out := append([][2]string(nil), DefaultBooleanPairs...)
	for _, pair := range v.BooleanPairs {
		if len(pair) != 2 {
			continue
		}
		out = append(out, [2]string{
			strings.ToLower(strings.TrimSpace(pair[0])),
			strings.ToLower(strings.TrimSpace(pair[1])),
		})
	}
	return out
}
