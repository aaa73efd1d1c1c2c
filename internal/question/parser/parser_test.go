package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenarios(t *testing.T) {
	t.Run("pipe multiple choice", func(t *testing.T) {
		res := Parse("ما عاصمة مصر؟ | القاهرة | القاهرة, الجيزة, الإسكندرية")
		assert.Equal(t, FormatPipe, res.Format)
		assert.Equal(t, TypeMultipleChoice, res.Data.Type)
		assert.Equal(t, "القاهرة", res.Data.CorrectAnswer)
		assert.Len(t, res.Data.Options, 3)
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
	})

	t.Run("json", func(t *testing.T) {
		res := Parse(`{"text":"2+2?","correctAnswer":"4","options":["3","4","5"]}`)
		assert.Equal(t, FormatJSON, res.Format)
		assert.True(t, res.IsValid)
		assert.Len(t, res.Data.Options, 3)
		assert.Equal(t, TypeMultipleChoice, res.Data.Type)
	})

	t.Run("markdown", func(t *testing.T) {
		res := Parse("# Q\n- A ✓\n- B")
		assert.Equal(t, FormatMarkdown, res.Format)
		assert.Equal(t, "Q", res.Data.Text)
		assert.Equal(t, "A", res.Data.CorrectAnswer)
		assert.Equal(t, []string{"A", "B"}, res.Data.Options)
		assert.True(t, res.IsValid)
	})

	t.Run("natural", func(t *testing.T) {
		res := Parse("السؤال: ما اسمك؟\nالإجابة: أحمد")
		assert.Equal(t, FormatNatural, res.Format)
		assert.Equal(t, "ما اسمك؟", res.Data.Text)
		assert.Equal(t, "أحمد", res.Data.CorrectAnswer)
		assert.Equal(t, TypeFillBlank, res.Data.Type)
		assert.Empty(t, res.Data.Options)
		assert.True(t, res.IsValid)
	})

	t.Run("duplicate options only warn", func(t *testing.T) {
		res := Parse("Q | A | A, A, B")
		assert.True(t, res.IsValid)
		assert.Contains(t, res.Warnings, MsgDuplicateOptions)
	})

	t.Run("answer missing from options", func(t *testing.T) {
		res := Parse("Q | Z | A, B, C")
		assert.False(t, res.IsValid)
		require.NotEmpty(t, res.Errors)
		assert.True(t, hasField(res.Errors, FieldCorrectAnswer))
	})
}

func TestParseEmptyInputIsTotal(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n"} {
		res := Parse(in)
		assert.False(t, res.IsValid)
		assert.NotEmpty(t, res.Errors)
		assert.Equal(t, FormatUnknown, res.Format)
		assert.NotNil(t, res.Data.Options)
		assert.NotNil(t, res.Warnings)
		assert.NotNil(t, res.Suggestions)
	}
}

func TestParseGarbage(t *testing.T) {
	res := Parse("just some words without structure")
	assert.Equal(t, FormatUnknown, res.Format)
	assert.False(t, res.IsValid)
	assert.True(t, hasField(res.Errors, FieldFormat))
	assert.Contains(t, res.Suggestions, SuggestFormats)
}

func TestTrueFalseAutoFill(t *testing.T) {
	res := Parse("هل الأرض كروية | صواب")
	assert.Equal(t, TypeTrueFalse, res.Data.Type)
	assert.Equal(t, []string{"صواب", "خطأ"}, res.Data.Options)
	assert.True(t, res.IsValid)
}

func TestPipeRoundTrip(t *testing.T) {
	cases := []Question{
		{Text: "ما عاصمة مصر؟", CorrectAnswer: "القاهرة", Options: []string{"القاهرة", "الجيزة", "الإسكندرية"}, Type: TypeMultipleChoice},
		{Text: "Pick a number", CorrectAnswer: "1,000", Options: []string{"1,000", "2,000"}, Type: TypeMultipleChoice},
		{Text: "Which planet is red?", CorrectAnswer: "Mars", Options: []string{"Venus", "Mars", "Earth", "Jupiter"}, Type: TypeMultipleChoice},
		{Text: "Which operator is a|b?", CorrectAnswer: "a|b", Options: []string{"a|b", "a&b"}, Type: TypeMultipleChoice},
		{Text: `ما ناتج 6 \ 2 في هذا الرمز؟`, CorrectAnswer: `\`, Options: []string{`\`, `\|`, "/"}, Type: TypeMultipleChoice},
		{Text: "اختر الحرف الصحيح", CorrectAnswer: "B", Options: []string{"A", "", "B"}, Type: TypeMultipleChoice},
	}
	for _, q := range cases {
		res := Default().ParseAs(ToPipeFormat(q), FormatPipe)
		assert.Equal(t, q.Text, res.Data.Text)
		assert.Equal(t, q.CorrectAnswer, res.Data.CorrectAnswer)
		assert.Equal(t, q.Options, res.Data.Options)
		assert.True(t, res.IsValid)
	}
}

func TestValidMultipleChoiceContainsAnswer(t *testing.T) {
	inputs := []string{
		"ما عاصمة مصر؟ | القاهرة | القاهرة, الجيزة",
		"Q | a | A, B",
		`{"text":"x","answer":"b","options":["a","b"]}`,
		"# Q\n- [x] yes\n- [ ] no\n- maybe",
		"Question: capital?\nAnswer: Paris\nOptions: Paris, Rome",
	}
	for _, in := range inputs {
		res := Parse(in)
		if res.Data.Type == TypeMultipleChoice && res.IsValid {
			assert.Contains(t, res.Data.Options, res.Data.CorrectAnswer, in)
		}
	}
}

func TestParseWithCustomVocabulary(t *testing.T) {
	p := New(Vocabulary{
		Fields:       map[string][]string{FieldCorrectAnswer: {"reponse"}},
		BooleanPairs: [][]string{{"vrai", "faux"}},
	})

	res := p.Parse("Question: Paris est en France?\nReponse: vrai")
	assert.Equal(t, "vrai", res.Data.CorrectAnswer)
	assert.Equal(t, TypeTrueFalse, res.Data.Type)
	assert.True(t, res.IsValid)

	// the default parser knows neither word
	res = Parse("Question: Paris est en France?\nReponse: vrai")
	assert.Empty(t, res.Data.CorrectAnswer)
	assert.False(t, res.IsValid)
}

func hasField(issues []Issue, field string) bool {
	for _, i := range issues {
		if i.Field == field && i.Severity == SeverityError {
			return true
		}
	}
	return false
}
