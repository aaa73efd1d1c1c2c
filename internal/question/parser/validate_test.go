package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validated(q Question) Result {
	r := newResult(FormatJSON)
	r.Data = q
	Validate(r)
	return *r
}

func TestValidateRequiredFields(t *testing.T) {
	res := validated(Question{Type: TypeFillBlank})
	assert.False(t, res.IsValid)
	assert.Len(t, filterField(res.Errors, FieldText), 1)
	assert.Len(t, filterField(res.Errors, FieldCorrectAnswer), 1)
}

func TestValidateTextLength(t *testing.T) {
	long := strings.Repeat("س", MaxTextLength+1)
	res := validated(Question{Text: long, CorrectAnswer: "x", Type: TypeFillBlank})
	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, MsgTextTooLong, res.Errors[0].Message)

	exact := strings.Repeat("س", MaxTextLength)
	res = validated(Question{Text: exact, CorrectAnswer: "x", Type: TypeFillBlank})
	assert.True(t, res.IsValid)
}

func TestValidateMultipleChoice(t *testing.T) {
	t.Run("too few options warns", func(t *testing.T) {
		res := validated(Question{Text: "q", CorrectAnswer: "a", Options: []string{"a"}, Type: TypeMultipleChoice})
		assert.True(t, res.IsValid)
		assert.Contains(t, res.Warnings, MsgTooFewOptions)
	})

	t.Run("too many options errors", func(t *testing.T) {
		opts := strings.Split("a,b,c,d,e,f,g,h,i,j,k", ",")
		res := validated(Question{Text: "q", CorrectAnswer: "a", Options: opts, Type: TypeMultipleChoice})
		assert.False(t, res.IsValid)
		assert.Len(t, filterField(res.Errors, FieldOptions), 1)
	})

	t.Run("ten options is fine", func(t *testing.T) {
		opts := strings.Split("a,b,c,d,e,f,g,h,i,j", ",")
		res := validated(Question{Text: "q", CorrectAnswer: "a", Options: opts, Type: TypeMultipleChoice})
		assert.True(t, res.IsValid)
	})

	t.Run("case insensitive duplicates", func(t *testing.T) {
		res := validated(Question{Text: "q", CorrectAnswer: "Cat", Options: []string{"Cat", "cat ", "Dog"}, Type: TypeMultipleChoice})
		assert.True(t, res.IsValid)
		assert.Contains(t, res.Warnings, MsgDuplicateOptions)
		assert.Contains(t, res.Suggestions, SuggestRemoveDuplicates)
	})

	t.Run("answer differs only in case", func(t *testing.T) {
		res := validated(Question{Text: "q", CorrectAnswer: "paris", Options: []string{"Paris", "Rome"}, Type: TypeMultipleChoice})
		assert.False(t, res.IsValid)
		errs := filterField(res.Errors, FieldCorrectAnswer)
		require.Len(t, errs, 1)
		assert.Equal(t, MsgAnswerNotInOptions, errs[0].Message)
		assert.Contains(t, res.Suggestions, SuggestCheckCase+"Paris")
	})

	t.Run("answer absent", func(t *testing.T) {
		res := validated(Question{Text: "q", CorrectAnswer: "Oslo", Options: []string{"Paris", "Rome"}, Type: TypeMultipleChoice})
		assert.False(t, res.IsValid)
		assert.Contains(t, res.Suggestions, SuggestAddAnswerOption)
	})
}

func TestValidateTrueFalse(t *testing.T) {
	t.Run("fills canonical options", func(t *testing.T) {
		res := validated(Question{Text: "q", CorrectAnswer: "خطأ", Type: TypeTrueFalse})
		assert.Equal(t, []string{"صواب", "خطأ"}, res.Data.Options)
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Warnings)
	})

	t.Run("keeps given options", func(t *testing.T) {
		res := validated(Question{Text: "q", CorrectAnswer: "نعم", Options: []string{"نعم", "لا"}, Type: TypeTrueFalse})
		assert.Equal(t, []string{"نعم", "لا"}, res.Data.Options)
		assert.True(t, res.IsValid)
	})

	t.Run("non boolean answer warns", func(t *testing.T) {
		res := validated(Question{Text: "q", CorrectAnswer: "ربما", Type: TypeTrueFalse})
		assert.True(t, res.IsValid)
		assert.Contains(t, res.Warnings, MsgTrueFalseAnswer)
	})
}

func TestValidateOptionsAndMedia(t *testing.T) {
	t.Run("blank option", func(t *testing.T) {
		res := validated(Question{Text: "q", CorrectAnswer: "a", Options: []string{"a", "  "}, Type: TypeConnect})
		assert.Contains(t, res.Warnings, MsgEmptyOption)
		assert.True(t, res.IsValid)
	})

	for _, u := range []string{"not a url", "ftp://example.com/a.png", "/relative/path.png", "https://"} {
		res := validated(Question{Text: "q", CorrectAnswer: "a", Type: TypeFillBlank, MediaURL: u})
		assert.Contains(t, res.Warnings, MsgInvalidMediaURL, u)
		assert.True(t, res.IsValid, u)
	}

	res := validated(Question{Text: "q", CorrectAnswer: "a", Type: TypeFillBlank, MediaURL: "https://cdn.example.com/img.png"})
	assert.Empty(t, res.Warnings)
}

func TestDetectQuestionType(t *testing.T) {
	cases := []struct {
		name string
		q    Question
		want QuestionType
	}{
		{"english pair", Question{Options: []string{"True", "FALSE"}}, TypeTrueFalse},
		{"arabic pair", Question{Options: []string{"صواب", "خطأ"}}, TypeTrueFalse},
		{"yes no pair", Question{Options: []string{"لا", "نعم"}}, TypeTrueFalse},
		{"mixed pair", Question{Options: []string{"true", "خطأ"}}, TypeMultipleChoice},
		{"pair plus extra", Question{Options: []string{"true", "false", "maybe"}}, TypeMultipleChoice},
		{"choices", Question{Options: []string{"a", "b"}}, TypeMultipleChoice},
		{"boolean answer", Question{CorrectAnswer: "False"}, TypeTrueFalse},
		{"arabic boolean answer", Question{CorrectAnswer: "نعم"}, TypeTrueFalse},
		{"free answer", Question{CorrectAnswer: "Cairo"}, TypeFillBlank},
		{"nothing", Question{}, TypeFillBlank},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectQuestionType(tc.q))
		})
	}
}
