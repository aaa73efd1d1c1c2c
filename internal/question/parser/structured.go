package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// jsonKeys lists accepted spellings per field, first present key wins.
var jsonKeys = map[string][]string{
	FieldText:          {"text", "question", "prompt"},
	FieldCorrectAnswer: {"correctAnswer", "correct_answer", "answer"},
	FieldOptions:       {"options", "choices"},
	FieldType:          {"type", "questionType", "question_type"},
	FieldDifficulty:    {"difficulty", "level"},
	FieldGrade:         {"grade"},
	FieldSubject:       {"subject"},
	FieldMediaURL:      {"mediaUrl", "media_url", "imageUrl", "image"},
}

func lookup(obj map[string]any, field string) (any, bool) {
	for _, k := range jsonKeys[field] {
		if v, ok := obj[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func lookupString(obj map[string]any, field string) string {
	v, ok := lookup(obj, field)
	if !ok {
		return ""
	}
	return strings.TrimSpace(textOf(v))
}

// parseJSON reads a single question object.
func (p *Parser) parseJSON(input string, r *Result) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		line, col := jsonErrorPosition(input, err)
		r.addErrorAt(FieldJSON, MsgInvalidJSON+": "+err.Error(), line, col)
		return
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		r.addError(FieldJSON, MsgJSONNotObject)
		return
	}

	r.Data.Text = lookupString(obj, FieldText)
	r.Data.CorrectAnswer = lookupString(obj, FieldCorrectAnswer)

	if v, ok := lookup(obj, FieldOptions); ok {
		if arr, isArr := v.([]any); isArr {
			r.Data.Options = make([]string, 0, len(arr))
			for _, item := range arr {
				r.Data.Options = append(r.Data.Options, strings.TrimSpace(textOf(item)))
			}
		} else {
			r.addIssueWarning(FieldOptions, MsgOptionsNotArray)
		}
	}

	if v := lookupString(obj, FieldType); v != "" {
		r.Data.Type = ParseQuestionType(v)
	}
	if v := lookupString(obj, FieldDifficulty); v != "" {
		r.Data.Difficulty = ParseDifficulty(v)
	}
	if v, ok := lookup(obj, FieldGrade); ok && textOf(v) != "" {
		r.Data.Grade = ParseGrade(v)
	}
	if v := lookupString(obj, FieldSubject); v != "" {
		r.Data.Subject = ParseSubject(v)
	}
	r.Data.MediaURL = lookupString(obj, FieldMediaURL)

	if r.Data.Text == "" {
		r.addError(FieldText, MsgTextRequired)
	}
	if r.Data.CorrectAnswer == "" {
		r.addError(FieldCorrectAnswer, MsgAnswerRequired)
	}
}

// jsonErrorPosition converts a decoder byte offset into a 1-based line and column.
func jsonErrorPosition(input string, err error) (int, int) {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0, 0
	}
	if offset <= 0 || offset > int64(len(input)) {
		return 0, 0
	}
	prefix := []byte(input[:offset])
	line := bytes.Count(prefix, []byte("\n")) + 1
	col := int(offset)
	if i := bytes.LastIndexByte(prefix, '\n'); i >= 0 {
		col = int(offset) - i - 1
	}
	return line, col
}
