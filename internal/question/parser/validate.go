package parser

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Validate runs the common-sense checks over an extracted question using the
// default vocabulary. It may fill in true/false options.
func Validate(r *Result) {
	defaultParser.Validate(r)
}

// Validate runs every check independently and recomputes r.IsValid.
func (p *Parser) Validate(r *Result) {
	q := &r.Data

	if strings.TrimSpace(q.Text) == "" {
		if !r.hasError(FieldText) {
			r.addError(FieldText, MsgTextRequired)
		}
	} else if utf8.RuneCountInString(q.Text) > MaxTextLength {
		r.addError(FieldText, MsgTextTooLong)
	}

	if strings.TrimSpace(q.CorrectAnswer) == "" && !r.hasError(FieldCorrectAnswer) {
		r.addError(FieldCorrectAnswer, MsgAnswerRequired)
	}

	switch q.Type {
	case TypeMultipleChoice:
		validateChoices(r)
	case TypeTrueFalse:
		p.validateTrueFalse(r)
	}

	for _, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			r.warn(MsgEmptyOption)
			break
		}
	}

	if q.MediaURL != "" && !wellFormedURL(q.MediaURL) {
		r.warn(MsgInvalidMediaURL)
	}

	r.refreshValidity()
}

func validateChoices(r *Result) {
	q := &r.Data
	n := len(q.Options)
	if n < MinOptions {
		r.warn(MsgTooFewOptions)
	}
	if n > MaxOptions {
		r.addError(FieldOptions, MsgTooManyOptions)
	}

	seen := make(map[string]struct{}, n)
	for _, o := range q.Options {
		seen[strings.ToLower(strings.TrimSpace(o))] = struct{}{}
	}
	if len(seen) < n {
		r.warn(MsgDuplicateOptions)
		r.suggest(SuggestRemoveDuplicates)
	}

	if q.CorrectAnswer == "" || containsExact(q.Options, q.CorrectAnswer) {
		return
	}
	r.addError(FieldCorrectAnswer, MsgAnswerNotInOptions)
	if near, ok := findFold(q.Options, q.CorrectAnswer); ok {
		r.suggest(SuggestCheckCase + near)
	} else {
		r.suggest(SuggestAddAnswerOption)
	}
}

func (p *Parser) validateTrueFalse(r *Result) {
	q := &r.Data
	if len(q.Options) == 0 {
		q.Options = []string{CanonicalBooleanOptions[0], CanonicalBooleanOptions[1]}
	}
	if q.CorrectAnswer == "" || p.isBooleanToken(q.CorrectAnswer) {
		return
	}
	if _, ok := findFold(q.Options, q.CorrectAnswer); !ok {
		r.warn(MsgTrueFalseAnswer)
	}
}

func containsExact(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}

func findFold(options []string, s string) (string, bool) {
	needle := strings.TrimSpace(s)
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(o), needle) {
			return o, true
		}
	}
	return "", false
}

func wellFormedURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
