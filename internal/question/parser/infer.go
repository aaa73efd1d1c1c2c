package parser

import "strings"

// DetectQuestionType infers a type for a question that did not state one.
func DetectQuestionType(q Question) QuestionType {
	return defaultParser.DetectQuestionType(q)
}

// DetectQuestionType infers a type using the parser's boolean vocabulary.
func (p *Parser) DetectQuestionType(q Question) QuestionType {
	if len(q.Options) > 0 {
		if p.isBooleanPair(q.Options) {
			return TypeTrueFalse
		}
		return TypeMultipleChoice
	}
	if p.isBooleanToken(q.CorrectAnswer) {
		return TypeTrueFalse
	}
	return TypeFillBlank
}

// isBooleanPair reports whether the lower-cased option set equals a known pair.
func (p *Parser) isBooleanPair(options []string) bool {
	set := make(map[string]struct{}, len(options))
	for _, o := range options {
		set[strings.ToLower(strings.TrimSpace(o))] = struct{}{}
	}
	if len(set) != 2 {
		return false
	}
	for _, pair := range p.boolPairs {
		_, a := set[pair[0]]
		_, b := set[pair[1]]
		if a && b {
			return true
		}
	}
	return false
}

func (p *Parser) isBooleanToken(s string) bool {
	_, ok := p.boolTokens[strings.ToLower(strings.TrimSpace(s))]
	return ok
}
