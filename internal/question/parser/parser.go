// Package parser turns free-form question text into a structured question.
//
// Four syntaxes are recognized and auto-detected:
//
//	pipe      ما عاصمة مصر؟ | القاهرة | القاهرة, الجيزة, الإسكندرية
//	json      {"text": "2+2?", "correctAnswer": "4", "options": ["3", "4", "5"]}
//	markdown  # Question
//	          - A ✓
//	          - B
//	natural   السؤال: ما اسمك؟
//	          الإجابة: أحمد
//
// Parsing never fails: malformed input is reported through Result.Errors.
package parser

import "strings"

// Parser is immutable and safe for concurrent use.
type Parser struct {
	fields     []fieldSynonyms
	boolPairs  [][2]string
	boolTokens map[string]struct{}
}

var defaultParser = New(Vocabulary{})

// New builds a parser whose keyword tables are the defaults extended by v.
func New(v Vocabulary) *Parser {
	p := &Parser{
		fields:    v.fieldSynonyms(),
		boolPairs: v.booleanPairs(),
	}
	p.boolTokens = make(map[string]struct{}, 2*len(p.boolPairs))
	for _, pair := range p.boolPairs {
		p.boolTokens[pair[0]] = struct{}{}
		p.boolTokens[pair[1]] = struct{}{}
	}
	return p
}

// Default returns the parser with the built-in vocabulary.
func Default() *Parser {
	return defaultParser
}

// Parse detects the syntax of input and parses it with the default vocabulary.
func Parse(input string) Result {
	return defaultParser.Parse(input)
}

// Parse detects the syntax of input, extracts, infers the type and validates.
func (p *Parser) Parse(input string) Result {
	return p.ParseAs(input, DetectFormat(input))
}

// ParseAs skips detection and reads input with the extractor for format.
func (p *Parser) ParseAs(input string, format Format) Result {
	r := newResult(format)
	switch format {
	case FormatPipe:
		p.parsePipe(input, r)
	case FormatJSON:
		p.parseJSON(input, r)
	case FormatMarkdown:
		p.parseMarkdown(input, r)
	case FormatNatural:
		p.parseNatural(input, r)
	default:
		r.Format = FormatUnknown
		if strings.TrimSpace(input) != "" {
			r.addError(FieldFormat, MsgUnknownFormat)
		}
		r.suggest(SuggestFormats)
	}

	if r.Data.Options == nil {
		r.Data.Options = []string{}
	}
	if r.Data.Type == "" {
		r.Data.Type = p.DetectQuestionType(r.Data)
	}
	p.Validate(r)
	return *r
}
