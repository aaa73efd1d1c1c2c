package parser

// QuestionType is the pedagogical kind of a question.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeConnect        QuestionType = "connect"
	TypeFillBlank      QuestionType = "fill_blank"
	TypeDragDrop       QuestionType = "drag_drop"
)

// Difficulty levels. The empty value means "not given".
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Subject taught by the question. The empty value means "not given".
type Subject string

const (
	SubjectArabic  Subject = "arabic"
	SubjectMath    Subject = "math"
	SubjectScience Subject = "science"
)

// Supported grades.
const (
	MinGrade = 3
	MaxGrade = 6
)

// Format is the input syntax a question was written in.
type Format string

const (
	FormatPipe     Format = "pipe"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatNatural  Format = "natural"
	FormatUnknown  Format = "unknown"
)

// Severity of an Issue. Only SeverityError blocks a question.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

const (
	MaxTextLength = 500
	MinOptions    = 2
	MaxOptions    = 10
	shortTextLen  = 10
)

// Question is the format-agnostic record every extractor produces.
type Question struct {
	Text          string       `json:"text"`
	Type          QuestionType `json:"type,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Options       []string     `json:"options"`
	Difficulty    Difficulty   `json:"difficulty,omitempty"`
	Grade         int          `json:"grade,omitempty"`
	Subject       Subject      `json:"subject,omitempty"`
	MediaURL      string       `json:"mediaUrl,omitempty"`
}

// Issue is a field-level diagnostic.
type Issue struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
}

// Result is what Parse returns for every input, including empty or garbage text.
type Result struct {
	IsValid     bool     `json:"isValid"`
	Format      Format   `json:"format"`
	Data        Question `json:"parsedData"`
	Errors      []Issue  `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

func newResult(format Format) *Result {
	return &Result{
		Format:      format,
		Data:        Question{Options: []string{}},
		Errors:      []Issue{},
		Warnings:    []string{},
		Suggestions: []string{},
	}
}

func (r *Result) addError(field, message string) {
	r.Errors = append(r.Errors, Issue{Field: field, Message: message, Severity: SeverityError})
}

func (r *Result) addErrorAt(field, message string, line, column int) {
	r.Errors = append(r.Errors, Issue{Field: field, Message: message, Severity: SeverityError, Line: line, Column: column})
}

func (r *Result) addIssueWarning(field, message string) {
	r.Errors = append(r.Errors, Issue{Field: field, Message: message, Severity: SeverityWarning})
}

func (r *Result) warn(message string) {
	r.Warnings = append(r.Warnings, message)
}

func (r *Result) suggest(message string) {
	r.Suggestions = append(r.Suggestions, message)
}

// hasError reports whether a blocking error was already recorded for field.
func (r *Result) hasError(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field && e.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r *Result) refreshValidity() {
	r.IsValid = true
	for _, e := range r.Errors {
		if e.Severity == SeverityError {
			r.IsValid = false
			return
		}
	}
}

// Field names used in Issue.Field.
const (
	FieldText          = "text"
	FieldType          = "type"
	FieldCorrectAnswer = "correctAnswer"
	FieldOptions       = "options"
	FieldDifficulty    = "difficulty"
	FieldGrade         = "grade"
	FieldSubject       = "subject"
	FieldMediaURL      = "mediaUrl"
	FieldJSON          = "json"
	FieldFormat        = "format"
)
