package question

import (
	"time"

	"github.com/google/uuid"

	"github.com/nafes-platform/question-service/internal/question/parser"
)

// Question is a stored question bank entry.
type Question struct {
	ID            string              `json:"id"`
	Text          string              `json:"text"`
	Type          parser.QuestionType `json:"type"`
	CorrectAnswer string              `json:"correctAnswer"`
	Options       []string            `json:"options"`
	Difficulty    parser.Difficulty   `json:"difficulty,omitempty"`
	Grade         int                 `json:"grade,omitempty"`
	Subject       parser.Subject      `json:"subject,omitempty"`
	MediaURL      string              `json:"mediaUrl,omitempty"`
	SourceFormat  parser.Format       `json:"sourceFormat"`
	CreatedBy     string              `json:"createdBy,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ImportRequest carries raw question texts to parse and store.
// Inputs and Text may be combined; Text is split with SplitBatch.
type ImportRequest struct {
	Inputs    []string   `json:"inputs"`
	Text      string     `json:"text"`
	Async     bool       `json:"async"`
	CreatedBy *uuid.UUID `json:"-"`
}

// ImportItem reports what happened to one raw input.
type ImportItem struct {
	Index      int           `json:"index"`
	Result     parser.Result `json:"result"`
	QuestionID string        `json:"questionId,omitempty"`
	Saved      bool          `json:"saved"`
	Error      string        `json:"error,omitempty"`
}

// ImportSummary aggregates an import batch.
type ImportSummary struct {
	Total    int          `json:"total"`
	Saved    int          `json:"saved"`
	Rejected int          `json:"rejected"`
	Items    []ImportItem `json:"items"`
}

// JobStatus is the lifecycle of an async import.
type JobStatus string

const (
	JobQueued  JobStatus = "queued"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// Job tracks an async import.
type Job struct {
	ID        string         `json:"id"`
	Status    JobStatus      `json:"status"`
	Summary   *ImportSummary `json:"summary,omitempty"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ListFilter narrows List; zero values mean "any".
type ListFilter struct {
	Type    parser.QuestionType
	Subject parser.Subject
	Grade   int
	Limit   int
	Offset  int
}
