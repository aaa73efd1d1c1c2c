package question

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/nafes-platform/question-service/internal/db/repository"
	sqlcgen "github.com/nafes-platform/question-service/internal/db/sqlc"
	"github.com/nafes-platform/question-service/internal/question/parser"
)

const (
	defaultMemoSize      = 1024
	defaultMaxInputBytes = 16 << 10
	defaultMaxBatch      = 200
)

var (
	ErrInputTooLarge = errors.New("question input too large")
	ErrEmptyBatch    = errors.New("import batch is empty")
	ErrBatchTooLarge = errors.New("import batch too large")
	ErrInvalidID     = errors.New("invalid question id")
	ErrNotFound      = repository.ErrNotFound
)

// Service parses, renders and stores questions.
type Service struct {
	parser        *parser.Parser
	repo          *repository.QuestionRepository
	cache         ResultCache
	memo          *lru.Cache[string, parser.Result]
	logger        zerolog.Logger
	maxInputBytes int
	maxBatch      int
}

type ServiceOptions struct {
	MemoSize      int
	MaxInputBytes int
	MaxBatch      int
}

// NewService wires the parser with storage. repo and cache may be nil; a nil
// repo turns Import into a dry run that never saves.
func NewService(p *parser.Parser, repo *repository.QuestionRepository, cache ResultCache, opts ServiceOptions, logger zerolog.Logger) (*Service, error) {
	if p == nil {
		p = parser.Default()
	}
	if opts.MemoSize <= 0 {
		opts.MemoSize = defaultMemoSize
	}
	if opts.MaxInputBytes <= 0 {
		opts.MaxInputBytes = defaultMaxInputBytes
	}
	if opts.MaxBatch <= 0 {
		opts.MaxBatch = defaultMaxBatch
	}
	memo, err := lru.New[string, parser.Result](opts.MemoSize)
	if err != nil {
		return nil, fmt.Errorf("create parse memo: %w", err)
	}
	return &Service{
		parser:        p,
		repo:          repo,
		cache:         cache,
		memo:          memo,
		logger:        logger,
		maxInputBytes: opts.MaxInputBytes,
		maxBatch:      opts.MaxBatch,
	}, nil
}

// Preview parses input without storing it. Results are memoised in process
// and in Redis when a cache is configured.
func (s *Service) Preview(ctx context.Context, input string) (parser.Result, error) {
	if len(input) > s.maxInputBytes {
		return parser.Result{}, ErrInputTooLarge
	}

	if res, ok := s.memo.Get(input); ok {
		parseCacheHits.WithLabelValues("memory").Inc()
		return cloneResult(res), nil
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, input)
		if err != nil {
			s.logger.Warn().Err(err).Msg("parse cache read failed")
		} else if cached != nil {
			parseCacheHits.WithLabelValues("redis").Inc()
			s.memo.Add(input, *cached)
			return cloneResult(*cached), nil
		}
	}

	res := s.parser.Parse(input)
	parseTotal.WithLabelValues(string(res.Format), strconv.FormatBool(res.IsValid)).Inc()
	s.memo.Add(input, res)

	if s.cache != nil {
		if err := s.cache.Set(ctx, input, res); err != nil {
			s.logger.Warn().Err(err).Msg("parse cache write failed")
		}
	}
	return cloneResult(res), nil
}

// Render converts q to the named format.
func (s *Service) Render(q parser.Question, format string) (string, error) {
	return parser.Render(q, parser.Format(format))
}

// Import parses every input and stores the valid ones. Invalid inputs are
// reported per item; storage failures abort the batch.
func (s *Service) Import(ctx context.Context, req ImportRequest) (ImportSummary, error) {
	inputs := append([]string(nil), req.Inputs...)
	if req.Text != "" {
		inputs = append(inputs, SplitBatch(req.Text)...)
	}
	if len(inputs) == 0 {
		return ImportSummary{}, ErrEmptyBatch
	}
	if len(inputs) > s.maxBatch {
		return ImportSummary{}, fmt.Errorf("%w: %d inputs, limit %d", ErrBatchTooLarge, len(inputs), s.maxBatch)
	}

	summary := ImportSummary{Total: len(inputs), Items: make([]ImportItem, 0, len(inputs))}
	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		item := ImportItem{Index: i}
		res, err := s.Preview(ctx, input)
		if err != nil {
			item.Error = err.Error()
			summary.Rejected++
			summary.Items = append(summary.Items, item)
			importTotal.WithLabelValues("rejected").Inc()
			continue
		}
		item.Result = res

		if !res.IsValid {
			summary.Rejected++
			summary.Items = append(summary.Items, item)
			importTotal.WithLabelValues("rejected").Inc()
			continue
		}

		if s.repo != nil {
			row, err := s.repo.Insert(ctx, toInsertParams(res, uuid.New(), req.CreatedBy))
			if err != nil {
				return summary, fmt.Errorf("store question %d: %w", i, err)
			}
			item.QuestionID = uuidFrom(row.QuestionID)
			item.Saved = true
			summary.Saved++
			importTotal.WithLabelValues("saved").Inc()
		}
		summary.Items = append(summary.Items, item)
	}

	s.logger.Info().
		Int("total", summary.Total).
		Int("saved", summary.Saved).
		Int("rejected", summary.Rejected).
		Msg("question import finished")
	return summary, nil
}

// Get loads a stored question.
func (s *Service) Get(ctx context.Context, id string) (Question, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Question{}, ErrInvalidID
	}
	if s.repo == nil {
		return Question{}, ErrNotFound
	}
	row, err := s.repo.Get(ctx, pgtype.UUID{Bytes: parsed, Valid: true})
	if err != nil {
		return Question{}, err
	}
	return toDomain(row), nil
}

// List returns stored questions matching the filter, newest first.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Question, error) {
	if s.repo == nil {
		return []Question{}, nil
	}
	rows, err := s.repo.List(ctx, sqlcgen.ListQuestionsParams{
		Type:      string(f.Type),
		Subject:   string(f.Subject),
		Grade:     int32(f.Grade),
		RowLimit:  clampInt32(f.Limit),
		RowOffset: clampInt32(f.Offset),
	})
	if err != nil {
		return nil, err
	}
	qs := make([]Question, 0, len(rows))
	for _, row := range rows {
		qs = append(qs, toDomain(row))
	}
	return qs, nil
}

func toInsertParams(res parser.Result, id uuid.UUID, createdBy *uuid.UUID) sqlcgen.InsertQuestionParams {
	d := res.Data
	params := sqlcgen.InsertQuestionParams{
		QuestionID:    pgtype.UUID{Bytes: id, Valid: true},
		Text:          d.Text,
		Type:          string(d.Type),
		CorrectAnswer: d.CorrectAnswer,
		Options:       d.Options,
		Difficulty:    string(d.Difficulty),
		Grade:         int32(d.Grade),
		Subject:       string(d.Subject),
		MediaUrl:      d.MediaURL,
		SourceFormat:  string(res.Format),
	}
	if params.Options == nil {
		params.Options = []string{}
	}
	if createdBy != nil {
		params.CreatedBy = pgtype.UUID{Bytes: *createdBy, Valid: true}
	}
	return params
}

func toDomain(row sqlcgen.Question) Question {
	q := Question{
		ID:            uuidFrom(row.QuestionID),
		Text:          row.Text,
		Type:          parser.QuestionType(row.Type),
		CorrectAnswer: row.CorrectAnswer,
		Options:       row.Options,
		Difficulty:    parser.Difficulty(row.Difficulty),
		Grade:         int(row.Grade),
		Subject:       parser.Subject(row.Subject),
		MediaURL:      row.MediaUrl,
		SourceFormat:  parser.Format(row.SourceFormat),
		CreatedAt:     row.CreatedAt.Time,
	}
	if row.CreatedBy.Valid {
		q.CreatedBy = uuidFrom(row.CreatedBy)
	}
	if q.Options == nil {
		q.Options = []string{}
	}
	return q
}

func clampInt32(n int) int32 {
	switch {
	case n < 0:
		return 0
	case n > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(n)
}

func uuidFrom(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}

// cloneResult copies the slices of a memoised result so callers cannot
// mutate the cached value.
func cloneResult(r parser.Result) parser.Result {
	r.Data.Options = append([]string{}, r.Data.Options...)
	r.Errors = append([]parser.Issue{}, r.Errors...)
	r.Warnings = append([]string{}, r.Warnings...)
	r.Suggestions = append([]string{}, r.Suggestions...)
	return r
}
