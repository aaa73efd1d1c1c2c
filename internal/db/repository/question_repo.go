package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	sqlcgen "github.com/nafes-platform/question-service/internal/db/sqlc"
)

// ErrNotFound is returned when a question id has no row.
var ErrNotFound = errors.New("question not found")

type questionStore interface {
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	GetQuestion(ctx context.Context, questionID pgtype.UUID) (sqlcgen.Question, error)
	ListQuestions(ctx context.Context, arg sqlcgen.ListQuestionsParams) ([]sqlcgen.Question, error)
}

// QuestionRepository wraps sqlc queries for the question bank.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// Insert stores a parsed and validated question.
func (r *QuestionRepository) Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	return r.store.InsertQuestion(ctx, params)
}

// Get loads a single question by id.
func (r *QuestionRepository) Get(ctx context.Context, id pgtype.UUID) (sqlcgen.Question, error) {
	row, err := r.store.GetQuestion(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlcgen.Question{}, ErrNotFound
	}
	return row, err
}

// List returns the newest questions matching the optional filters.
func (r *QuestionRepository) List(ctx context.Context, params sqlcgen.ListQuestionsParams) ([]sqlcgen.Question, error) {
	if params.RowLimit <= 0 {
		params.RowLimit = 20
	}
	return r.store.ListQuestions(ctx, params)
}
