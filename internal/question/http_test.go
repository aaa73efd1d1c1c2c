package question

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nafes-platform/question-service/internal/auth"
	"github.com/nafes-platform/question-service/internal/auth/jwt"
	"github.com/nafes-platform/question-service/internal/question/parser"
)

type httpFixture struct {
	handler http.Handler
	store   *stubQuestionStore
	tokens  *jwt.Manager
	worker  *ImportWorker
}

func newHTTPFixture(t *testing.T) *httpFixture {
	t.Helper()
	store := newStubStore()
	svc := newTestService(t, store, nil, ServiceOptions{MaxInputBytes: 4096})
	worker := NewImportWorker(svc, newMemoryCache(), zerolog.New(io.Discard), WorkerOptions{QueueSize: 4})
	tokens := jwt.NewManager(jwt.TokenConfig{AccessSecret: []byte("secret")})

	mux := http.NewServeMux()
	NewHTTPHandler(svc, worker, zerolog.New(io.Discard)).Routes(mux)

	return &httpFixture{
		handler: auth.AuthMiddleware(tokens, zerolog.New(io.Discard))(mux),
		store:   store,
		tokens:  tokens,
		worker:  worker,
	}
}

func (f *httpFixture) do(t *testing.T, method, path string, body interface{}, role string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if role != "" {
		token, err := f.tokens.GenerateAccessToken(jwt.User{ID: uuid.New(), Role: role})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestHTTPParse(t *testing.T) {
	f := newHTTPFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/questions/parse", map[string]string{"input": validPipe}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res parser.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.IsValid)
	assert.Equal(t, parser.FormatPipe, res.Format)
	assert.Equal(t, "القاهرة", res.Data.CorrectAnswer)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw, "parsedData")
	assert.Contains(t, raw, "isValid")
}

func TestHTTPParseErrors(t *testing.T) {
	f := newHTTPFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/questions/parse", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	big := make([]byte, 5000)
	for i := range big {
		big[i] = 'a'
	}
	rec = f.do(t, http.MethodPost, "/v1/questions/parse", map[string]string{"input": string(big)}, "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHTTPFormat(t *testing.T) {
	f := newHTTPFixture(t)
	q := parser.Question{Text: "2+2؟", CorrectAnswer: "4", Options: []string{"3", "4"}}

	rec := f.do(t, http.MethodPost, "/v1/questions/format", map[string]interface{}{"question": q, "format": "pipe"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp formatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2+2؟ | 4 | 3, 4", resp.Output)

	rec = f.do(t, http.MethodPost, "/v1/questions/format", map[string]interface{}{"question": q, "format": "xml"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported_format")
}

func TestHTTPImportRequiresStaff(t *testing.T) {
	f := newHTTPFixture(t)
	body := ImportRequest{Inputs: []string{validPipe}}

	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodPost, "/v1/questions/import", body, "").Code)
	assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodPost, "/v1/questions/import", body, jwt.RoleStudent).Code)

	rec := f.do(t, http.MethodPost, "/v1/questions/import", body, jwt.RoleTeacher)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary ImportSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.Saved)

	rec = f.do(t, http.MethodGet, "/v1/questions/"+summary.Items[0].QuestionID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var q Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, "القاهرة", q.CorrectAnswer)
	assert.NotEmpty(t, q.CreatedBy)
}

func TestHTTPImportEmpty(t *testing.T) {
	f := newHTTPFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/questions/import", ImportRequest{Async: true}, jwt.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty_batch")
}

func TestHTTPImportAsync(t *testing.T) {
	f := newHTTPFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/questions/import", ImportRequest{Inputs: []string{validPipe}, Async: true}, jwt.RoleAdmin)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var accepted importAccepted
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accepted))
	assert.Equal(t, JobQueued, accepted.Status)

	rec = f.do(t, http.MethodGet, "/v1/questions/import/"+accepted.JobID, nil, jwt.RoleAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"queued"`)

	rec = f.do(t, http.MethodGet, "/v1/questions/import/"+uuid.NewString(), nil, jwt.RoleAdmin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPGetAndList(t *testing.T) {
	f := newHTTPFixture(t)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/v1/questions/nope", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/v1/questions/"+uuid.NewString(), nil, "").Code)

	f.do(t, http.MethodPost, "/v1/questions/import", ImportRequest{Inputs: []string{validPipe}}, jwt.RoleTeacher)

	rec := f.do(t, http.MethodGet, "/v1/questions?type=multiple_choice&limit=500", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Questions, 1)
	assert.EqualValues(t, 100, f.store.lastList.RowLimit)
	assert.Equal(t, "multiple_choice", f.store.lastList.Type)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/v1/questions?limit=-1", nil, "").Code)

	rec = f.do(t, http.MethodGet, "/v1/questions?offset=100000", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 100000, f.store.lastList.RowOffset)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/v1/questions?offset=4294967296", nil, "").Code)
}
