package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nafes-platform/question-service/internal/auth"
	"github.com/nafes-platform/question-service/internal/logging"
	"github.com/nafes-platform/question-service/internal/question/parser"
	httperrors "github.com/nafes-platform/question-service/pkg/http/errors"
)

const (
	maxBodyBytes  = 1 << 20
	maxListLimit  = 100
	maxListOffset = 100000
)

// HTTPHandler exposes the question service over REST.
type HTTPHandler struct {
	svc    *Service
	worker *ImportWorker
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, worker *ImportWorker, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, worker: worker, logger: logger}
}

// Routes registers the question endpoints. Import endpoints require a staff
// token.
func (h *HTTPHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/questions/parse", h.Parse)
	mux.HandleFunc("POST /v1/questions/format", h.Format)
	mux.Handle("POST /v1/questions/import", auth.RequireStaff(http.HandlerFunc(h.Import)))
	mux.Handle("GET /v1/questions/import/{jobID}", auth.RequireStaff(http.HandlerFunc(h.ImportStatus)))
	mux.HandleFunc("GET /v1/questions/{id}", h.Get)
	mux.HandleFunc("GET /v1/questions", h.List)
}

type parseRequest struct {
	Input string `json:"input"`
}

type formatRequest struct {
	Question parser.Question `json:"question"`
	Format   string          `json:"format"`
}

type formatResponse struct {
	Format string `json:"format"`
	Output string `json:"output"`
}

type importAccepted struct {
	JobID  string    `json:"job_id"`
	Status JobStatus `json:"status"`
}

type listResponse struct {
	Questions []Question `json:"questions"`
}

// Parse handles POST /v1/questions/parse.
func (h *HTTPHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.svc.Preview(r.Context(), req.Input)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, res)
}

// Format handles POST /v1/questions/format.
func (h *HTTPHandler) Format(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Format == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "format is required", "format")
		return
	}

	out, err := h.svc.Render(req.Question, req.Format)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, formatResponse{Format: req.Format, Output: out})
}

// Import handles POST /v1/questions/import.
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		id := claims.UserID
		req.CreatedBy = &id
	}

	if len(req.Inputs) == 0 && strings.TrimSpace(req.Text) == "" {
		h.respondServiceError(w, r, ErrEmptyBatch)
		return
	}

	if req.Async {
		if h.worker == nil {
			httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeServiceUnavailable, "Async import is not enabled")
			return
		}
		job, err := h.worker.Enqueue(r.Context(), req)
		if err != nil {
			h.respondServiceError(w, r, err)
			return
		}
		h.logger.Info().Str("job_id", job.ID).Int("inputs", len(req.Inputs)).Msg("import job queued")
		httperrors.RespondJSON(w, http.StatusAccepted, importAccepted{JobID: job.ID, Status: job.Status})
		return
	}

	summary, err := h.svc.Import(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, summary)
}

// ImportStatus handles GET /v1/questions/import/{jobID}.
func (h *HTTPHandler) ImportStatus(w http.ResponseWriter, r *http.Request) {
	if h.worker == nil {
		httperrors.RespondNotFound(w, httperrors.ErrCodeJobNotFound, "Import job not found")
		return
	}
	job, err := h.worker.Job(r.Context(), r.PathValue("jobID"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, job)
}

// Get handles GET /v1/questions/{id}.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, q)
}

// List handles GET /v1/questions.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := ListFilter{}

	if v := query.Get("type"); v != "" {
		filter.Type = parser.ParseQuestionType(v)
	}
	if v := query.Get("subject"); v != "" {
		filter.Subject = parser.ParseSubject(v)
	}
	if v := query.Get("grade"); v != "" {
		filter.Grade = parser.ParseGrade(v)
	}
	for key, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := query.Get(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidRequest, key+" must be a non-negative integer", key)
			return
		}
		*dst = n
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset > maxListOffset {
		httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidRequest, "offset must be at most "+strconv.Itoa(maxListOffset), "offset")
		return
	}

	qs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, listResponse{Questions: qs})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperrors.RespondTooLarge(w, "Request body too large")
			return false
		}
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON body")
		return false
	}
	return true
}

func (h *HTTPHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInputTooLarge):
		httperrors.RespondTooLarge(w, "Question input too large")
	case errors.Is(err, parser.ErrUnsupportedFormat):
		httperrors.RespondValidationError(w, httperrors.ErrCodeUnsupportedFormat, "Unsupported output format", "format")
	case errors.Is(err, ErrEmptyBatch):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeEmptyBatch, "No questions to import")
	case errors.Is(err, ErrBatchTooLarge):
		httperrors.RespondError(w, http.StatusRequestEntityTooLarge, httperrors.ErrCodeBatchTooLarge, err.Error())
	case errors.Is(err, ErrInvalidID):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidQuestionID, "Invalid question id")
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeQuestionNotFound, "Question not found")
	case errors.Is(err, ErrJobNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeJobNotFound, "Import job not found")
	case errors.Is(err, ErrQueueFull):
		httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeQueueFull, "Import queue is full, retry later")
	default:
		logger := logging.FromContext(r.Context())
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("question request failed")
		httperrors.RespondInternalError(w, "Internal server error")
	}
}
