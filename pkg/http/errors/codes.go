package errors

// Error codes for standardized error responses
const (
	// Authentication errors
	ErrCodeUnauthorized           = "unauthorized"
	ErrCodeForbidden              = "forbidden"
	ErrCodeInvalidToken           = "invalid_token"
	ErrCodeTokenExpired           = "token_expired"
	ErrCodeAuthenticationRequired = "authentication_required"

	// Request errors
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeMissingField   = "missing_field"
	ErrCodeInputTooLarge  = "input_too_large"

	// Question errors
	ErrCodeInvalidQuestionID = "invalid_question_id"
	ErrCodeQuestionNotFound  = "question_not_found"
	ErrCodeUnsupportedFormat = "unsupported_format"
	ErrCodeEmptyBatch        = "empty_batch"
	ErrCodeBatchTooLarge     = "batch_too_large"
	ErrCodeImportFailed      = "import_failed"
	ErrCodeJobNotFound       = "import_job_not_found"
	ErrCodeQueueFull         = "import_queue_full"

	// WebSocket errors
	ErrCodeInvalidPayload     = "invalid_payload"
	ErrCodeUnknownMessageType = "unknown_message_type"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)
