package response

// Stable error envelope shared by handlers and the global error handler.
// error_code values are part of the API contract and must not change.
type ErrorBody struct {
	Status    string `json:"status"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
}

func Error(code, message string, details any) ErrorBody {
	return ErrorBody{
		Status:    "error",
		ErrorCode: code,
		Message:   message,
		Details:   details,
	}
}

// Error codes surfaced to the boundary layer.
const (
	CodeCareerNotFound       = "CAREER_NOT_FOUND"
	CodeCourseNotFound       = "COURSE_NOT_FOUND"
	CodeInvalidQuery         = "INVALID_QUERY"
	CodeIncompleteAssessment = "INCOMPLETE_ASSESSMENT"
	CodeServiceUnavailable   = "SERVICE_UNAVAILABLE"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInternal             = "INTERNAL_ERROR"
)
