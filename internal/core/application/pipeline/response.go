package pipeline

// Code classifies the outcome of a request so transports can map it to
// their own status vocabulary without parsing messages.
type Code int

const (
	// CodeOK indicates the request succeeded.
	CodeOK Code = iota

	// CodeValidationFailed indicates the request was rejected before the
	// handler ran, with one or more field-level messages.
	CodeValidationFailed

	// CodeNotFound indicates a referenced entity does not exist.
	CodeNotFound

	// CodeBadRequest indicates the domain rejected the request, for example
	// a disallowed status transition.
	CodeBadRequest

	// CodeUnavailable indicates the request was cancelled or timed out.
	CodeUnavailable

	// CodeInternal indicates a persistence or unexpected failure.
	CodeInternal
)

// Response is the uniform result envelope every use case returns.
// Callers branch on Success and Code; Errors carries field-level
// validation messages when Code is CodeValidationFailed.
type Response[T any] struct {
	Success bool     `json:"success"`
	Data    *T       `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`

	code Code
}

// OK builds a successful response carrying data and an optional message.
func OK[T any](data T, message string) Response[T] {
	return Response[T]{
		Success: true,
		Data:    &data,
		Message: message,
		code:    CodeOK,
	}
}

// Failure builds a failed response with a classification code and a
// user-facing message.
func Failure[T any](code Code, message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
		code:    code,
	}
}

// Code returns the outcome classification of the response.
func (r Response[T]) Code() Code {
	if r.Success {
		return CodeOK
	}
	return r.code
}
