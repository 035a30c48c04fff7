package core

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("duplicate")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("conflict")
	ErrInvalidRequest     = errors.New("invalid request")
)

// AppError carries a user-facing message and the HTTP status it maps to.
type AppError struct {
	Message string
	Code    int
	kind    error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.kind
}

// NewNotFoundError builds a 404 error
func NewNotFoundError(msg string) *AppError {
	return &AppError{Message: msg, Code: 404, kind: ErrNotFound}
}

// NewDuplicateError builds an error for a unique-key clash. Most resources
// answer 400; berita, pengumuman and agenda answer 409.
func NewDuplicateError(msg string, code int) *AppError {
	return &AppError{Message: msg, Code: code, kind: ErrDuplicate}
}

// NewBadRequestError builds a 400 error
func NewBadRequestError(msg string) *AppError {
	return &AppError{Message: msg, Code: 400, kind: ErrInvalidRequest}
}

// NewForbiddenError builds a 403 error
func NewForbiddenError(msg string) *AppError {
	return &AppError{Message: msg, Code: 403, kind: ErrForbidden}
}

// NewInvalidCredentialsError builds a 401 error
func NewInvalidCredentialsError(msg string) *AppError {
	return &AppError{Message: msg, Code: 401, kind: ErrInvalidCredentials}
}

// NewConflictError builds a 409 error
func NewConflictError(msg string) *AppError {
	return &AppError{Message: msg, Code: 409, kind: ErrConflict}
}

// FieldError is one failed input rule.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// ValidationErrors is returned when request input fails validation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return v[0].Field + ": " + v[0].Msg
}

func (v ValidationErrors) Unwrap() error {
	return ErrInvalidRequest
}

// Invalid builds a single-field validation error.
func Invalid(field, msg string) ValidationErrors {
	return ValidationErrors{{Field: field, Msg: msg}}
}
