package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class on the wire.
type ErrorCode string

// AppError is the application error carried from services to handlers.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap keeps the underlying cause for logging while exposing only
// code and message to the client.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Contraseña incorrecta", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Autenticación requerida", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Acceso denegado", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Token inválido o expirado", http.StatusUnauthorized)

	// Users
	ErrUserNotFound       = New(CodeUserNotFound, "Usuario no encontrado", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "El correo ya está registrado", http.StatusConflict)
	ErrInvalidEmail       = New(CodeInvalidEmail, "Correo inválido", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeWeakPassword, "La contraseña debe tener al menos 6 caracteres", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Rol de usuario inválido", http.StatusBadRequest)

	// Catalog
	ErrSectionNotFound = New(CodeSectionNotFound, "Sección no encontrada", http.StatusNotFound)
	ErrItemNotFound    = New(CodeItemNotFound, "Elemento no encontrado", http.StatusNotFound)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Datos inválidos", http.StatusBadRequest)
)

// Helpers

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Error interno del servidor", http.StatusInternalServerError)
}

func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "Error interno del servidor", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
