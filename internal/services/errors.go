// internal/services/errors.go
package services

import "errors"

// Standard service layer errors. Handlers map these onto HTTP status codes
// with errors.Is; the storage layer's sentinels never cross the service
// boundary.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrForbidden          = errors.New("operation forbidden")
	ErrConflict           = errors.New("resource conflict")
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
