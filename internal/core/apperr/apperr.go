package apperr

import "errors"

// خطاهای پایه دامنه؛ کنترلرها با errors.Is به status code نگاشت می‌کنند
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)
