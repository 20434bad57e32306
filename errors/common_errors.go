// errors/common_errors.go
package errors

import "errors"

var (
	ErrDatabaseOperation     = errors.New("database operation failed")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")
	ErrInvalidQueryCondition = errors.New("invalid query condition")
	ErrCacheOperation        = errors.New("cache operation failed")
	ErrVoConversion          = errors.New("view object conversion failed")
)
