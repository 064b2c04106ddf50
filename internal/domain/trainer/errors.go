package trainer

import "errors"

var (
	// banco relacional acessado antes de Init
	ErrNotInitialized = errors.New("database not initialized")

	ErrNotFound       = errors.New("record not found")
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidInput   = errors.New("invalid input")
)
