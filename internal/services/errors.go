package services

import "errors"

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrScriptNotFound    = errors.New("script not found")
	ErrResultNotFound    = errors.New("analysis result not found")
	ErrUnknownScriptType = errors.New("unsupported script type")
)
