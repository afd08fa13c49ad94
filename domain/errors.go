package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrUnsupportedChain  = errors.New("unsupported chain")
	// ErrUpstream wraps failures of third party providers
	ErrUpstream = errors.New("upstream error")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidTokenId = errors.New("invalid token id")
)
