package adapter

import "errors"

var (
	ErrNotFound            = errors.New("todo not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected server response")
)
