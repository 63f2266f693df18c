package domain

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupportedType = errors.New("unsupported export format")
)
