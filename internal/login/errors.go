package login

import "errors"

var (
	ErrMissingField = errors.New("missing required field")
)
