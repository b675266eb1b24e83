package secretserver

import "errors"

var ErrPasswordNotFound = errors.New("password not found in secret response")
