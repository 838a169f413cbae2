package services

import "errors"

// ErrInvalidArgument marks requests the service refuses before touching storage.
var ErrInvalidArgument = errors.New("invalid argument")
