package services

import "errors"

// ErrInvalidRequest marks failures caused by the caller's input rather than
// the backing store. Handlers map it to a 400.
var ErrInvalidRequest = errors.New("invalid request")
