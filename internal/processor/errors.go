package processor

import "errors"

// Every error returned by Process wraps exactly one of these.
var (
	ErrConfig   = errors.New("configuration error")
	ErrInput    = errors.New("input error")
	ErrProvider = errors.New("provider error")
	ErrCache    = errors.New("cache error")
)
