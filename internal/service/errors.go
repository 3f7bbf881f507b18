package service

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrMirrorDisabled = errors.New("user mirror disabled")
)
