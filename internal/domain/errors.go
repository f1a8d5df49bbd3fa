package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrIllegalMutation = errors.New("illegal mutation")
)
