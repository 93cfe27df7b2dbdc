package domain

import "errors"

var (
	ErrEmptyTopic = errors.New("topic cannot be empty")
)
