package calendar

import "errors"

var (
	ErrMissingQuery = errors.New("query is required")
)
