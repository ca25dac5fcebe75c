package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get user record")
	ErrFailedToUpsert = errors.New("failed to upsert user record")
)
