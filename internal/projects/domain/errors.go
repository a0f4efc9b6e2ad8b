package domain

import "errors"

var (
	ErrNotFound        = errors.New("project not found")
	ErrTitleTooShort   = errors.New("title must be at least 3 characters")
	ErrRepoURLTooShort = errors.New("repository URL must be at least 10 characters")
)
