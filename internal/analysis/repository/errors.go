package repository

import "errors"

var (
	ErrAnalysisNotFound     = errors.New("repository: analysis not found")
	ErrAnalysisCreateFailed = errors.New("repository: failed to create analysis")
	ErrAnalysisDeleteFailed = errors.New("repository: failed to delete analysis")
	ErrCacheMiss            = errors.New("repository: cache miss")
)
