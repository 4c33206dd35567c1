package repository

import "errors"

var ErrCacheMiss = errors.New("session cache miss")
