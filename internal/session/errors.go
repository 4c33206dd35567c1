package session

import "errors"

var ErrTokenRequired = errors.New("session: token is required")
