package scope

import "errors"

var ErrInvalidToken = errors.New("scope: invalid token")
