package payload

import "errors"

var (
	ErrInvalidJSON = errors.New("payload: invalid json")
	ErrTooDeep     = errors.New("payload: nesting too deep")
)
