package jsonbin

import "errors"

var (
	// ErrUnauthorized единственный различаемый отказ: ключ невалиден,
	// повторы бессмысленны.
	ErrUnauthorized = errors.New("blob store rejected api key")
	ErrUnavailable  = errors.New("blob store unavailable")
)
