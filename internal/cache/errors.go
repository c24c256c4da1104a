package cache

import "errors"

var (
	ErrConnectingCache = errors.New("error connecting cache")
	ErrReadingCache    = errors.New("error reading cache")
	ErrWritingCache    = errors.New("error writing cache")
)
