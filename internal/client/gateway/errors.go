package gateway

import "errors"

var (
	ErrUnavailable  = errors.New("gateway unavailable")
	ErrUnauthorized = errors.New("gateway rejected credentials")
	ErrBadResponse  = errors.New("gateway returned an unexpected response")
)
