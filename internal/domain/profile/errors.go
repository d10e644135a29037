package profile

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidProfile  = errors.New("invalid role profile")
	ErrLoadProfile     = errors.New("load role profiles failed")
	ErrUnknownRole     = errors.New("unknown role")
	ErrUnknownLanguage = errors.New("unknown language")
)
