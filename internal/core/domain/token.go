package domain

import "errors"

// Token validation failure kinds. Callers pattern-match with errors.Is;
// none of these messages are ever sent to the client verbatim.
var (
	ErrTokenMalformed   = errors.New("token malformed")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalidated = errors.New("token invalidated")
	ErrTokenInvalid     = errors.New("token invalid")
)
