package middleware

import (
	"review-srv/pkg/jwt"
	"review-srv/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager jwt.IManager
}

// New - Factory. A nil jwtManager turns Auth into a pass-through.
func New(l log.Logger, jwtManager jwt.IManager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
