package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/marketplace/internal/domain"
)

const sessionKey = "marketplace.session"

// SessionLoader reads the caller's session from a request.
type SessionLoader interface {
	Load(c echo.Context) domain.Session
}

// Session resolves the caller's session once per request and stores it on
// the echo context. It never rejects a request: pages decide for themselves
// what an anonymous caller sees.
func Session(loader SessionLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(sessionKey, loader.Load(c))
			return next(c)
		}
	}
}

// SessionFrom returns the session stored by Session, or an anonymous one.
func SessionFrom(c echo.Context) domain.Session {
	if s, ok := c.Get(sessionKey).(domain.Session); ok {
		return s
	}
	return domain.Anonymous()
}
