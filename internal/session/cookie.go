package session

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/marketplace/internal/domain"
)

const (
	// CookieName is the session holding the marketplace token.
	CookieName = "auth-session"
	tokenKey   = "token"
)

// Cookie keeps the marketplace token in a signed session cookie. It relies on
// the echo-contrib session middleware being installed.
type Cookie struct{}

// NewCookie creates a Cookie token store.
func NewCookie() *Cookie {
	return &Cookie{}
}

// Load reads the session for the current request. A missing or unreadable
// cookie yields an anonymous session.
func (s *Cookie) Load(c echo.Context) domain.Session {
	sess, err := session.Get(CookieName, c)
	if err != nil {
		return domain.Anonymous()
	}
	token, _ := sess.Values[tokenKey].(string)
	return domain.Authenticated(token)
}

// Save writes token to the session cookie.
func (s *Cookie) Save(c echo.Context, token string) error {
	sess, err := session.Get(CookieName, c)
	if err != nil {
		return fmt.Errorf("failed to get auth session: %w", err)
	}
	sess.Values[tokenKey] = token
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}
