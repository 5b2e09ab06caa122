package domain

import "strings"

// Session is the caller's authentication state. It is either anonymous or
// carries the opaque token returned by the marketplace login endpoint.
// The zero value is anonymous.
type Session struct {
	token string
}

// Anonymous returns a session without a token.
func Anonymous() Session {
	return Session{}
}

// Authenticated returns a session holding token. An empty token yields an
// anonymous session.
func Authenticated(token string) Session {
	return Session{token: token}
}

// Token returns the token and whether one is present.
func (s Session) Token() (string, bool) {
	return s.token, s.token != ""
}

// IsAuthenticated reports whether the session carries a token.
func (s Session) IsAuthenticated() bool {
	return s.token != ""
}

// Bearer returns the Authorization header value for the session. Anonymous
// sessions still produce the scheme with an empty credential.
func (s Session) Bearer() string {
	return strings.TrimSpace("Bearer " + s.token)
}
