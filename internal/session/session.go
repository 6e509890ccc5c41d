// Package session carries the authenticated caller through a request as an
// explicit value rather than an ambient global.
package session

import "github.com/gofiber/fiber/v3"

// localsKey is the Locals slot the auth middleware writes to.
const localsKey = "session"

// Session identifies the authenticated caller of the current request.
// UserID is the identity provider's opaque user id.
type Session struct {
	UserID string
}

// Store attaches a session to the request. Called by the auth middleware only.
func Store(c fiber.Ctx, sess Session) {
	c.Locals(localsKey, sess)
}

// FromCtx returns the session for the request, if one was established.
func FromCtx(c fiber.Ctx) (Session, bool) {
	sess, ok := c.Locals(localsKey).(Session)
	return sess, ok
}
