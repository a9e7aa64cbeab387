package authenticator

import (
	"context"
)

// Claims represents user claims from a verified token
type Claims map[string]interface{}

// Subject returns the "sub" claim
func (c Claims) Subject() string {
	sub, _ := c["sub"].(string)
	return sub
}

// Email returns the "email" claim
func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return email
}

// Verifier checks a raw bearer token and returns its claims
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (Claims, error)
}
