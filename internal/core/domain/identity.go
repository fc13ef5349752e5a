package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Staff role values as they appear in the role claim.
const (
	RoleManager = "manager"
	RoleChef    = "chef"
	RoleWaiter  = "waiter"
)

// Identity is the read-only projection of a decoded credential. It exists
// if and only if the persisted token decoded successfully; it is never
// partially populated.
type Identity struct {
	Claims jwt.MapClaims
}

func (i *Identity) claimString(key string) string {
	s, _ := i.Claims[key].(string)
	return s
}

// Subject returns the "sub" claim, or the empty string when absent.
func (i *Identity) Subject() string { return i.claimString("sub") }

// Username returns the "username" claim, or the empty string when absent.
func (i *Identity) Username() string { return i.claimString("username") }

// Role returns the "role" claim, or the empty string when absent.
func (i *Identity) Role() string { return i.claimString("role") }

// ExpiresAt returns the "exp" claim as a time, or the zero time when the
// claim is absent or malformed. Expiry is reported, never enforced.
func (i *Identity) ExpiresAt() time.Time {
	exp, err := i.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
