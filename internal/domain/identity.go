package domain

import (
	"regexp"
	"strings"
)

// emailShape is the permissive address check used at signup and login:
// something before one "@", and a dot somewhere in the domain part.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DeriveIdentityKey maps a raw email address to its Account Directory key:
// the email lowercased, with the first "." replaced by ",".
//
// Only the first dot is substituted. That is how every existing key in the
// database was derived, so multi-dot addresses keep their remaining dots and
// the substitution can land in the domain part ("a@b.c.d.com" ->
// "a@b,c.d.com"). Changing this to a
// full replace would orphan existing records; treat any such change as a
// data migration, not a cleanup.
func DeriveIdentityKey(email string) IdentityKey {
	return IdentityKey(strings.Replace(strings.ToLower(email), ".", ",", 1))
}

// ValidEmailShape reports whether the address passes the basic
// local@domain.tld check. It is deliberately loose; anything stricter would
// reject addresses that already have accounts.
func ValidEmailShape(email string) bool {
	return emailShape.MatchString(email)
}
