package entity

import "strings"

// AccountKind selects which credential-bearing table an email lookup targets.
type AccountKind string

const (
	AccountKindAdmin   AccountKind = "admin"
	AccountKindManager AccountKind = "manager"
)

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
