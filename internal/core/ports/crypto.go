package ports

import "time"

// PasswordHasher defines the contract for one-way password hashing. The hash
// output is self-describing (algorithm, cost, salt), so Verify needs no
// parameters beyond the hash itself.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A malformed hash yields
	// false, never an error.
	Verify(password, hash string) bool
}

// TokenIssuer mints and validates stateless bearer tokens.
type TokenIssuer interface {
	// Issue creates a signed token for subject, expiring after ttl.
	Issue(subject string, ttl time.Duration) (string, error)
	// Verify validates the signature before trusting any claim and returns the
	// token's subject. Errors: domain.ErrTokenExpired past the expiry,
	// domain.ErrTokenInvalid for anything malformed or tampered.
	Verify(token string) (string, error)
}
