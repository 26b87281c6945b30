package auth

import "context"

// Service authenticates staff accounts.
type Service interface {
	// Login verifies the credentials against the staff store and returns a
	// signed JWT whose subject is the staff id. The token expires after the
	// configured TTL.
	Login(ctx context.Context, email, password string) (string, error)
}
