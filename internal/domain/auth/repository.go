package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// CredentialRepository binds opaque secret keys to employee identifiers.
// Secrets are stored as SHA-256 digests; the lookup key is the digest of the
// presented secret.
type CredentialRepository interface {
	// Resolve returns the employee id bound to a secret digest, or
	// ErrInvalidSecretKey when the digest is unknown.
	Resolve(ctx context.Context, secretDigest string) (string, error)

	Store(ctx context.Context, employeeID string, secretDigest string) error
	DeleteByEmployee(ctx context.Context, employeeID string) error
}

// DigestSecret hashes a raw secret key into its stored lookup form.
func DigestSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
