package ports

import "context"

// CredentialStore owns the single durable slot holding the raw bearer
// token. Writes survive process restart. No validation happens here.
type CredentialStore interface {
	// Save overwrites the stored token.
	Save(ctx context.Context, token string) error
	// Read returns the stored token, or domain.ErrNoCredential when the
	// slot is empty.
	Read(ctx context.Context) (string, error)
	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
