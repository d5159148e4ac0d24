package service

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-garden-keeper/internal/config"
)

// PlainCredentials stores the password verbatim and compares it verbatim.
// It is the default so existing directories keep working unchanged.
type PlainCredentials struct {
}

func (PlainCredentials) Seal(password string) (string, error) {
	return password, nil
}

func (PlainCredentials) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptCredentials stores a bcrypt hash of the password. bcrypt only reads
// the first 72 bytes, longer passwords are refused with ErrPasswordTooLong.
type BcryptCredentials struct {
	Cost int
}

func (b BcryptCredentials) Seal(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrPasswordTooLong, err)
	}
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func (BcryptCredentials) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// NewCredentialVerifier returns the verifier registered under scheme.
func NewCredentialVerifier(scheme string) (CredentialVerifier, error) {
	switch scheme {
	case "", config.CredentialsPlain:
		return PlainCredentials{}, nil
	case config.CredentialsBcrypt:
		return BcryptCredentials{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCredentialScheme, scheme)
	}
}
