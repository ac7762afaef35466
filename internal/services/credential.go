package services

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier abstracts how passwords are stored and checked, so
// the sign-in control flow does not change when the scheme does.
type CredentialVerifier interface {
	// Store returns the representation persisted at sign-up.
	Store(plain string) (string, error)
	// Verify reports whether the supplied password matches the stored one.
	Verify(stored, supplied string) bool
}

// PlaintextVerifier compares passwords by string equality. This is the
// default scheme: it matches the legacy behavior of storing passwords
// verbatim and looking users up by exact (email, password) match.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Store(plain string) (string, error) { return plain, nil }

func (PlaintextVerifier) Verify(stored, supplied string) bool { return stored == supplied }

// BcryptVerifier hashes passwords with bcrypt. Enabled with
// PASSWORD_SCHEME=bcrypt.
type BcryptVerifier struct{}

func (BcryptVerifier) Store(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
