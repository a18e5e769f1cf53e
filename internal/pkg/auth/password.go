package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes credentials before they reach storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher is the bcrypt-backed PasswordHasher used in production.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the given cost, falling back to the
// bcrypt default when cost is not positive.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash encodes password with the configured cost.
func (h *BcryptHasher) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare reports whether password matches the stored hash.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
