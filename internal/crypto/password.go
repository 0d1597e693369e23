// Package crypto provides one-way hashing and verification of the moderation
// passwords set at thread/reply creation time. Possession of the password is
// the only thing ever checked; there is no identity attached to it.
package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordGuard is accepted by the services so tests can substitute a fake.
type PasswordGuard interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// BcryptGuard hashes with a per-call random salt and verifies with a
// comparison whose timing does not depend on where a mismatch occurs.
type BcryptGuard struct {
	cost int
}

func NewBcryptGuard() *BcryptGuard {
	return &BcryptGuard{cost: bcrypt.DefaultCost}
}

// NewBcryptGuardWithCost exists for tests; bcrypt.MinCost keeps them fast.
func NewBcryptGuardWithCost(cost int) *BcryptGuard {
	return &BcryptGuard{cost: cost}
}

func (g *BcryptGuard) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), g.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (g *BcryptGuard) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
