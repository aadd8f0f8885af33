// Package passwords implements the credential policy: validation of raw
// passwords at registration time and bcrypt hashing/verification.
package passwords

import (
	"errors"

	"github.com/dmitrijs2005/userbook/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the salt rounds used since the first revision of the
// registration flow.
const DefaultCost = 10

// Policy validates and hashes passwords. The zero value is not usable; use
// NewPolicy.
type Policy struct {
	cost int
}

func NewPolicy(cost int) *Policy {
	if cost == 0 {
		cost = DefaultCost
	}
	return &Policy{cost: cost}
}

// Validate reports whether the password satisfies the registration policy:
// at least six characters, with at least one ASCII digit and one ASCII
// letter. There are no other constraints.
func (p *Policy) Validate(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasDigit, hasLetter bool
	for _, c := range password {
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		}
	}
	return hasDigit && hasLetter
}

// Hash produces a salted one-way hash of the password. Each call generates a
// fresh salt, so hashing the same input twice yields different values.
func (p *Policy) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", common.NewHashingFailure(err)
	}
	return string(hash), nil
}

// Verify compares a candidate password against a stored hash. A mismatch is
// reported as (false, nil); only a malformed hash yields an error.
func (p *Policy) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, common.NewHashingFailure(err)
}
