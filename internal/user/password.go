package user

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// PasswordPolicy decides whether a plaintext password is acceptable.
type PasswordPolicy struct {
	MinLength int
	// MaxAccountSimilarity rejects passwords whose Jaro-Winkler similarity to
	// the account name is at or above this value. Zero disables the check.
	MaxAccountSimilarity float64
}

// Check returns a *ValidationError when password violates the policy.
func (p PasswordPolicy) Check(account, password string) error {
	pw := normalizePassword(password)
	if pw == "" {
		return &ValidationError{Field: "password", Reason: "required"}
	}
	if utf8.RuneCountInString(pw) < p.MinLength {
		return &ValidationError{Field: "password", Reason: fmt.Sprintf("weak password: must be at least %d characters", p.MinLength)}
	}
	if len(pw) > maxPasswordBytes {
		return &ValidationError{Field: "password", Reason: fmt.Sprintf("must be at most %d bytes", maxPasswordBytes)}
	}
	if p.MaxAccountSimilarity > 0 && account != "" {
		score := float64(edlib.JaroWinklerSimilarity(strings.ToLower(account), strings.ToLower(pw)))
		if score >= p.MaxAccountSimilarity {
			return &ValidationError{Field: "password", Reason: "weak password: too similar to account"}
		}
	}
	return nil
}

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

// BcryptHasher hashes passwords with bcrypt.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a hasher using cost, or bcrypt.DefaultCost when
// cost is out of range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(normalizePassword(password)), h.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (h *BcryptHasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(normalizePassword(password))) == nil
}

// normalizePassword maps equivalent Unicode spellings to one form so the same
// typed password always hashes the same way.
func normalizePassword(s string) string {
	return norm.NFKC.String(s)
}
