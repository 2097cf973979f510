package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooLong  = errors.New("password exceeds 72 bytes")
)

const (
	DefaultCost = bcrypt.DefaultCost
	// bcrypt ignores everything past this many bytes
	MaxLength = 72
)

func HashPassword(plain string) (string, error) {
	return HashPasswordWithCost(plain, DefaultCost)
}

// HashPasswordWithCost clamps cost into bcrypt's accepted range.
func HashPasswordWithCost(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	if len(plain) > MaxLength {
		return "", ErrPasswordTooLong
	}
	cost = max(bcrypt.MinCost, min(cost, bcrypt.MaxCost))

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrComparisonFailed only for a well-formed hash
// that does not match; a corrupt stored hash surfaces bcrypt's own error.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return err
	}
}

// Cost reports the work factor a stored hash was produced with.
func Cost(hashed string) (int, error) {
	return bcrypt.Cost([]byte(hashed))
}
