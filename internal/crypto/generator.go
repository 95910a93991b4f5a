package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	numberChars = "0123456789"
	tokenChars  = "abcdefghijklmnopqrstuvwxyz0123456789"

	// OTPLength is the number of digits in an emailed verification code.
	OTPLength = 4

	// TodoIDLength is the number of characters in a generated task id.
	TodoIDLength = 15
)

var ErrInvalidLength = errors.New("length must be positive")

// NumericCode generates a cryptographically secure numeric code of the given
// length. Leading zeros are allowed, so the result is always exactly length
// digits.
func NumericCode(length int) (string, error) {
	return randString(numberChars, length)
}

// TokenID generates a random lowercase alphanumeric identifier, used for
// task ids. Identifiers only need to be unique within one user's list, so
// 15 characters of [a-z0-9] leaves collisions out of practical reach.
func TokenID(length int) (string, error) {
	return randString(tokenChars, length)
}

func randString(charset string, length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	result := make([]byte, length)
	for i := range result {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
