// Package membership implements the simulated payment flow behind the
// premium upgrade. Tokens are structural: they are never persisted, and a
// well-formed token is accepted regardless of who redeems it. A real
// payment gateway can replace this package without touching callers.
package membership

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MinimumAmount is the smallest accepted payment amount.
const MinimumAmount = 50000

// tokenPattern pins the literal upgrade token format:
// UPGRADE_{userId}_{unixTimestampSeconds}_{4digitRandom}
var tokenPattern = regexp.MustCompile(`^UPGRADE_\d+_\d{10}_\d{4}$`)

var (
	ErrAmountTooSmall = errors.New("jumlah pembayaran minimal 50000")
	ErrInvalidToken   = errors.New("token upgrade tidak valid")
)

// IssueToken simulates a successful payment transaction and returns the
// upgrade token for the paying user.
func IssueToken(userID uint, amount int64) (string, error) {
	if amount < MinimumAmount {
		return "", ErrAmountTooSmall
	}

	token := fmt.Sprintf("UPGRADE_%d_%d_%04d", userID, time.Now().Unix(), rand.Intn(9000)+1000)
	return token, nil
}

// ValidateToken checks the structural validity of an upgrade token.
func ValidateToken(token string) error {
	if !tokenPattern.MatchString(token) {
		return ErrInvalidToken
	}
	return nil
}

// TokenUserID extracts the issuing user id from a well-formed token.
// Callers must not rely on it matching the redeeming user; the scheme is
// deliberately unbound.
func TokenUserID(token string) (uint, error) {
	if err := ValidateToken(token); err != nil {
		return 0, err
	}
	parts := strings.Split(token, "_")
	id, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
