package membership

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestIssueTokenRejectsSmallAmount(t *testing.T) {
	if _, err := IssueToken(1, MinimumAmount-1); !errors.Is(err, ErrAmountTooSmall) {
		t.Fatalf("expected ErrAmountTooSmall, got %v", err)
	}
}

func TestIssueTokenFormat(t *testing.T) {
	token, err := IssueToken(123, MinimumAmount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateToken(token); err != nil {
		t.Fatalf("issued token failed validation: %s", token)
	}
	if !strings.HasPrefix(token, "UPGRADE_123_") {
		t.Fatalf("token does not carry the user id: %s", token)
	}

	parts := strings.Split(token, "_")
	if len(parts) != 4 {
		t.Fatalf("expected 4 parts, got %d: %s", len(parts), token)
	}
	if len(parts[2]) != 10 {
		t.Fatalf("expected a 10 digit timestamp, got %q", parts[2])
	}
	if len(parts[3]) != 4 {
		t.Fatalf("expected a 4 digit suffix, got %q", parts[3])
	}
}

func TestValidateToken(t *testing.T) {
	ts := time.Now().Unix()

	valid := []string{
		fmt.Sprintf("UPGRADE_1_%d_1234", ts),
		fmt.Sprintf("UPGRADE_987654_%d_0001", ts),
	}
	for _, token := range valid {
		if err := ValidateToken(token); err != nil {
			t.Fatalf("expected %s to be valid, got %v", token, err)
		}
	}

	invalid := []string{
		"",
		"UPGRADE_1_123_1234",
		fmt.Sprintf("upgrade_1_%d_1234", ts),
		fmt.Sprintf("UPGRADE_x_%d_1234", ts),
		fmt.Sprintf("UPGRADE_1_%d_123", ts),
		fmt.Sprintf("UPGRADE_1_%d_12345", ts),
		fmt.Sprintf(" UPGRADE_1_%d_1234", ts),
	}
	for _, token := range invalid {
		if err := ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected %q to be invalid", token)
		}
	}
}

func TestTokenUserID(t *testing.T) {
	token, err := IssueToken(77, MinimumAmount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := TokenUserID(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 77 {
		t.Fatalf("expected user id 77, got %d", id)
	}

	if _, err := TokenUserID("UPGRADE_nope"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token")
	}
}
