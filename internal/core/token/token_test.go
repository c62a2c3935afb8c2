package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	raw, err := issuer.Issue("acc_1", "alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.AccountID != "acc_1" {
		t.Fatalf("unexpected account id: %s", claims.AccountID)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
}

func TestIssuer_Verify_Expired(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	// Well-signed but already expired.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "acc_1",
		"username": "alice",
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	raw, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := issuer.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	other := NewIssuer("other-secret", time.Hour)

	raw, err := other.Issue("acc_1", "alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := issuer.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Verify_WrongAlgorithm(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":      "acc_1",
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	raw, err := hs512.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := issuer.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Verify_Malformed(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := issuer.Verify(raw); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestIssuer_Verify_MissingIdentityClaims(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	// Signed correctly but without a subject.
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := anonymous.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := issuer.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
