package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("test-secret")

	tok, err := svc.Issue("64f1c0ffee0000000000abcd", "a@x.com", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "64f1c0ffee0000000000abcd" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q", claims.Role)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 59*time.Minute || remaining > time.Hour {
		t.Errorf("vida del token = %v, se esperaba ~1h", remaining)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := NewService("secret-a").Issue("id", "a@x.com", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewService("secret-b").Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, se esperaba ErrInvalidToken", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("test-secret")

	claims := &Claims{
		UserID: "id",
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := svc.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, se esperaba ErrInvalidToken", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewService("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) err = %v, se esperaba ErrInvalidToken", tok, err)
		}
	}
}

func TestVerifyWrongSigningMethod(t *testing.T) {
	svc := NewService("test-secret")

	// alg "none" no debe pasar el chequeo de método HMAC
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "id",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := svc.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, se esperaba ErrInvalidToken", err)
	}
}
