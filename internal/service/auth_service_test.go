package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simoamogit/student-tracker/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testAuthService() *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  24 * time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testAuthService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Subject != userID.String() {
		t.Errorf("Subject = %s, want %s", claims.Subject, userID)
	}
}

func TestTokenExpiry(t *testing.T) {
	svc := testAuthService()
	issuedAt := time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC)

	svc.now = func() time.Time { return issuedAt }
	token, err := svc.GenerateToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Still valid just before expiry.
	svc.now = func() time.Time { return issuedAt.Add(24*time.Hour - time.Minute) }
	if _, err := svc.ValidateToken(token); err != nil {
		t.Errorf("token should still be valid before expiry: %v", err)
	}

	// Fails strictly after.
	svc.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Minute) }
	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestTokenTampering(t *testing.T) {
	svc := testAuthService()

	token, err := svc.GenerateToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Run("BadSignature", func(t *testing.T) {
		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
		if _, err := svc.ValidateToken(tampered); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("err = %v, want ErrTokenInvalid", err)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("err = %v, want ErrTokenInvalid", err)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})
		if _, err := other.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("err = %v, want ErrTokenInvalid", err)
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	svc := testAuthService()

	hash, err := svc.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("password stored in plaintext")
	}

	if err := svc.CheckPassword(hash, "correct horse"); err != nil {
		t.Errorf("CheckPassword with right password: %v", err)
	}
	if err := svc.CheckPassword(hash, "battery staple"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}
