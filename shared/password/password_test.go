package password_test

import (
	"errors"
	"strings"
	"testing"

	"condovia/shared/password"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{"valid password", "validPassword123", nil},
		{"empty password", "", password.ErrEmptyPassword},
		{"short password", "abc", nil},
		{"password over bcrypt limit", strings.Repeat("a", 100), password.ErrHashingPassword},
		{"special characters", "P@ssw0rd!#$%^&*()", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				if hash != "" {
					t.Errorf("expected empty hash on error, got %s", hash)
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if hash == "" {
				t.Fatal("expected non-empty hash")
			}

			if err := password.Verify(tt.password, hash); err != nil {
				t.Errorf("expected hash to verify its own password, got %v", err)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	validHash, err := password.Hash("testPassword123")
	if err != nil {
		t.Fatalf("failed to create test hash: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectedErr error
	}{
		{"correct password", "testPassword123", validHash, nil},
		{"wrong password", "wrongPassword", validHash, password.ErrInvalidPassword},
		{"empty password", "", validHash, password.ErrInvalidPassword},
		{"malformed hash", "testPassword123", "invalid_hash", password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				return
			}

			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestHashUsesRandomSalt(t *testing.T) {
	first, err := password.Hash("samePassword")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	second, err := password.Hash("samePassword")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	if first == second {
		t.Error("expected distinct hashes for the same password")
	}

	if err := password.Verify("samePassword", first); err != nil {
		t.Errorf("first hash failed to verify: %v", err)
	}
	if err := password.Verify("samePassword", second); err != nil {
		t.Errorf("second hash failed to verify: %v", err)
	}
}
