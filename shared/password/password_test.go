package password_test

import (
	"errors"
	"strings"
	"testing"

	"cleanmatch/shared/password"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "valid password",
			password:    "validPassword123",
			expectError: false,
		},
		{
			name:        "empty password",
			password:    "",
			expectError: true,
		},
		{
			name:        "password with special characters",
			password:    "P@ssw0rd!#$%^&*()",
			expectError: false,
		},
		{
			name:        "too long for bcrypt",
			password:    strings.Repeat("a", 100),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if hash == "" || hash == tt.password {
				t.Errorf("expected a non-empty hash distinct from the password, got %q", hash)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct-horse")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		expected error
	}{
		{
			name:     "matching password",
			password: "correct-horse",
			hash:     hash,
			expected: nil,
		},
		{
			name:     "wrong password",
			password: "battery-staple",
			hash:     hash,
			expected: password.ErrInvalidPassword,
		},
		{
			name:     "empty password",
			password: "",
			hash:     hash,
			expected: password.ErrInvalidPassword,
		},
		{
			name:     "empty hash",
			password: "correct-horse",
			hash:     "",
			expected: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expected == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}
