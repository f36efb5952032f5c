package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"user.name+tag@example.co.uk", true},
		{"UPPER@EXAMPLE.COM", true},
		{"", false},
		{"plainaddress", false},
		{"@no-local.com", false},
		{"no-domain@", false},
		{"no-tld@example", false},
		{"spaces in@local.com", false},
		{"user@dom ain.com", false},
		{"double@@example.com", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all four classes", "Abcdef1!", true},
		{"symbol from middle of set", "Passw0rd;", true},
		{"backslash counts as symbol", `Passw0rd\`, true},
		{"too short", "Ab1!xyz", false},
		{"no uppercase", "abcdef1!", false},
		{"no lowercase", "ABCDEF1!", false},
		{"no digit", "Abcdefg!", false},
		{"no symbol", "Abcdefg1", false},
		{"empty", "", false},
		{"long but letters only", "Abcdefghij", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestIsValidEgyptianPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"01112345678", true}, // 11 digits, starts 01
		{"01012345678", true},
		{"+201112345678", true}, // international form
		{"0111234567", false},   // 10 digits
		{"011123456789", false}, // 12 digits
		{"02112345678", false},  // wrong prefix
		{"+211112345678", false},
		{"+20112345678", false}, // international form one digit short
		{"01a12345678", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidEgyptianPhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestValidateLoginInput(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "a@b.com", "longenough", nil},
		{"missing email", "", "longenough", ErrFieldsRequired},
		{"missing password", "a@b.com", "", ErrFieldsRequired},
		{"bad email", "not-an-email", "longenough", ErrInvalidEmail},
		{"short password", "a@b.com", "short", ErrShortPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLoginInput(tt.email, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateLoginInput_ShortPasswordMessage(t *testing.T) {
	err := ValidateLoginInput("a@b.com", "short")
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters.", err.Error())
}

func TestValidateRegistrationInput(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		phone    string
		wantErr  error
	}{
		{"valid", "Alice", "alice@example.com", "Str0ng!pass", "01112345678", nil},
		{"missing name", "", "alice@example.com", "Str0ng!pass", "01112345678", ErrFieldsRequired},
		{"bad email", "Alice", "alice@", "Str0ng!pass", "01112345678", ErrInvalidEmail},
		{"weak password", "Alice", "alice@example.com", "weakpassword", "01112345678", ErrWeakPassword},
		{"short phone", "Alice", "alice@example.com", "Str0ng!pass", "0111234567", ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistrationInput(tt.userName, tt.email, tt.password, tt.phone)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrShortPassword))
	assert.True(t, IsValidationError(ErrInvalidPhone))
	assert.False(t, IsValidationError(assert.AnError))
	assert.False(t, IsValidationError(nil))
}
