package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test struct for validation
type TestAccount struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     interface{}
		wantError bool
		checkErr  func(*testing.T, error)
	}{
		{
			name: "valid account",
			input: TestAccount{
				Name:     "Test User",
				Email:    "test@example.com",
				Password: "SecurePass123!",
			},
			wantError: false,
		},
		{
			name: "invalid email",
			input: TestAccount{
				Name:     "Test User",
				Email:    "invalid-email",
				Password: "SecurePass123!",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "email")
			},
		},
		{
			name: "missing required fields",
			input: TestAccount{
				Email: "test@example.com",
				// Missing other required fields
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "name")
				assert.Contains(t, validationErr.Errors, "password")
			},
		},
		{
			name: "password below minimum length",
			input: TestAccount{
				Name:     "Test User",
				Email:    "test@example.com",
				Password: "short",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "password")
				assert.Contains(t, validationErr.Errors["password"], "at least 8")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if tt.wantError {
				assert.Error(t, err)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ValidateVar(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		field     interface{}
		tag       string
		wantError bool
	}{
		{
			name:      "valid email",
			field:     "test@example.com",
			tag:       "required,email",
			wantError: false,
		},
		{
			name:      "invalid email",
			field:     "invalid-email",
			tag:       "required,email",
			wantError: true,
		},
		{
			name:      "empty required field",
			field:     "",
			tag:       "required",
			wantError: true,
		},
		{
			name:      "valid url",
			field:     "https://img.example.com/a.png",
			tag:       "required,url",
			wantError: false,
		},
		{
			name:      "invalid url",
			field:     "not-a-url",
			tag:       "required,url",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateVar(tt.field, tt.tag)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"valid email", "test@example.com", true},
		{"valid email with subdomain", "user@mail.example.com", true},
		{"invalid email - no @", "testexample.com", false},
		{"invalid email - no domain", "test@", false},
		{"empty email", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidEmail(tt.email)
			assert.Equal(t, tt.valid, result)
		})
	}
}

func TestValidationError(t *testing.T) {
	v := New()

	account := TestAccount{
		Email: "invalid-email",
		// Missing other required fields
	}

	err := v.Validate(account)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Test Error() method
	errorMsg := validationErr.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "email")

	// Test error structure
	assert.Contains(t, validationErr.Errors, "email")
	assert.Contains(t, validationErr.Errors, "name")
	assert.Contains(t, validationErr.Errors, "password")
}
