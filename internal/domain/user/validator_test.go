package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceValidator_ValidateRegister(t *testing.T) {
	validator := NewPresenceValidator()

	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		wantErr     bool
		expectedErr string
	}{
		{
			name:     "all fields present",
			username: "reader",
			email:    "reader@example.com",
			password: "secret",
			wantErr:  false,
		},
		{
			name:        "empty username",
			username:    "",
			email:       "reader@example.com",
			password:    "secret",
			wantErr:     true,
			expectedErr: "username is required",
		},
		{
			name:        "whitespace username",
			username:    "   ",
			email:       "reader@example.com",
			password:    "secret",
			wantErr:     true,
			expectedErr: "username is required",
		},
		{
			name:        "empty email",
			username:    "reader",
			email:       "",
			password:    "secret",
			wantErr:     true,
			expectedErr: "email is required",
		},
		{
			name:        "empty password",
			username:    "reader",
			email:       "reader@example.com",
			password:    "",
			wantErr:     true,
			expectedErr: "password is required",
		},
		{
			// формат не проверяется
			name:     "email without at sign",
			username: "reader",
			email:    "not-an-email",
			password: "x",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateRegister(tt.username, tt.email, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPresenceValidator_ValidateLogin(t *testing.T) {
	validator := NewPresenceValidator()

	assert.NoError(t, validator.ValidateLogin("reader@example.com", "secret"))
	assert.EqualError(t, validator.ValidateLogin("", "secret"), "email is required")
	assert.EqualError(t, validator.ValidateLogin("reader@example.com", ""), "password is required")
}
