package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     LoginRequest
		wantErr error
	}{
		{
			name: "valid credentials",
			req:  LoginRequest{Email: "a@x.com", Password: "secret1"},
		},
		{
			name:    "missing email",
			req:     LoginRequest{Password: "secret1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "malformed email",
			req:     LoginRequest{Email: "not-an-email", Password: "secret1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing password",
			req:     LoginRequest{Email: "a@x.com"},
			wantErr: ErrInvalidPassword,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{
			name: "valid registration",
			req:  RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "secret1"},
		},
		{
			name:    "missing name",
			req:     RegisterRequest{Email: "a@x.com", Password: "secret1"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "short password",
			req:     RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "abc"},
			wantErr: ErrInvalidPassword,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
