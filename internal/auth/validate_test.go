package auth

import "testing"

func TestSignupInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   SignupInput
		wantErr bool
	}{
		{
			name:    "valid",
			input:   SignupInput{FullName: "Rohan Bhat", Email: "rohan@example.com", Mobile: "9876543210", Password: "secret1"},
			wantErr: false,
		},
		{
			name:    "missing name",
			input:   SignupInput{FullName: "  ", Email: "rohan@example.com", Mobile: "9876543210", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "email without at sign",
			input:   SignupInput{FullName: "Rohan Bhat", Email: "rohan.example.com", Mobile: "9876543210", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "short mobile",
			input:   SignupInput{FullName: "Rohan Bhat", Email: "rohan@example.com", Mobile: "98765", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "short password",
			input:   SignupInput{FullName: "Rohan Bhat", Email: "rohan@example.com", Mobile: "9876543210", Password: "abc"},
			wantErr: true,
		},
		{
			name:    "password padded with spaces",
			input:   SignupInput{FullName: "Rohan Bhat", Email: "rohan@example.com", Mobile: "9876543210", Password: "  abc  "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	if err := ValidateLogin("devotee@example.com", "secret1"); err != nil {
		t.Errorf("ValidateLogin(valid) error = %v", err)
	}
	if err := ValidateLogin("no-at-sign", "secret1"); err == nil {
		t.Error("ValidateLogin accepted malformed email")
	}
	if err := ValidateLogin("devotee@example.com", "ab"); err == nil {
		t.Error("ValidateLogin accepted short password")
	}
}
