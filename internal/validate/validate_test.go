package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		want  string
	}{
		{"valid", "nurse1@hospital.org", ""},
		{"valid with plus", "nurse+oncall@ward.example.com", ""},
		{"empty", "", "Email is required"},
		{"whitespace only", "   ", "Email is required"},
		{"missing at", "nurse1.hospital.org", "Please enter a valid email"},
		{"missing dot after at", "nurse1@hospital", "Please enter a valid email"},
		{"bare domain", "@hospital.org", "Please enter a valid email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Email(tc.email)
			if tc.want == "" {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, tc.want, errs["email"])
			}
		})
	}
}

func TestRegisterPasswordRules(t *testing.T) {
	base := RegisterForm{Username: "nurse1", Email: "nurse1@hospital.org"}

	cases := []struct {
		name     string
		password string
		want     string
	}{
		{"empty", "", "Password is required"},
		{"too short", "Ab1", "Password must be at least 8 characters"},
		{"no uppercase", "secret123", "Password must contain an uppercase letter"},
		{"no digit", "Secretword", "Password must contain a number"},
		{"valid", "Secret123", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := base
			f.Password = tc.password
			errs := Register(f)
			if tc.want == "" {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, tc.want, errs["password"])
			}
		})
	}
}

func TestRegisterUsernameRules(t *testing.T) {
	base := RegisterForm{Email: "nurse1@hospital.org", Password: "Secret123"}

	cases := []struct {
		name     string
		username string
		want     string
	}{
		{"empty", "", "Username is required"},
		{"whitespace only", "  ", "Username is required"},
		{"too short", "ab", "Username must be at least 3 characters"},
		{"valid", "nurse1", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := base
			f.Username = tc.username
			errs := Register(f)
			if tc.want == "" {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, tc.want, errs["username"])
			}
		})
	}
}

func TestRegisterReportsAllInvalidFields(t *testing.T) {
	errs := Register(RegisterForm{})
	assert.Len(t, errs, 3)
	assert.Equal(t, "Username is required", errs["username"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])
}

func TestChangePassword(t *testing.T) {
	cases := []struct {
		name      string
		form      ChangePasswordForm
		wantField string
		wantMsg   string
	}{
		{
			name: "valid",
			form: ChangePasswordForm{Old: "Old12345", New: "Secret123", Confirm: "Secret123"},
		},
		{
			name:      "mismatch",
			form:      ChangePasswordForm{Old: "Old12345", New: "Secret123", Confirm: "Secret124"},
			wantField: "confirm",
			wantMsg:   "New passwords do not match",
		},
		{
			name:      "missing old",
			form:      ChangePasswordForm{New: "Secret123", Confirm: "Secret123"},
			wantField: "old_password",
			wantMsg:   "Old password is required",
		},
		{
			name:      "missing new",
			form:      ChangePasswordForm{Old: "Old12345", Confirm: "Secret123"},
			wantField: "new_password",
			wantMsg:   "New password is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ChangePassword(tc.form)
			if tc.wantField == "" {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, tc.wantMsg, errs[tc.wantField])
			}
		})
	}
}
