// Package validate holds the pre-flight form validation rules. They
// are pure functions from form state to a field→message map and never
// consult the network or the session.
package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern accepts anything shaped local@domain.tld. Deliberately
// loose: the server is the authority, this only catches obvious typos
// before a round-trip.
var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("hasupper", func(fl validator.FieldLevel) bool {
		return upperPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("hasdigit", func(fl validator.FieldLevel) bool {
		return digitPattern.MatchString(fl.Field().String())
	})

	return v
}

// messages maps field name + failed rule to the inline error shown next
// to that field.
var messages = map[string]string{
	"username.required":     "Username is required",
	"username.min":          "Username must be at least 3 characters",
	"email.required":        "Email is required",
	"email.simpleemail":     "Please enter a valid email",
	"password.required":     "Password is required",
	"password.min":          "Password must be at least 8 characters",
	"password.hasupper":     "Password must contain an uppercase letter",
	"password.hasdigit":     "Password must contain a number",
	"old_password.required": "Old password is required",
	"new_password.required": "New password is required",
	"confirm.required":      "Please confirm your new password",
	"confirm.eqfield":       "New passwords do not match",
}

// RegisterForm is the registration screen's draft state.
type RegisterForm struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,simpleemail"`
	Password string `json:"password" validate:"required,min=8,hasupper,hasdigit"`
}

// ChangePasswordForm is the change-password screen's draft state.
type ChangePasswordForm struct {
	Old     string `json:"old_password" validate:"required"`
	New     string `json:"new_password" validate:"required"`
	Confirm string `json:"confirm" validate:"required,eqfield=New"`
}

// Register validates a registration form. The returned map is empty
// when the form may be submitted.
func Register(f RegisterForm) map[string]string {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	return check(f)
}

// ChangePassword validates a change-password form.
func ChangePassword(f ChangePasswordForm) map[string]string {
	return check(f)
}

// Email validates a lone email field (forgot-password screen).
func Email(email string) map[string]string {
	f := struct {
		Email string `json:"email" validate:"required,simpleemail"`
	}{Email: strings.TrimSpace(email)}
	return check(f)
}

func check(form any) map[string]string {
	errs := map[string]string{}
	err := v.Struct(form)
	if err == nil {
		return errs
	}

	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			errs[field] = msg
		} else {
			errs[field] = "Invalid value"
		}
	}
	return errs
}
