package service

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// PasswordMinLength matches the ASP.NET Identity default policy.
const PasswordMinLength = 6

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// reasonsFor converts a validator error into user-facing sentences, in
// field order.
func reasonsFor(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, describeField(fe))
	}
	return out
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		return fmt.Sprintf("Email '%v' is invalid.", fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}

// passwordReasons applies the length, digit, lower, upper and symbol rules
// and returns one sentence per failed rule.
func passwordReasons(pw string) []string {
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range pw {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}

	var out []string
	if len([]rune(pw)) < PasswordMinLength {
		out = append(out, fmt.Sprintf("Passwords must be at least %d characters.", PasswordMinLength))
	}
	if !hasSymbol {
		out = append(out, "Passwords must have at least one non alphanumeric character.")
	}
	if !hasDigit {
		out = append(out, "Passwords must have at least one digit ('0'-'9').")
	}
	if !hasLower {
		out = append(out, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !hasUpper {
		out = append(out, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	return out
}
