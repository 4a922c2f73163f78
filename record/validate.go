package record

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Field names as they appear in validation errors and in dynamic
// assignment via Set.
const (
	FieldEmail     = "email"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPassword  = "password"
	FieldAge       = "age"
	FieldRole      = "role"
)

// PasswordSpecials is the fixed set of characters that satisfy the
// password special-character rule.
const PasswordSpecials = "!@#$%^&*"

// Per-field rule strings. Assignment runs the same rule used at
// construction, so a record can never hold a value these would reject.
const (
	emailRules    = "required,email,dotdomain"
	passwordRules = "min=8,pwdigit,pwspecial"
	ageRules      = "gte=18"
	roleRules     = "oneof=admin superadmin"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("dotdomain", hasDotDomain)
	must("pwdigit", hasDigit)
	must("pwspecial", hasSpecial)
	return v
}

// hasDotDomain requires a non-empty local part and a domain containing
// at least one interior dot. The email tag alone admits dotless domains.
func hasDotDomain(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return false
	}
	domain := addr[at+1:]
	return strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") &&
		!strings.HasSuffix(domain, ".")
}

func hasDigit(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hasSpecial(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if strings.ContainsRune(PasswordSpecials, r) {
			return true
		}
	}
	return false
}

// checkField runs a rule string against a single value and translates
// the first failing tag into a FieldError. Tags are evaluated in
// declared order, so the first violated rule is the one reported.
func checkField(field, rules string, value any) (FieldError, bool) {
	err := validate.Var(value, rules)
	if err == nil {
		return FieldError{}, false
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return valueErr(field, err.Error()), true
	}
	return valueErr(field, messageFor(field, verrs[0])), true
}

func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email", "dotdomain":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "pwdigit":
		return "must contain at least one digit"
	case "pwspecial":
		return "must contain at least one special character from " + PasswordSpecials
	case "gte":
		if field == FieldAge {
			return "below minimum age of " + fe.Param()
		}
		return "must be at least " + fe.Param()
	case "oneof":
		return `must be one of "admin" or "superadmin"`
	}
	return "is invalid"
}
