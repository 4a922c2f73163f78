package record

import "strings"

// Account extends Identity with a credential and an age. All Identity
// rules continue to apply to the inherited fields.
type Account struct {
	Identity

	password string
	age      int
}

// NewAccount validates all five fields and returns the record, or a
// *ValidationError listing every violated constraint.
func NewAccount(email, firstName, lastName, password string, age int) (Account, error) {
	a, errs := buildAccount(email, firstName, lastName, password, age)
	if err := errs.err(); err != nil {
		return Account{}, err
	}
	return a, nil
}

// NewAccountFrom extends an already validated Identity with credential
// fields. Identity fields are passed back through the same validation
// path, which is idempotent for values NewIdentity produced.
func NewAccountFrom(id Identity, password string, age int) (Account, error) {
	return NewAccount(id.email, id.firstName, id.lastName, password, age)
}

func buildAccount(email, firstName, lastName, password string, age int) (Account, fieldErrors) {
	id, errs := buildIdentity(email, firstName, lastName)
	a := Account{Identity: id}

	// Whitespace is trimmed like every string field; beyond that the
	// password is stored exactly as given.
	password = strings.TrimSpace(password)
	if fe, bad := checkField(FieldPassword, passwordRules, password); bad {
		errs = append(errs, fe)
	} else {
		a.password = password
	}

	if fe, bad := checkField(FieldAge, ageRules, age); bad {
		errs = append(errs, fe)
	} else {
		a.age = age
	}

	return a, errs
}

// Password returns the stored password.
func (a *Account) Password() string { return a.password }

// Age returns the account holder's age.
func (a *Account) Age() int { return a.age }

// SetPassword replaces the password, re-running the strength rules.
// On failure the record is unchanged.
func (a *Account) SetPassword(password string) error {
	password = strings.TrimSpace(password)
	if fe, bad := checkField(FieldPassword, passwordRules, password); bad {
		return singleErr(fe)
	}
	a.password = password
	return nil
}

// SetAge replaces the age, re-running the minimum-age rule. On failure
// the record is unchanged.
func (a *Account) SetAge(age int) error {
	if fe, bad := checkField(FieldAge, ageRules, age); bad {
		return singleErr(fe)
	}
	a.age = age
	return nil
}

// Set assigns a field by name, covering the Identity fields as well.
func (a *Account) Set(field string, value any) error {
	switch field {
	case FieldPassword:
		s, ok := value.(string)
		if !ok {
			return singleErr(typeErr(field, "must be a string"))
		}
		return a.SetPassword(s)
	case FieldAge:
		n, ok := value.(int)
		if !ok {
			return singleErr(typeErr(field, "must be an integer"))
		}
		return a.SetAge(n)
	}
	return a.Identity.Set(field, value)
}
