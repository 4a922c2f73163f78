// Package record validates and normalizes user-account records.
//
// Three record types extend each other: Identity (email plus
// normalized names), Account (adds password and age) and Admin (adds
// a role with a permission check). Every constructor and setter runs
// the same validation rules, so a record can never be observed in a
// partially valid state.
package record

import "strings"

// Identity is the base account record: an email address plus a first
// and last name stored in normalized form. The zero value is not a
// valid record; use NewIdentity.
type Identity struct {
	email     string
	firstName string
	lastName  string
}

// NewIdentity validates and normalizes the raw fields and returns the
// record, or a *ValidationError listing every violated constraint.
func NewIdentity(email, firstName, lastName string) (Identity, error) {
	id, errs := buildIdentity(email, firstName, lastName)
	if err := errs.err(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// buildIdentity is the single validate-and-build path shared by
// construction and by the extended record constructors.
func buildIdentity(email, firstName, lastName string) (Identity, fieldErrors) {
	var (
		id   Identity
		errs fieldErrors
	)

	email = strings.TrimSpace(email)
	if fe, bad := checkField(FieldEmail, emailRules, email); bad {
		errs = append(errs, fe)
	} else {
		id.email = email
	}

	if name, msg := normalizeName(firstName); msg != "" {
		errs = append(errs, valueErr(FieldFirstName, msg))
	} else {
		id.firstName = name
	}

	if name, msg := normalizeName(lastName); msg != "" {
		errs = append(errs, valueErr(FieldLastName, msg))
	} else {
		id.lastName = name
	}

	return id, errs
}

// Email returns the validated email address.
func (id *Identity) Email() string { return id.email }

// FirstName returns the normalized first name.
func (id *Identity) FirstName() string { return id.firstName }

// LastName returns the normalized last name.
func (id *Identity) LastName() string { return id.lastName }

// SetEmail replaces the email address, re-running the same validation
// used at construction. On failure the record is unchanged.
func (id *Identity) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if fe, bad := checkField(FieldEmail, emailRules, email); bad {
		return singleErr(fe)
	}
	id.email = email
	return nil
}

// SetFirstName replaces the first name, normalizing it the same way
// construction does. On failure the record is unchanged.
func (id *Identity) SetFirstName(name string) error {
	return setName(&id.firstName, FieldFirstName, name)
}

// SetLastName replaces the last name, normalizing it the same way
// construction does. On failure the record is unchanged.
func (id *Identity) SetLastName(name string) error {
	return setName(&id.lastName, FieldLastName, name)
}

func setName(dst *string, field, raw string) error {
	name, msg := normalizeName(raw)
	if msg != "" {
		return singleErr(valueErr(field, msg))
	}
	*dst = name
	return nil
}

// Set assigns a field by name. The value must have the field's Go
// type; a mismatched dynamic type yields a type-kind FieldError.
func (id *Identity) Set(field string, value any) error {
	switch field {
	case FieldEmail, FieldFirstName, FieldLastName:
		s, ok := value.(string)
		if !ok {
			return singleErr(typeErr(field, "must be a string"))
		}
		switch field {
		case FieldEmail:
			return id.SetEmail(s)
		case FieldFirstName:
			return id.SetFirstName(s)
		default:
			return id.SetLastName(s)
		}
	}
	return singleErr(valueErr(field, "unknown field"))
}
