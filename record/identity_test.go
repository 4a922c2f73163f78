package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity_NormalizesNames(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "cyrillic lower", input: "петя", expected: "Петя"},
		{name: "cyrillic already normalized", input: "Петя", expected: "Петя"},
		{name: "cyrillic with whitespace", input: "  петя  ", expected: "Петя"},
		{name: "cyrillic mixed case", input: "ВаСЯ", expected: "Вася"},
		{name: "latin lower", input: "john", expected: "John"},
		{name: "latin upper", input: "JOHN", expected: "John"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewIdentity("a@b.com", tt.input, "иванов")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id.FirstName())
			assert.Equal(t, "Иванов", id.LastName())
		})
	}
}

func TestNewIdentity_InvalidEmail(t *testing.T) {
	tests := []string{"not-an-email", "a@b", "a@b.", "@domain.com", "user@", ""}

	for _, email := range tests {
		t.Run("email "+email, func(t *testing.T) {
			_, err := NewIdentity(email, "Петя", "Иванов")
			require.Error(t, err)

			ve, ok := AsValidationError(err)
			require.True(t, ok)
			assert.True(t, ve.Has(FieldEmail))
		})
	}
}

func TestNewIdentity_EmptyNames(t *testing.T) {
	for _, empty := range []string{"", "   "} {
		_, err := NewIdentity("a@b.com", empty, "Иванов")
		require.Error(t, err)
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.True(t, ve.Has(FieldFirstName))

		_, err = NewIdentity("a@b.com", "Петя", empty)
		require.Error(t, err)
		ve, ok = AsValidationError(err)
		require.True(t, ok)
		assert.True(t, ve.Has(FieldLastName))
	}
}

func TestNewIdentity_AggregatesAllFailures(t *testing.T) {
	_, err := NewIdentity("not-an-email", " ", "")
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 3)
	assert.True(t, ve.Has(FieldEmail))
	assert.True(t, ve.Has(FieldFirstName))
	assert.True(t, ve.Has(FieldLastName))
}

func TestIdentity_AssignmentValidatesAndNormalizes(t *testing.T) {
	id, err := NewIdentity("a@b.com", "петя", "иванов")
	require.NoError(t, err)
	assert.Equal(t, "Петя", id.FirstName())

	require.NoError(t, id.SetFirstName("вася"))
	assert.Equal(t, "Вася", id.FirstName())

	err = id.SetLastName("   ")
	require.Error(t, err)
	assert.Equal(t, "Иванов", id.LastName())

	err = id.SetEmail("broken@")
	require.Error(t, err)
	assert.Equal(t, "a@b.com", id.Email())
}

func TestIdentity_DynamicSet(t *testing.T) {
	id, err := NewIdentity("a@b.com", "Петя", "Иванов")
	require.NoError(t, err)

	require.NoError(t, id.Set(FieldFirstName, "ваСЯ"))
	assert.Equal(t, "Вася", id.FirstName())

	err = id.Set(FieldFirstName, 42)
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, KindType, ve.Fields[0].Kind)
	assert.Equal(t, "Вася", id.FirstName())

	err = id.Set("nickname", "anything")
	require.Error(t, err)
}

func TestNormalizeName_Idempotent(t *testing.T) {
	// Includes runes whose case mappings expand ("ß") or have a
	// distinct titlecase form ("ǆ"), which stay stable only under
	// titlecasing of the first rune.
	inputs := []string{"петя", "  ВаСЯ  ", "JOHN", "o'neill", "Ω", "ßtraße", "ǆungla"}

	for _, in := range inputs {
		once, msg := normalizeName(in)
		require.Empty(t, msg)
		twice, msg := normalizeName(once)
		require.Empty(t, msg)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalizeName_ExpandingCaseRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "sharp s titlecases to Ss", input: "ßtraße", expected: "Sstraße"},
		{name: "dz digraph titlecases", input: "ǆungla", expected: "ǅungla"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := normalizeName(tt.input)
			require.Empty(t, msg)
			assert.Equal(t, tt.expected, got)
		})
	}
}
