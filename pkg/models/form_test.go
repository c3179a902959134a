package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	cases := map[string]Field{
		"id":          FieldID,
		"msv":         FieldID,
		"fullName":    FieldFullName,
		"fullname":    FieldFullName,
		"phone":       FieldPhone,
		"phonenumber": FieldPhone,
		"email":       FieldEmail,
	}
	for name, want := range cases {
		got, err := ParseField(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseField("address")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestFormValuesGetSet(t *testing.T) {
	var v FormValues
	for _, f := range Fields {
		v.Set(f, string(f)+"-value")
	}
	for _, f := range Fields {
		assert.Equal(t, string(f)+"-value", v.Get(f))
	}
	assert.Equal(t, Record{
		ID:       "id-value",
		FullName: "fullName-value",
		Phone:    "phone-value",
		Email:    "email-value",
	}, v.Record())
}

func TestFieldErrorsAny(t *testing.T) {
	var e FieldErrors
	assert.False(t, e.Any())

	e.Set(FieldPhone, "bad")
	assert.True(t, e.Any())
	assert.Equal(t, "bad", e.Get(FieldPhone))

	e.Set(FieldPhone, "")
	assert.False(t, e.Any())
}

func TestFormDraftReset(t *testing.T) {
	d := FormDraft{
		Values: FormValues{ID: "SV01", Email: "a@example.com"},
		Errors: FieldErrors{FullName: "required"},
	}
	d.Reset()
	assert.Equal(t, FormDraft{}, d)
}
