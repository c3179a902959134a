package models

import (
	"errors"
	"fmt"
)

var ErrUnknownField = errors.New("unknown form field")

// Field identifies one of the inputs on the student form
type Field string

const (
	FieldID       Field = "id"
	FieldFullName Field = "fullName"
	FieldPhone    Field = "phone"
	FieldEmail    Field = "email"
)

// Fields lists the form inputs in display order
var Fields = []Field{FieldID, FieldFullName, FieldPhone, FieldEmail}

// ParseField maps a wire name to a Field. The legacy input names
// (msv, fullname, phonenumber) are accepted as aliases.
func ParseField(name string) (Field, error) {
	switch name {
	case "id", "msv":
		return FieldID, nil
	case "fullName", "fullname":
		return FieldFullName, nil
	case "phone", "phonenumber":
		return FieldPhone, nil
	case "email":
		return FieldEmail, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Record is a committed student entry
type Record struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// FormValues holds the raw input of the four fields
type FormValues struct {
	ID       string `json:"id" form:"id"`
	FullName string `json:"fullName" form:"fullName"`
	Phone    string `json:"phone" form:"phone"`
	Email    string `json:"email" form:"email"`
}

// Get returns the value of a single field
func (v FormValues) Get(f Field) string {
	switch f {
	case FieldID:
		return v.ID
	case FieldFullName:
		return v.FullName
	case FieldPhone:
		return v.Phone
	case FieldEmail:
		return v.Email
	}
	return ""
}

// Set overwrites the value of a single field
func (v *FormValues) Set(f Field, value string) {
	switch f {
	case FieldID:
		v.ID = value
	case FieldFullName:
		v.FullName = value
	case FieldPhone:
		v.Phone = value
	case FieldEmail:
		v.Email = value
	}
}

// Record converts the values into a storable record
func (v FormValues) Record() Record {
	return Record{ID: v.ID, FullName: v.FullName, Phone: v.Phone, Email: v.Email}
}

// FieldErrors has one error slot per field. An empty string means valid.
type FieldErrors struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (e FieldErrors) Get(f Field) string {
	switch f {
	case FieldID:
		return e.ID
	case FieldFullName:
		return e.FullName
	case FieldPhone:
		return e.Phone
	case FieldEmail:
		return e.Email
	}
	return ""
}

func (e *FieldErrors) Set(f Field, msg string) {
	switch f {
	case FieldID:
		e.ID = msg
	case FieldFullName:
		e.FullName = msg
	case FieldPhone:
		e.Phone = msg
	case FieldEmail:
		e.Email = msg
	}
}

// Any reports whether at least one field carries an error
func (e FieldErrors) Any() bool {
	return e.ID != "" || e.FullName != "" || e.Phone != "" || e.Email != ""
}

// FormDraft is the uncommitted state of the form
type FormDraft struct {
	Values FormValues  `json:"values"`
	Errors FieldErrors `json:"errors"`
}

// Reset clears both values and errors
func (d *FormDraft) Reset() {
	*d = FormDraft{}
}
