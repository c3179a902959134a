package validation

import (
	"regexp"
	"strings"

	"student-form/pkg/models"
)

const (
	upperVN = "A-ZÀÁẠẢÃÂẦẤẬẨẪĂẰẮẶẲẴÈÉẸẺẼÊỀẾỆỂỄÌÍỊỈĨÒÓỌỎÕÔỒỐỘỔỖƠỜỚỢỞỠÙÚỤỦŨƯỪỨỰỬỮỲÝỴỶỸĐ"
	lowerVN = "a-zàáạảãâầấậẩẫăằắặẳẵèéẹẻẽêềếệểễìíịỉĩòóọỏõôồốộổỗơờớợởỡùúụủũưừứựửữỳýỵỷỹđ"
)

// Field patterns, also emitted as the pattern attribute of each input.
// A literal "-" inside a class is escaped because browsers compile the
// attribute with the v flag.
const (
	IDPattern       = `^[a-zA-Z0-9]{1,10}$`
	FullNamePattern = `^[` + upperVN + `][` + lowerVN + `]*(?:[ ][` + upperVN + `][` + lowerVN + `]*)*$`
	PhonePattern    = `^(03|05|07|08|09|01[2689])[0-9]{8}$`
	EmailPattern    = `^[\w.\-]+@([\w\-]+\.)+[\w\-]{2,4}$`
)

// User-facing messages
const (
	MsgRequired        = "Vui lòng nhập thông tin"
	MsgInvalidID       = "Mã sinh viên không hợp lệ, vui lòng thử lại!"
	MsgInvalidFullName = "Họ và tên không hợp lệ, vui lòng thử lại!"
	MsgInvalidPhone    = "Giá trị Phone không hợp lệ, vui lòng thử lại!"
	MsgInvalidEmail    = "Giá trị email không hợp lệ, vui lòng thử lại!"
)

type rule struct {
	pattern  *regexp.Regexp
	invalid  string
	optional bool
}

var rules = map[models.Field]rule{
	models.FieldID:       {pattern: regexp.MustCompile(IDPattern), invalid: MsgInvalidID},
	models.FieldFullName: {pattern: regexp.MustCompile(FullNamePattern), invalid: MsgInvalidFullName},
	// phone is only checked when something was typed
	models.FieldPhone: {pattern: regexp.MustCompile(PhonePattern), invalid: MsgInvalidPhone, optional: true},
	models.FieldEmail: {pattern: regexp.MustCompile(EmailPattern), invalid: MsgInvalidEmail},
}

// Pattern returns the raw pattern for a field, or "" if it has none
func Pattern(f models.Field) string {
	r, ok := rules[f]
	if !ok || r.pattern == nil {
		return ""
	}
	return r.pattern.String()
}

// Required reports whether a blank value is rejected for the field
func Required(f models.Field) bool {
	r, ok := rules[f]
	return ok && !r.optional
}

// ValidateField returns the error message for a single field value, or ""
// when the value is acceptable.
func ValidateField(f models.Field, value string) string {
	r := rules[f]
	if strings.TrimSpace(value) == "" {
		if r.optional {
			return ""
		}
		return MsgRequired
	}
	if r.pattern == nil || r.pattern.MatchString(value) {
		return ""
	}
	return r.invalid
}

// ValidateDraft runs ValidateField over every field
func ValidateDraft(v models.FormValues) models.FieldErrors {
	var errs models.FieldErrors
	for _, f := range models.Fields {
		errs.Set(f, ValidateField(f, v.Get(f)))
	}
	return errs
}
