package lib

import (
	"math"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/theleywin/Backend-Dev-Match/src/models"
)

var validate = validator.New()

// IsEmail reports whether value is a well-formed email address.
func IsEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

// IsURL reports whether value is a well-formed URL.
func IsURL(value string) bool {
	return validate.Var(value, "required,url") == nil
}

// ValidateSignUp checks the signup payload: names present and 4-30 characters,
// email well-formed, password strong enough. Optional fields are checked only
// when set.
func ValidateSignUp(u *models.User, password string) error {
	if u.FirstName == "" || u.LastName == "" {
		return ValidationError("Enter a firstName and lastName")
	}
	if !nameLengthOK(u.FirstName) || !nameLengthOK(u.LastName) {
		return ValidationError("Names must be between 4 and 30 characters")
	}
	if !IsEmail(u.Email) {
		return ValidationError("Not a valid email")
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return err
	}
	if u.Gender != "" && !u.Gender.IsValid() {
		return ValidationError("Invalid gender")
	}
	if u.PhotoUrl != "" && !IsURL(u.PhotoUrl) {
		return ValidationError("Invalid photo URL")
	}
	return nil
}

// nameLengthOK counts characters, not bytes, so accented names are measured
// the way users see them.
func nameLengthOK(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 4 && n <= 30
}

// allowedEditFields is the allow-list for profile edits. A patch containing
// any other key is rejected as a whole.
var allowedEditFields = map[string]bool{
	"firstName": true,
	"lastName":  true,
	"photoUrl":  true,
	"age":       true,
	"gender":    true,
	"about":     true,
	"skills":    true,
}

// ValidateEditPatch checks that every key of the patch is editable and that
// every value carries the type the user document stores for that field. The
// patch is $set verbatim, so a wrong-typed value that slipped through would
// persist a document that no longer decodes into models.User.
func ValidateEditPatch(patch map[string]interface{}) error {
	for field, value := range patch {
		if !allowedEditFields[field] {
			return ValidationError("Invalid Edit Request")
		}
		if err := validateEditValue(field, value); err != nil {
			return err
		}
	}
	return nil
}

func validateEditValue(field string, value interface{}) error {
	switch field {
	case "firstName", "lastName":
		v, ok := value.(string)
		if !ok || !nameLengthOK(v) {
			return ValidationError("Invalid value for " + field)
		}
	case "about":
		if _, ok := value.(string); !ok {
			return ValidationError("Invalid value for " + field)
		}
	case "age":
		// JSON numbers arrive as float64; the document stores an integer
		v, ok := value.(float64)
		if !ok || v != math.Trunc(v) || v < 0 {
			return ValidationError("Invalid value for " + field)
		}
	case "gender":
		v, ok := value.(string)
		if !ok || !models.Gender(v).IsValid() {
			return ValidationError("Invalid value for " + field)
		}
	case "photoUrl":
		v, ok := value.(string)
		if !ok || (v != "" && !IsURL(v)) {
			return ValidationError("Invalid value for " + field)
		}
	case "skills":
		items, ok := value.([]interface{})
		if !ok {
			return ValidationError("Invalid value for " + field)
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return ValidationError("Invalid value for " + field)
			}
		}
	}
	return nil
}
