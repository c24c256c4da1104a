package validators

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	tagNotBlank   = "notblank"
	tagPersonName = "personname"
)

func registerTags(v *validator.Validate) {
	_ = v.RegisterValidation(tagNotBlank, nonstandard.NotBlank)
	_ = v.RegisterValidation(tagPersonName, isPersonName)
}

// isPersonName accepts letters separated by spaces, with at least one letter.
func isPersonName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) && r != ' ' {
			return false
		}
	}
	return true
}
