package validators

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// +, digits, at least 10 characters after stripping separators
var phoneRegexp = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

func IsPhoneValid(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneRegexp.MatchString(cleaned)
}

// Register installs the "phone" rule on gin's binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return IsPhoneValid(fl.Field().String())
		})
	}
}
