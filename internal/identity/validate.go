package identity

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopmint/shopmint/internal/domain"
)

// RegisterInput represents a registration request payload. Fields are
// declared in validation order: the first failing field wins.
type RegisterInput struct {
	FirstName string      `json:"firstName" validate:"notblank"`
	LastName  string      `json:"lastName" validate:"notblank"`
	Email     string      `json:"email" validate:"email_shape"`
	Password  string      `json:"password" validate:"min=8"`
	Role      domain.Role `json:"role" validate:"oneof=seller customer"`
}

// LoginInput represents a login request payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// emailShapeRe matches a local@domain.tld shape: no whitespace or @ inside
// the local and domain parts, at least one dot in the domain.
var emailShapeRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var registerMessages = map[string]string{
	"FirstName": "Name is required",
	"LastName":  "Name is required",
	"Email":     "Invalid email format",
	"Password":  "Password must be at least 8 characters",
	"Role":      "Invalid role",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailShapeRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateRegister checks a registration payload and returns a
// *ValidationError with the message of the first failing check, or nil.
// It does not consult the user store; email uniqueness is enforced by the
// repository at creation time.
func ValidateRegister(in RegisterInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := registerMessages[verrs[0].StructField()]; ok {
			return &ValidationError{Message: msg}
		}
	}
	return &ValidationError{Message: "Invalid registration payload"}
}
