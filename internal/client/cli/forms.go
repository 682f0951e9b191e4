package cli

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var errInvalidForm = errors.New("invalid form")

type loginForm struct {
	Email    string `label:"Email" validate:"required,email"`
	Password []byte `label:"Password" validate:"min=1"`
}

type registerForm struct {
	Username string `label:"Username" validate:"required"`
	Email    string `label:"Email" validate:"required,email"`
	Password []byte `label:"Password" validate:"min=6"`
}

type editForm struct {
	Username string `label:"Username" validate:"required,max=64"`
}

type deleteForm struct {
	Password []byte `label:"Password" validate:"min=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
		return f.Name
	})
	return v
}

// validateForm returns one human-readable message per failed field, in
// field order. A nil result means the form is valid.
func validateForm(form any) []string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" "+validationMessage(fe))
	}
	return msgs
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Param() == "1" {
			return "is required"
		}
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// checkForm prints the validation messages for form, if any, and reports
// whether it is valid.
func (a *App) checkForm(form any) error {
	msgs := validateForm(form)
	for _, m := range msgs {
		a.println(m)
	}
	if len(msgs) > 0 {
		return errInvalidForm
	}
	return nil
}
