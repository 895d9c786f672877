package dto

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// taxIDPattern accepts a CPF either as 11 bare digits or in the dotted
// 000.000.000-00 notation.
var taxIDPattern = regexp.MustCompile(`^(\d{11}|\d{3}\.\d{3}\.\d{3}-\d{2})$`)

// RegisterCustomValidations installs the extra binding rules on gin's
// validator engine. Must run before the first request is bound.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation("taxid", func(fl validator.FieldLevel) bool {
		return taxIDPattern.MatchString(fl.Field().String())
	})
}
