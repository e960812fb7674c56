package handlers

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// mainland mobile numbers
	phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)
	// 18 character resident identity numbers, last char may be X
	idNumberPattern = regexp.MustCompile(`^\d{17}[\dXx]$`)
)

// RegisterValidators adds the custom binding tags used by request DTOs.
// It must run before any request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("phone", matches(phonePattern)); err != nil {
		return err
	}
	return v.RegisterValidation("idnumber", matches(idNumberPattern))
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}
