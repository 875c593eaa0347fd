// Package validator adapts go-playground/validator to Echo's
// Validator interface and registers the platform's custom rules.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Accepts the punctuated and the bare CNPJ form alike.
var cnpjPattern = regexp.MustCompile(`^\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}$`)

// Validator wraps a go-playground validator for Echo.
type Validator struct {
	validate *validator.Validate
}

// New builds the request validator with the custom rules registered.
func New() *Validator {
	validate := validator.New()

	// identifier mirrors entity.ParseIdentifier, so a payload that
	// passes binding cannot fail identifier parsing later with a
	// different message.
	_ = validate.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseIdentifier(fl.Field().String())

		return err == nil
	})

	_ = validate.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return cnpjPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator. Failures surface as
// ErrValidationFailed carrying the offending field paths, so the error
// handler renders the stable envelope instead of raw validator output.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, fmt.Sprintf("%s: failed on the '%s' rule", fieldErr.Field(), fieldErr.Tag()))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}
