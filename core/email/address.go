package email

import "github.com/go-playground/validator/v10"

// AddressValidator checks the shape of a single email address.
type AddressValidator interface {
	Validate(address string) bool
}

// AddressValidatorFunc adapts a plain function to AddressValidator.
type AddressValidatorFunc func(address string) bool

func (f AddressValidatorFunc) Validate(address string) bool { return f(address) }

type tagValidator struct {
	validate *validator.Validate
}

// NewAddressValidator returns a validator backed by the "email" rule of
// go-playground/validator. It is safe for concurrent use.
func NewAddressValidator() AddressValidator {
	return &tagValidator{validate: validator.New()}
}

func (v *tagValidator) Validate(address string) bool {
	return v.validate.Var(address, "required,email") == nil
}
