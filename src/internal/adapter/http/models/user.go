package models

import (
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// FieldErrors runs the collect-all signup validator and returns a
// field-keyed message map, empty when the payload is valid.
func (r SignupRequest) FieldErrors() (validation.Signup, map[string]string) {
	normalized, errs := validation.ValidateSignup(validation.SignupInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
	})
	if len(errs) == 0 {
		return normalized, nil
	}

	fields := make(map[string]string, len(errs))
	for field, err := range errs {
		fields[field] = err.Message
	}
	return validation.Signup{}, fields
}

type SignupResponse struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
