package models

import (
	"github.com/gookit/validate"
)

// Profile is the locally stored user record. One record occupies the shared
// "profile" metadata slot; readers must check Username against the active
// user before trusting the other fields.
type Profile struct {
	Username string `json:"username" validate:"required"`
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"email"`
	Age      string `json:"age" validate:"int"`
	Phone    string `json:"phone"`
}

// Validate applies the struct rules. Optional fields are only checked when
// non-empty.
func (p Profile) Validate() error {
	v := validate.Struct(p)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	return nil
}

// NewProfile returns an empty profile owned by the given user.
func NewProfile(username string) Profile {
	return Profile{Username: username}
}
