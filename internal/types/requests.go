package types

import (
	"github.com/go-playground/validator/v10"
)

// ExtractRequest represents the request body for POST /extract when the
// résumé text is submitted as JSON rather than multipart.
type ExtractRequest struct {
	Text       string `json:"text" validate:"required,min=1"`
	SourceFile string `json:"source_file,omitempty"`
	Section    string `json:"section,omitempty" validate:"omitempty,oneof=education experience skills languages"`
	Save       bool   `json:"save,omitempty"`
	Enrich     bool   `json:"enrich,omitempty"`
}

// TokenRequest represents the operator credential exchanged for a JWT.
type TokenRequest struct {
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate checks the profile's numeric invariants (confidence and level
// ranges) via struct tags before it is persisted or returned.
func (p *CompetencyProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
