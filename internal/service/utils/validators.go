package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/anonbb/anonbb/internal/domain"
	internal_errors "github.com/anonbb/anonbb/internal/errors"
)

// BoardNameValidator restricts board names to a charset that is safe to use
// as part of a SQL identifier. Quoting alone is not enough of a reason to let
// arbitrary bytes into table names.
type BoardNameValidator struct {
	validate *validator.Validate
}

func NewBoardNameValidator() *BoardNameValidator {
	return &BoardNameValidator{validate: validator.New()}
}

func (v *BoardNameValidator) Validate(name domain.BoardName) error {
	if err := v.validate.Var(name, "required,alphanum,lowercase,max=32"); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "invalid board", StatusCode: http.StatusBadRequest}
	}
	return nil
}
