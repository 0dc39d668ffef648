package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/campusmatch/backend/errs"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeAndValidate reads the request body into dst and runs struct
// validation. Returns an ApiErr ready for the responder on failure.
func decodeAndValidate(r *http.Request, dst any) *errs.ApiErr {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}

	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(dst); err != nil {
		return errs.NewBadRequestError("malformed request body")
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			first := validationErrs[0]
			return errs.NewValidationError(first.Field(), "failed validation on '"+first.Tag()+"'")
		}
		return errs.NewBadRequestError("invalid request payload")
	}

	return nil
}
