package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gopalnp/personal-site-backend/errs"
)

var validate = validator.New()

// decodeJSON decodes a request body into dst and rejects unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errs.NewValidationError("", "malformed request body")
	}
	return nil
}

// decodeAndValidate decodes the body and runs struct tag validation.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := decodeJSON(r, dst); err != nil {
		return err
	}
	if err := validate.Struct(dst); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			return errs.NewValidationError(first.Field(), "invalid value for "+first.Field())
		}
		return errs.NewValidationError("", "invalid request body")
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type moveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// ErrorResponse documents the error body shape returned by the Responder.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
	Field  string `json:"field,omitempty"`
}

// routeHandlers groups every handler mounted by setupRoutes.
type routeHandlers struct {
	authHandler       authHandler
	blogPostHandler   blogPostHandler
	newsHandler       newsHandler
	videoHandler      videoHandler
	galleryHandler    galleryHandler
	timelineHandler   timelineHandler
	revalidateHandler revalidateHandler
	uploadHandler     uploadHandler
	contactHandler    contactHandler
	healthHandler     healthHandler
}
