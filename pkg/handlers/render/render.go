// Package render writes JSON responses and maps domain errors to status codes.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mkani/billing/pkg/api"
	"github.com/mkani/billing/pkg/apperr"
	"github.com/mkani/billing/pkg/authz"
	"github.com/mkani/billing/pkg/settlement"
	"github.com/mkani/billing/pkg/storage"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Decode reads a JSON request body into v.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("body", fmt.Sprintf("is not valid JSON: %v", err), err)
	}
	return nil
}

// Error writes err as an api.Error. Unrecognised errors become a 500 without
// their message.
func Error(w http.ResponseWriter, err error) {
	status, body := classify(err)
	JSON(w, status, body)
}

func classify(err error) (int, api.Error) {
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		body := api.Error{Code: "validation_error", Message: verr.Error()}
		if verr.Field != "" {
			body.Field = &verr.Field
		}
		return http.StatusBadRequest, body
	case errors.Is(err, authz.ErrUnknownUser):
		return http.StatusUnauthorized, api.Error{Code: "unauthorized", Message: "Unknown user"}
	case errors.Is(err, authz.ErrForbidden):
		return http.StatusForbidden, api.Error{Code: "forbidden", Message: "Not allowed"}
	case errors.Is(err, settlement.ErrRentalProfileNotFound):
		return http.StatusNotFound, api.Error{Code: "not_found", Message: "Rental profile not found"}
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrWalletNotFound):
		return http.StatusNotFound, api.Error{Code: "not_found", Message: "Not found"}
	case errors.Is(err, storage.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, api.Error{Code: "insufficient_funds", Message: "Insufficient funds"}
	case errors.Is(err, storage.ErrInvoiceNotPayable),
		errors.Is(err, storage.ErrTenantAlreadyActive),
		errors.Is(err, storage.ErrInvalidTransition):
		return http.StatusConflict, api.Error{Code: "conflict", Message: err.Error()}
	}
	return http.StatusInternalServerError, api.Error{Code: "internal", Message: "Internal server error"}
}

// Principal returns the caller's principal, writing a 401 when there is none.
func Principal(w http.ResponseWriter, r *http.Request) (*authz.Principal, bool) {
	p, ok := authz.FromContext(r.Context())
	if !ok {
		JSON(w, http.StatusUnauthorized, api.Error{Code: "unauthorized", Message: "Missing user identity"})
		return nil, false
	}
	return p, true
}

// ParamError handles malformed query and path parameters.
func ParamError(w http.ResponseWriter, _ *http.Request, err error) {
	field := ""
	var perr *api.InvalidParamFormatError
	if errors.As(err, &perr) {
		field = perr.ParamName
	}
	Error(w, apperr.Validation(field, "is malformed", err))
}
