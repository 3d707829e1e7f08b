package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkani/billing/pkg/api"
	"github.com/mkani/billing/pkg/apperr"
	"github.com/mkani/billing/pkg/authz"
	"github.com/mkani/billing/pkg/settlement"
	"github.com/mkani/billing/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", apperr.Validation("amount", "must be positive", settlement.ErrInvalidAmount), http.StatusBadRequest, "validation_error"},
		{"forbidden", fmt.Errorf("building 3: %w", authz.ErrForbidden), http.StatusForbidden, "forbidden"},
		{"not found", fmt.Errorf("package 9: %w", storage.ErrNotFound), http.StatusNotFound, "not_found"},
		{"rental profile", settlement.ErrRentalProfileNotFound, http.StatusNotFound, "not_found"},
		{"insufficient funds", storage.ErrInsufficientFunds, http.StatusUnprocessableEntity, "insufficient_funds"},
		{"conflict", storage.ErrTenantAlreadyActive, http.StatusConflict, "conflict"},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			Error(rr, tc.err)

			assert.Equal(t, tc.status, rr.Code)
			var body api.Error
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.NotContains(t, body.Message, "pq:")
		})
	}
}

func TestError_ValidationField(t *testing.T) {
	rr := httptest.NewRecorder()
	Error(rr, apperr.Validation("landlord_id", "does not match", settlement.ErrLandlordMismatch))

	var body api.Error
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotNil(t, body.Field)
	assert.Equal(t, "landlord_id", *body.Field)
}
