package authz

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loaderFunc func(ctx context.Context, userID uint) (*Principal, error)

func (f loaderFunc) LoadPrincipal(ctx context.Context, userID uint) (*Principal, error) {
	return f(ctx, userID)
}

func TestMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loader := loaderFunc(func(_ context.Context, userID uint) (*Principal, error) {
		switch userID {
		case 7:
			return &Principal{UserID: 7, UnionHead: true, HeadedBuildingIDs: []uint{3}}, nil
		case 8:
			return nil, errors.New("db down")
		default:
			return nil, ErrUnknownUser
		}
	})

	var seen *Principal
	handler := Middleware(loader, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	testCases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a number", "abc", http.StatusUnauthorized},
		{"zero id", "0", http.StatusUnauthorized},
		{"unknown user", "99", http.StatusUnauthorized},
		{"loader failure", "8", http.StatusInternalServerError},
		{"known user", "7", http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(UserIDHeader, tc.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
		})
	}

	require.NotNil(t, seen)
	assert.Equal(t, uint(7), seen.UserID)
	assert.True(t, seen.CanManageBuilding(3))
	assert.False(t, seen.CanManageBuilding(4))
}

func TestPrincipalCapabilities(t *testing.T) {
	admin := &Principal{UserID: 1, Admin: true}
	resident := &Principal{UserID: 2, Resident: true}
	var nobody *Principal

	assert.True(t, admin.CanManageBuilding(42))
	assert.True(t, admin.CanTriggerGeneration())
	assert.False(t, resident.CanManageBuilding(42))
	assert.False(t, resident.CanTriggerGeneration())
	assert.False(t, nobody.CanManageBuilding(1))
	assert.False(t, nobody.CanTriggerGeneration())

	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}
