package wallets

import (
	"context"
	"net/http"

	"github.com/mkani/billing/pkg/api"
	"github.com/mkani/billing/pkg/apperr"
	"github.com/mkani/billing/pkg/authz"
	"github.com/mkani/billing/pkg/handlers/render"
	"github.com/mkani/billing/pkg/mapping"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
	"github.com/shopspring/decimal"
)

// TopUpService credits wallets with gateway payments.
type TopUpService interface {
	TopUp(ctx context.Context, kind models.OwnerKind, ownerID uint, amount decimal.Decimal, method models.PaymentMethod, reference string) (*models.Transaction, error)
}

// WalletsHandler holds the dependencies for wallet-related handlers.
type WalletsHandler struct {
	Store  storage.WalletStore
	TopUps TopUpService
}

// NewWalletsHandler creates a new WalletsHandler.
func NewWalletsHandler(store storage.WalletStore, topUps TopUpService) *WalletsHandler {
	return &WalletsHandler{Store: store, TopUps: topUps}
}

// GetMyWallet returns the caller's wallet, creating an empty one on first access.
func (h *WalletsHandler) GetMyWallet(w http.ResponseWriter, r *http.Request) {
	p, ok := render.Principal(w, r)
	if !ok {
		return
	}
	wallet, err := h.Store.GetOrCreateWallet(r.Context(), models.OwnerUser, p.UserID)
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiWallet(wallet))
}

// TopUpWallet records a payment received through a gateway. Admin only.
func (h *WalletsHandler) TopUpWallet(w http.ResponseWriter, r *http.Request, userId int) {
	p, ok := render.Principal(w, r)
	if !ok {
		return
	}
	if !p.Admin {
		render.Error(w, authz.ErrForbidden)
		return
	}
	if userId <= 0 {
		render.Error(w, apperr.Validation("userId", "must be positive", nil))
		return
	}

	var body api.TopUpWalletJSONRequestBody
	if err := render.Decode(r, &body); err != nil {
		render.Error(w, err)
		return
	}
	amount, err := mapping.ParseAmount("amount", body.Amount)
	if err != nil {
		render.Error(w, err)
		return
	}
	var method models.PaymentMethod
	switch body.Method {
	case api.TopUpRequestMethodSahl:
		method = models.MethodSahl
	case api.TopUpRequestMethodFawry:
		method = models.MethodFawry
	default:
		render.Error(w, apperr.Validation("method", "must be sahl or fawry", nil))
		return
	}
	reference := ""
	if body.Reference != nil {
		reference = *body.Reference
	}

	tx, err := h.TopUps.TopUp(r.Context(), models.OwnerUser, uint(userId), amount, method, reference)
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusCreated, mapping.ToApiTransaction(tx))
}
