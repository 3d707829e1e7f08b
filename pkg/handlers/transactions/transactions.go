package transactions

import (
	"context"
	"errors"
	"net/http"

	"github.com/mkani/billing/pkg/api"
	"github.com/mkani/billing/pkg/apperr"
	"github.com/mkani/billing/pkg/handlers/render"
	"github.com/mkani/billing/pkg/mapping"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/settlement"
	"github.com/mkani/billing/pkg/storage"
)

// RentService transfers rent between wallets.
type RentService interface {
	PayRent(ctx context.Context, req settlement.PayRentRequest) (*settlement.RentReceipt, error)
}

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	Rent    RentService
	Wallets storage.WalletStore
	Ledger  storage.LedgerReader
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(rent RentService, wallets storage.WalletStore, ledger storage.LedgerReader) *TransactionsHandler {
	return &TransactionsHandler{Rent: rent, Wallets: wallets, Ledger: ledger}
}

// PayRent moves rent from the caller's wallet to their landlord's.
func (h *TransactionsHandler) PayRent(w http.ResponseWriter, r *http.Request) {
	p, ok := render.Principal(w, r)
	if !ok {
		return
	}

	var body api.PayRentJSONRequestBody
	if err := render.Decode(r, &body); err != nil {
		render.Error(w, err)
		return
	}
	amount, err := mapping.ParseAmount("amount", body.Amount)
	if err != nil {
		render.Error(w, err)
		return
	}
	if body.LandlordId <= 0 || body.RentalProfileId <= 0 {
		render.Error(w, apperr.Validation("landlord_id", "and rental_profile_id are required", nil))
		return
	}

	receipt, err := h.Rent.PayRent(r.Context(), settlement.PayRentRequest{
		PayerID:         p.UserID,
		LandlordID:      uint(body.LandlordId),
		RentalProfileID: uint(body.RentalProfileId),
		Amount:          amount,
	})
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiRentReceipt(receipt))
}

// ListMyTransactions returns the caller's ledger. A caller without a wallet
// has an empty ledger.
func (h *TransactionsHandler) ListMyTransactions(w http.ResponseWriter, r *http.Request) {
	p, ok := render.Principal(w, r)
	if !ok {
		return
	}

	apiTxs := []*api.Transaction{}
	wallet, err := h.Wallets.GetWallet(r.Context(), models.OwnerUser, p.UserID)
	if errors.Is(err, storage.ErrWalletNotFound) {
		render.JSON(w, http.StatusOK, apiTxs)
		return
	}
	if err != nil {
		render.Error(w, err)
		return
	}

	txs, err := h.Ledger.ListTransactions(r.Context(), wallet.ID)
	if err != nil {
		render.Error(w, err)
		return
	}
	for i := range txs {
		apiTxs = append(apiTxs, mapping.ToApiTransaction(&txs[i]))
	}
	render.JSON(w, http.StatusOK, apiTxs)
}
