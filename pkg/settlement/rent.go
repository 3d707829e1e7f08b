package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mkani/billing/pkg/apperr"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/notify"
	"github.com/mkani/billing/pkg/storage"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned for a non-positive transfer amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrLandlordMismatch is returned when the payee is not the rental profile's owner.
	ErrLandlordMismatch = errors.New("landlord does not match rental profile")

	// ErrRentalProfileNotFound is returned when the payer has no such tenant profile.
	ErrRentalProfileNotFound = errors.New("rental profile not found")
)

// PayRentRequest is a tenant paying their landlord directly.
type PayRentRequest struct {
	PayerID         uint
	LandlordID      uint
	RentalProfileID uint
	Amount          decimal.Decimal
}

// RentReceipt describes a committed rent transfer.
type RentReceipt struct {
	Reference           string
	Amount              decimal.Decimal
	PayerBalance        decimal.Decimal
	DebitTransactionID  uint
	CreditTransactionID uint
}

// PayRent transfers rent from the payer's wallet to the landlord's. Both
// wallets are locked in ascending id order. The request is rejected without
// touching either wallet when the amount is not positive, the profile is not
// the payer's tenancy, the landlord is not its owner or funds are short.
func (e *Engine) PayRent(ctx context.Context, req PayRentRequest) (*RentReceipt, error) {
	receipt, profile, err := e.payRent(ctx, req)
	if err != nil {
		if apperr.IsValidation(err) || errors.Is(err, storage.ErrInsufficientFunds) || errors.Is(err, ErrRentalProfileNotFound) {
			e.metrics.Rent("rejected")
		} else {
			e.metrics.Rent("error")
		}
		return nil, err
	}
	e.metrics.Rent("ok")

	tenantName := ""
	if profile.User != nil {
		tenantName = profile.User.FullName
	}
	e.send(ctx, req.PayerID, notify.RentPaid(receipt.Amount))
	e.send(ctx, req.LandlordID, notify.RentReceived(receipt.Amount, tenantName))
	return receipt, nil
}

func (e *Engine) payRent(ctx context.Context, req PayRentRequest) (*RentReceipt, *models.ResidentProfile, error) {
	// Ledger amounts carry two decimals, so the check applies to the rounded value.
	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, nil, apperr.Validation("amount", "must be positive", ErrInvalidAmount)
	}

	if req.LandlordID == req.PayerID {
		return nil, nil, apperr.Validation("landlord_id", "cannot be the payer", ErrLandlordMismatch)
	}

	profile, err := e.store.GetResidentProfile(ctx, req.RentalProfileID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, ErrRentalProfileNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if profile.UserID != req.PayerID || profile.ResidentType != models.ResidentTenant {
		return nil, nil, ErrRentalProfileNotFound
	}
	if profile.OwnerID == nil || *profile.OwnerID != req.LandlordID {
		return nil, nil, apperr.Validation("landlord_id", "does not match the rental profile owner", ErrLandlordMismatch)
	}

	payer, err := e.store.GetOrCreateWallet(ctx, models.OwnerUser, req.PayerID)
	if err != nil {
		return nil, nil, err
	}
	payee, err := e.store.GetOrCreateWallet(ctx, models.OwnerUser, req.LandlordID)
	if err != nil {
		return nil, nil, err
	}

	receipt := &RentReceipt{Reference: uuid.NewString(), Amount: amount}
	err = e.store.Transact(ctx, func(tx storage.LedgerTx) error {
		wallets, err := tx.LockWalletsByID(ctx, payer.ID, payee.ID)
		if err != nil {
			return err
		}
		from, to := wallets[payer.ID], wallets[payee.ID]
		if from.Balance.LessThan(amount) {
			return storage.ErrInsufficientFunds
		}

		debit := &models.Transaction{
			Amount:      amount,
			Direction:   models.Debit,
			Method:      models.MethodWallet,
			Status:      models.TransactionCompleted,
			Reference:   receipt.Reference,
			Description: fmt.Sprintf("rent for profile %d", profile.ID),
		}
		if err := tx.RecordTransaction(ctx, from, debit); err != nil {
			return err
		}
		credit := &models.Transaction{
			Amount:      amount,
			Direction:   models.Credit,
			Method:      models.MethodWallet,
			Status:      models.TransactionCompleted,
			Reference:   receipt.Reference,
			Description: fmt.Sprintf("rent from profile %d", profile.ID),
		}
		if err := tx.RecordTransaction(ctx, to, credit); err != nil {
			return err
		}

		receipt.PayerBalance = from.Balance
		receipt.DebitTransactionID = debit.ID
		receipt.CreditTransactionID = credit.ID
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return receipt, profile, nil
}

// TopUp credits an owner's wallet with money received from a payment gateway.
func (e *Engine) TopUp(ctx context.Context, kind models.OwnerKind, ownerID uint, amount decimal.Decimal, method models.PaymentMethod, reference string) (*models.Transaction, error) {
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return nil, apperr.Validation("amount", "must be positive", ErrInvalidAmount)
	}
	if _, err := e.store.GetOrCreateWallet(ctx, kind, ownerID); err != nil {
		return nil, err
	}

	entry := &models.Transaction{
		Amount:      amount,
		Direction:   models.Credit,
		Method:      method,
		Status:      models.TransactionCompleted,
		Reference:   reference,
		Description: fmt.Sprintf("top-up via %s", method),
	}
	err := e.store.Transact(ctx, func(tx storage.LedgerTx) error {
		wallet, err := tx.LockWallet(ctx, kind, ownerID)
		if err != nil {
			return err
		}
		return tx.RecordTransaction(ctx, wallet, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to top up wallet: %w", err)
	}
	return entry, nil
}
