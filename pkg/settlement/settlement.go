// Package settlement moves money between wallets. Every balance change runs
// inside one database transaction together with the ledger rows and invoice
// updates it implies; notifications go out only after that transaction commits.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mkani/billing/pkg/metrics"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/notify"
	"github.com/mkani/billing/pkg/storage"
)

// Outcome is the business result of a settlement attempt. None of them is an error.
type Outcome string

const (
	Paid              Outcome = "paid"
	InsufficientFunds Outcome = "insufficient_funds"
	NoWallet          Outcome = "no_wallet"
	AlreadyPaid       Outcome = "already_paid"
)

// Store is what the engine needs from the data layer.
type Store interface {
	storage.Transactor
	storage.WalletStore
	GetResidentProfile(ctx context.Context, id uint) (*models.ResidentProfile, error)
}

// Engine settles invoices and transfers.
type Engine struct {
	store    Store
	notifier notify.Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewEngine(store Store, notifier notify.Notifier, logger *slog.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		store:    store,
		notifier: notifier,
		logger:   logger.With("component", "settlement"),
		metrics:  m,
	}
}

// Settle tries to pay inv from the wallet of resident's user. The wallet row
// is locked first and the invoice re-read under lock, so concurrent attempts
// against the same wallet or invoice serialise and an invoice is never paid twice.
// On success inv is updated to reflect the committed state.
func (e *Engine) Settle(ctx context.Context, inv *models.PackageInvoice, resident *models.ResidentProfile) (Outcome, error) {
	var (
		outcome Outcome
		entry   *models.Transaction
		amount  = inv.Amount
	)

	err := e.store.Transact(ctx, func(tx storage.LedgerTx) error {
		wallet, err := tx.LockWallet(ctx, models.OwnerUser, resident.UserID)
		noWallet := errors.Is(err, storage.ErrWalletNotFound)
		if err != nil && !noWallet {
			return err
		}

		current, err := tx.LockInvoice(ctx, inv.ID)
		if err != nil {
			return err
		}
		if !current.Payable() {
			outcome = AlreadyPaid
			return nil
		}
		if noWallet {
			outcome = NoWallet
			return nil
		}
		amount = current.Amount
		if wallet.Balance.LessThan(amount) {
			outcome = InsufficientFunds
			return nil
		}

		entry = &models.Transaction{
			PackageInvoiceID: &current.ID,
			Amount:           amount,
			Direction:        models.Debit,
			Method:           models.MethodWallet,
			Status:           models.TransactionCompleted,
			Description:      fmt.Sprintf("invoice %d", current.ID),
		}
		if err := tx.RecordTransaction(ctx, wallet, entry); err != nil {
			return err
		}
		if err := tx.MarkInvoicePaid(ctx, current.ID, entry.ID, models.MethodWallet); err != nil {
			return err
		}
		outcome = Paid
		return nil
	})
	if err != nil {
		e.metrics.Settlement("error")
		return "", fmt.Errorf("failed to settle invoice %d: %w", inv.ID, err)
	}
	e.metrics.Settlement(string(outcome))

	name := packageName(inv)
	switch outcome {
	case Paid:
		method := models.MethodWallet
		inv.Status = models.InvoicePaid
		inv.PaymentMethod = &method
		inv.TransactionID = &entry.ID
		e.send(ctx, resident.UserID, notify.InvoicePaid(name, amount, inv.DueDate.Format("January 2006")))
	case InsufficientFunds:
		e.send(ctx, resident.UserID, notify.InsufficientFunds(name, amount))
	case NoWallet:
		e.send(ctx, resident.UserID, notify.NoWallet(name))
	}

	e.logger.DebugContext(ctx, "invoice settlement attempted",
		"invoice_id", inv.ID, "resident_id", resident.ID, "outcome", outcome)
	return outcome, nil
}

func (e *Engine) send(ctx context.Context, userID uint, m notify.Message) {
	if err := notify.Send(ctx, e.notifier, userID, m); err != nil {
		e.metrics.Error("notify")
		e.logger.WarnContext(ctx, "failed to send notification", "user_id", userID, "error", err)
	}
}

func packageName(inv *models.PackageInvoice) string {
	if inv.Package != nil {
		return inv.Package.Name
	}
	return fmt.Sprintf("#%d", inv.PackageID)
}
