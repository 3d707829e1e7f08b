package storage

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrWalletNotFound is returned when an owner has no wallet yet.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrInsufficientFunds is returned when a wallet has an insufficient balance for a debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvoiceNotPayable is returned when an invoice is no longer pending or overdue.
var ErrInvoiceNotPayable = errors.New("invoice is not in a payable state")

// ErrTenantAlreadyActive is returned when approving a tenant on a unit that already has an approved tenant.
var ErrTenantAlreadyActive = errors.New("unit already has an approved tenant")

// ErrInvalidTransition is returned when a record is not in the state an operation requires.
var ErrInvalidTransition = errors.New("invalid state transition")
