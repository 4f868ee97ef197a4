package service

import (
	"errors"
	"fmt"

	"smart-global-hub/internal/repository"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInUse              = errors.New("resource is referenced by transactions, payments or balances")
	ErrTransactionLocked  = errors.New("transaction has payments applied")
	ErrInvalidAllocation  = errors.New("payment cannot be applied to the selected transactions")
	ErrRateNotFound       = errors.New("no exchange rate configured for currency pair")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidInput       = errors.New("invalid input")
)

// writeError wraps a failed insert or update. Values the database cannot
// hold are the caller's fault and surface as ErrInvalidInput.
func writeError(err error, action string) error {
	if errors.Is(err, repository.ErrOutOfRange) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
