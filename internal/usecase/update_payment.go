package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/runoshun/client-desk/internal/domain"
)

// SetPaymentStatusInput contains the parameters for settling a payment.
type SetPaymentStatusInput struct {
	PaymentID string               // ID or prefix (required)
	Status    domain.PaymentStatus // New status (required)
}

// SetPaymentStatusOutput contains the updated payment.
type SetPaymentStatusOutput struct {
	Payment  *domain.Payment
	Previous domain.PaymentStatus
}

// SetPaymentStatus is the use case for changing a payment's status.
type SetPaymentStatus struct {
	ledger domain.LedgerRepository
	logger domain.Logger
}

// NewSetPaymentStatus creates a new SetPaymentStatus use case.
func NewSetPaymentStatus(ledger domain.LedgerRepository, logger domain.Logger) *SetPaymentStatus {
	return &SetPaymentStatus{ledger: ledger, logger: logger}
}

// Execute updates the status and saves the payments.
func (uc *SetPaymentStatus) Execute(_ context.Context, in SetPaymentStatusInput) (*SetPaymentStatusOutput, error) {
	if _, err := domain.ParsePaymentStatus(string(in.Status)); err != nil {
		return nil, err
	}
	payments, err := uc.ledger.LoadPayments()
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	payment, err := domain.FindByID(payments, in.PaymentID, func(p *domain.Payment) string { return p.ID }, domain.ErrPaymentNotFound)
	if err != nil {
		return nil, err
	}

	prev := payment.Status
	payment.Status = in.Status
	if err := uc.ledger.SavePayments(payments); err != nil {
		return nil, fmt.Errorf("save payments: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(payment.ClientID, "payment", fmt.Sprintf("%s: %s -> %s", domain.ShortID(payment.ID), prev, in.Status))
	}
	return &SetPaymentStatusOutput{Payment: payment, Previous: prev}, nil
}

// DeletePaymentInput contains the parameters for deleting a payment.
type DeletePaymentInput struct {
	PaymentID string // ID or prefix (required)
}

// DeletePaymentOutput contains the deleted payment.
type DeletePaymentOutput struct {
	Payment *domain.Payment
}

// DeletePayment is the use case for deleting a payment.
type DeletePayment struct {
	ledger domain.LedgerRepository
	logger domain.Logger
}

// NewDeletePayment creates a new DeletePayment use case.
func NewDeletePayment(ledger domain.LedgerRepository, logger domain.Logger) *DeletePayment {
	return &DeletePayment{ledger: ledger, logger: logger}
}

// Execute removes the payment.
func (uc *DeletePayment) Execute(_ context.Context, in DeletePaymentInput) (*DeletePaymentOutput, error) {
	payments, err := uc.ledger.LoadPayments()
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	payment, err := domain.FindByID(payments, in.PaymentID, func(p *domain.Payment) string { return p.ID }, domain.ErrPaymentNotFound)
	if err != nil {
		return nil, err
	}

	payments = slices.DeleteFunc(payments, func(p *domain.Payment) bool { return p.ID == payment.ID })
	if err := uc.ledger.SavePayments(payments); err != nil {
		return nil, fmt.Errorf("save payments: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(payment.ClientID, "payment", fmt.Sprintf("deleted %s", domain.ShortID(payment.ID)))
	}
	return &DeletePaymentOutput{Payment: payment}, nil
}
