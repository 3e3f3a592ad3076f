package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// AddPaymentInput contains the parameters for recording a payment.
// Fields are ordered to minimize memory padding.
type AddPaymentInput struct {
	Date     *domain.Date         // Payment date (nil = today)
	ClientID string               // ID or prefix; empty = current client
	Status   domain.PaymentStatus // Settlement status (empty = Pending)
	Note     string
	Amount   float64 // Must be positive
}

// AddPaymentOutput contains the recorded payment.
type AddPaymentOutput struct {
	Payment *domain.Payment
}

// AddPayment is the use case for recording a payment.
type AddPayment struct {
	clients domain.ClientRepository
	ledger  domain.LedgerRepository
	ids     domain.IDGenerator
	clock   domain.Clock
	logger  domain.Logger
}

// NewAddPayment creates a new AddPayment use case.
func NewAddPayment(clients domain.ClientRepository, ledger domain.LedgerRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *AddPayment {
	return &AddPayment{clients: clients, ledger: ledger, ids: ids, clock: clock, logger: logger}
}

// Execute validates and appends the payment.
func (uc *AddPayment) Execute(_ context.Context, in AddPaymentInput) (*AddPaymentOutput, error) {
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = domain.PaymentPending
	}
	if _, err := domain.ParsePaymentStatus(string(status)); err != nil {
		return nil, err
	}

	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.ledger.LoadPayments()
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}

	payment := &domain.Payment{
		ID:       uc.ids.NewID(),
		ClientID: client.ID,
		Date:     dateOrToday(in.Date, uc.clock),
		Amount:   in.Amount,
		Status:   status,
		Note:     in.Note,
	}
	if err := uc.ledger.SavePayments(append(payments, payment)); err != nil {
		return nil, fmt.Errorf("save payments: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(client.ID, "payment", fmt.Sprintf("recorded %.2f (%s)", payment.Amount, payment.Status))
	}
	return &AddPaymentOutput{Payment: payment}, nil
}

func dateOrToday(d *domain.Date, clock domain.Clock) domain.Date {
	if d != nil && !d.IsZero() {
		return *d
	}
	return domain.NewDate(clock.Now())
}
