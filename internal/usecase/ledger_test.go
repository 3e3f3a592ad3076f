package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPayment_Execute(t *testing.T) {
	f := newFixture()
	f.store.AddClient("c1", "Acme")
	uc := usecase.NewAddPayment(f.store, f.store, f.ids, f.clock, f.logger)

	out, err := uc.Execute(context.Background(), usecase.AddPaymentInput{Amount: 250})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, out.Payment.Status)
	assert.Equal(t, "2026-03-10", out.Payment.Date.String())
	assert.Equal(t, "c1", out.Payment.ClientID)

	out, err = uc.Execute(context.Background(), usecase.AddPaymentInput{
		Amount: 99.5,
		Status: domain.PaymentPaid,
		Date:   mustDate(t, "2026-02-01"),
		Note:   "invoice 7",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", out.Payment.Date.String())
	assert.Len(t, f.store.Payments, 2)

	for _, amount := range []float64{0, -5} {
		_, err = uc.Execute(context.Background(), usecase.AddPaymentInput{Amount: amount})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
	_, err = uc.Execute(context.Background(), usecase.AddPaymentInput{Amount: 1, Status: "Lost"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestListPayments_Execute(t *testing.T) {
	f := newFixture()
	f.store.AddClient("c1", "Acme")
	f.store.Payments = []*domain.Payment{
		{ID: "p1", ClientID: "c1", Amount: 1},
		{ID: "p2", ClientID: "c2", Amount: 2},
		{ID: "p3", ClientID: "c1", Amount: 3},
	}

	out, err := usecase.NewListPayments(f.store, f.store).Execute(context.Background(), usecase.ListPaymentsInput{})

	require.NoError(t, err)
	require.Len(t, out.Payments, 2)
	assert.Equal(t, "p1", out.Payments[0].ID)
	assert.Equal(t, "p3", out.Payments[1].ID)
}

func TestSetPaymentStatus_Execute(t *testing.T) {
	f := newFixture()
	f.store.Payments = []*domain.Payment{{ID: "pay-1", ClientID: "c1", Amount: 10, Status: domain.PaymentUnpaid}}
	uc := usecase.NewSetPaymentStatus(f.store, f.logger)

	out, err := uc.Execute(context.Background(), usecase.SetPaymentStatusInput{PaymentID: "pay", Status: domain.PaymentPaid})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentUnpaid, out.Previous)
	assert.Equal(t, domain.PaymentPaid, f.store.Payments[0].Status)

	_, err = uc.Execute(context.Background(), usecase.SetPaymentStatusInput{PaymentID: "zzz", Status: domain.PaymentPaid})
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestDeletePayment_Execute(t *testing.T) {
	f := newFixture()
	f.store.Payments = []*domain.Payment{{ID: "p1", ClientID: "c1"}, {ID: "p2", ClientID: "c1"}}
	uc := usecase.NewDeletePayment(f.store, f.logger)

	out, err := uc.Execute(context.Background(), usecase.DeletePaymentInput{PaymentID: "p1"})

	require.NoError(t, err)
	assert.Equal(t, "p1", out.Payment.ID)
	require.Len(t, f.store.Payments, 1)
	assert.Equal(t, "p2", f.store.Payments[0].ID)
}

func TestAdvances(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.store.AddClient("c1", "Acme")
	add := usecase.NewAddAdvance(f.store, f.store, f.ids, f.clock, f.logger)
	list := usecase.NewListAdvances(f.store, f.store)
	del := usecase.NewDeleteAdvance(f.store, f.logger)

	_, err := add.Execute(ctx, usecase.AddAdvanceInput{Amount: 500, Type: domain.AdvanceReceived})
	require.NoError(t, err)
	repaid, err := add.Execute(ctx, usecase.AddAdvanceInput{Amount: 200, Type: domain.AdvanceRepaid})
	require.NoError(t, err)

	_, err = add.Execute(ctx, usecase.AddAdvanceInput{Amount: 1, Type: "Borrowed"})
	assert.ErrorIs(t, err, domain.ErrInvalidAdvanceType)
	_, err = add.Execute(ctx, usecase.AddAdvanceInput{Amount: -1, Type: domain.AdvanceReceived})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	out, err := list.Execute(ctx, usecase.ListAdvancesInput{})
	require.NoError(t, err)
	assert.Len(t, out.Advances, 2)
	assert.InDelta(t, 300.0, out.Balance, 1e-9)

	_, err = del.Execute(ctx, usecase.DeleteAdvanceInput{AdvanceID: repaid.Advance.ID})
	require.NoError(t, err)
	out, err = list.Execute(ctx, usecase.ListAdvancesInput{})
	require.NoError(t, err)
	assert.InDelta(t, 500.0, out.Balance, 1e-9)

	_, err = del.Execute(ctx, usecase.DeleteAdvanceInput{AdvanceID: "missing"})
	assert.ErrorIs(t, err, domain.ErrAdvanceNotFound)
}

func TestFeedback(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.store.AddClient("c1", "Acme")
	add := usecase.NewAddFeedback(f.store, f.store, f.ids, f.clock, f.logger)
	list := usecase.NewListFeedback(f.store, f.store)

	out, err := add.Execute(ctx, usecase.AddFeedbackInput{Rating: 4, Comment: " great "})
	require.NoError(t, err)
	assert.Equal(t, "great", out.Feedback.Comment)

	for _, r := range []int{0, 6} {
		_, err = add.Execute(ctx, usecase.AddFeedbackInput{Rating: r})
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}

	listed, err := list.Execute(ctx, usecase.ListFeedbackInput{})
	require.NoError(t, err)
	assert.Len(t, listed.Feedback, 1)
}

func TestSummary_Execute(t *testing.T) {
	f := newFixture()
	f.store.AddClient("c1", "Acme")
	overdue := f.store.AddTask("t1", "c1")
	overdue.DueDate = *mustDate(t, "2026-03-01")
	f.store.AddTask("t2", "c1", "t1").DueDate = *mustDate(t, "2026-04-01")
	f.store.Payments = []*domain.Payment{
		{ID: "p1", ClientID: "c1", Amount: 100, Status: domain.PaymentPaid},
		{ID: "p2", ClientID: "c1", Amount: 40, Status: domain.PaymentUnpaid},
	}
	f.store.Feedback = []*domain.Feedback{
		{ID: "f1", ClientID: "c1", Rating: 5},
		{ID: "f2", ClientID: "c1", Rating: 4},
	}
	f.store.Reviews = []*domain.Review{
		{ID: "r1", ClientID: "c1", Kind: domain.ReviewGoogle, Status: domain.ReviewLive},
		{ID: "r2", ClientID: "c1", Kind: domain.ReviewTrustpilot, Status: domain.ReviewDrop},
		{ID: "r3", ClientID: "c2", Kind: domain.ReviewGoogle, Status: domain.ReviewLive},
	}
	uc := usecase.NewSummary(f.store, f.store, f.store, f.store, f.clock)

	out, err := uc.Execute(context.Background(), usecase.SummaryInput{})

	require.NoError(t, err)
	s := out.Summary
	assert.Equal(t, "Acme", s.ClientName)
	assert.InDelta(t, 100.0, s.TotalPaid, 1e-9)
	assert.InDelta(t, 40.0, s.Outstanding, 1e-9)
	assert.Equal(t, 2, s.TotalTasks)
	assert.Equal(t, 2, s.OpenTasks)
	assert.Equal(t, 1, s.BlockedTasks)
	assert.Equal(t, 1, s.OverdueTasks)
	require.NotNil(t, s.Satisfaction)
	assert.InDelta(t, 4.5, *s.Satisfaction, 1e-9)
	assert.Equal(t, 2, s.TotalReviews)
	assert.Equal(t, 1, s.LiveReviews)
	assert.Equal(t, domain.HealthAtRisk, s.Health)
}
