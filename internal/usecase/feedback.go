package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// AddFeedbackInput contains the parameters for recording feedback.
// Fields are ordered to minimize memory padding.
type AddFeedbackInput struct {
	Date     *domain.Date // Date (nil = today)
	ClientID string       // ID or prefix; empty = current client
	Comment  string
	Rating   int // 1..5
}

// AddFeedbackOutput contains the recorded feedback.
type AddFeedbackOutput struct {
	Feedback *domain.Feedback
}

// AddFeedback is the use case for recording client feedback.
type AddFeedback struct {
	clients domain.ClientRepository
	ledger  domain.LedgerRepository
	ids     domain.IDGenerator
	clock   domain.Clock
	logger  domain.Logger
}

// NewAddFeedback creates a new AddFeedback use case.
func NewAddFeedback(clients domain.ClientRepository, ledger domain.LedgerRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *AddFeedback {
	return &AddFeedback{clients: clients, ledger: ledger, ids: ids, clock: clock, logger: logger}
}

// Execute validates and appends the feedback.
func (uc *AddFeedback) Execute(_ context.Context, in AddFeedbackInput) (*AddFeedbackOutput, error) {
	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	feedback, err := uc.ledger.LoadFeedback()
	if err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}

	fb := &domain.Feedback{
		ID:       uc.ids.NewID(),
		ClientID: client.ID,
		Date:     dateOrToday(in.Date, uc.clock),
		Rating:   in.Rating,
		Comment:  strings.TrimSpace(in.Comment),
	}
	if err := uc.ledger.SaveFeedback(append(feedback, fb)); err != nil {
		return nil, fmt.Errorf("save feedback: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(client.ID, "feedback", fmt.Sprintf("recorded rating %d", fb.Rating))
	}
	return &AddFeedbackOutput{Feedback: fb}, nil
}

// ListFeedbackInput contains the parameters for listing feedback.
type ListFeedbackInput struct {
	ClientID string // ID or prefix; empty = current client
}

// ListFeedbackOutput contains the client's feedback in stored order.
type ListFeedbackOutput struct {
	Client   *domain.Client
	Feedback []*domain.Feedback
}

// ListFeedback is the use case for listing a client's feedback.
type ListFeedback struct {
	clients domain.ClientRepository
	ledger  domain.LedgerRepository
}

// NewListFeedback creates a new ListFeedback use case.
func NewListFeedback(clients domain.ClientRepository, ledger domain.LedgerRepository) *ListFeedback {
	return &ListFeedback{clients: clients, ledger: ledger}
}

// Execute returns the client's feedback.
func (uc *ListFeedback) Execute(_ context.Context, in ListFeedbackInput) (*ListFeedbackOutput, error) {
	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	feedback, err := uc.ledger.LoadFeedback()
	if err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}
	out := &ListFeedbackOutput{Client: client}
	for _, f := range feedback {
		if f.ClientID == client.ID {
			out.Feedback = append(out.Feedback, f)
		}
	}
	return out, nil
}
