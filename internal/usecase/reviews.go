package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// AddReviewInput contains the parameters for registering a review.
// Fields are ordered to minimize memory padding.
type AddReviewInput struct {
	Date          *domain.Date        // Date (nil = today)
	ClientID      string              // ID or prefix; empty = current client
	Kind          domain.ReviewKind   // google or trustpilot (required)
	Status        domain.ReviewStatus // Empty = Pending
	Link          string
	Title         string
	Content       string // Required
	Reviewer      string
	Location      string // Trustpilot only; empty = US
	LiveLink      string
	Note          string
	GmailUsed     string
	InvoiceNumber string
	Stars         int // 1..5; 0 = 5 for Google, unrated for Trustpilot
}

// AddReviewOutput contains the registered review.
type AddReviewOutput struct {
	Review *domain.Review
}

// AddReview is the use case for registering a review.
type AddReview struct {
	clients  domain.ClientRepository
	registry domain.RegistryRepository
	ids      domain.IDGenerator
	clock    domain.Clock
	logger   domain.Logger
}

// NewAddReview creates a new AddReview use case.
func NewAddReview(clients domain.ClientRepository, registry domain.RegistryRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *AddReview {
	return &AddReview{clients: clients, registry: registry, ids: ids, clock: clock, logger: logger}
}

// Execute validates the review and puts it first in the registry.
func (uc *AddReview) Execute(_ context.Context, in AddReviewInput) (*AddReviewOutput, error) {
	kind, err := domain.ParseReviewKind(string(in.Kind))
	if err != nil {
		return nil, err
	}
	status := domain.ReviewPending
	if in.Status != "" {
		if status, err = domain.ParseReviewStatus(string(in.Status)); err != nil {
			return nil, err
		}
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}
	stars := in.Stars
	if stars == 0 && kind == domain.ReviewGoogle {
		stars = domain.DefaultReviewStars
	}
	if stars != 0 {
		if err := domain.ValidateStars(stars); err != nil {
			return nil, err
		}
	}
	location := strings.TrimSpace(in.Location)
	if location == "" && kind == domain.ReviewTrustpilot {
		location = domain.DefaultTrustpilotRegion
	}

	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.registry.LoadReviews()
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	review := &domain.Review{
		ID:            uc.ids.NewID(),
		ClientID:      client.ID,
		Date:          dateOrToday(in.Date, uc.clock),
		Kind:          kind,
		Status:        status,
		Link:          strings.TrimSpace(in.Link),
		Title:         strings.TrimSpace(in.Title),
		Content:       content,
		Reviewer:      strings.TrimSpace(in.Reviewer),
		Location:      location,
		LiveLink:      strings.TrimSpace(in.LiveLink),
		Note:          in.Note,
		GmailUsed:     strings.TrimSpace(in.GmailUsed),
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		Stars:         stars,
	}
	if err := uc.registry.SaveReviews(append([]*domain.Review{review}, reviews...)); err != nil {
		return nil, fmt.Errorf("save reviews: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(client.ID, "review", fmt.Sprintf("registered %s review %s", review.Kind, domain.ShortID(review.ID)))
	}
	return &AddReviewOutput{Review: review}, nil
}

// ListReviewsInput contains the parameters for listing reviews.
type ListReviewsInput struct {
	ClientID string              // ID or prefix; empty = current client
	Kind     domain.ReviewKind   // Empty = every kind
	Status   domain.ReviewStatus // Empty = every status
}

// ListReviewsOutput contains the matching reviews, newest first.
type ListReviewsOutput struct {
	Client  *domain.Client
	Reviews []*domain.Review
}

// ListReviews is the use case for listing a client's reviews.
type ListReviews struct {
	clients  domain.ClientRepository
	registry domain.RegistryRepository
}

// NewListReviews creates a new ListReviews use case.
func NewListReviews(clients domain.ClientRepository, registry domain.RegistryRepository) *ListReviews {
	return &ListReviews{clients: clients, registry: registry}
}

// Execute returns the client's reviews matching the filters.
func (uc *ListReviews) Execute(_ context.Context, in ListReviewsInput) (*ListReviewsOutput, error) {
	var err error
	kind, status := in.Kind, in.Status
	if kind != "" {
		if kind, err = domain.ParseReviewKind(string(kind)); err != nil {
			return nil, err
		}
	}
	if status != "" {
		if status, err = domain.ParseReviewStatus(string(status)); err != nil {
			return nil, err
		}
	}

	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.registry.LoadReviews()
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	out := &ListReviewsOutput{Client: client}
	for _, r := range reviews {
		if r.ClientID != client.ID {
			continue
		}
		if kind != "" && r.Kind != kind {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out.Reviews = append(out.Reviews, r)
	}
	return out, nil
}

// SetReviewStatusInput contains the parameters for moving a review.
type SetReviewStatusInput struct {
	ReviewID string              // ID or prefix (required)
	Status   domain.ReviewStatus // New status (required)
	LiveLink string              // Replaces the live link when set
}

// SetReviewStatusOutput contains the updated review.
type SetReviewStatusOutput struct {
	Review   *domain.Review
	Previous domain.ReviewStatus
}

// SetReviewStatus is the use case for changing a review's status.
type SetReviewStatus struct {
	registry domain.RegistryRepository
	logger   domain.Logger
}

// NewSetReviewStatus creates a new SetReviewStatus use case.
func NewSetReviewStatus(registry domain.RegistryRepository, logger domain.Logger) *SetReviewStatus {
	return &SetReviewStatus{registry: registry, logger: logger}
}

// Execute updates the status and saves the reviews.
func (uc *SetReviewStatus) Execute(_ context.Context, in SetReviewStatusInput) (*SetReviewStatusOutput, error) {
	status, err := domain.ParseReviewStatus(string(in.Status))
	if err != nil {
		return nil, err
	}
	reviews, err := uc.registry.LoadReviews()
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	review, err := domain.FindByID(reviews, in.ReviewID, func(r *domain.Review) string { return r.ID }, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}

	prev := review.Status
	review.Status = status
	if link := strings.TrimSpace(in.LiveLink); link != "" {
		review.LiveLink = link
	}
	if err := uc.registry.SaveReviews(reviews); err != nil {
		return nil, fmt.Errorf("save reviews: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(review.ClientID, "review", fmt.Sprintf("%s: %s -> %s", domain.ShortID(review.ID), prev, status))
	}
	return &SetReviewStatusOutput{Review: review, Previous: prev}, nil
}

// DeleteReviewInput contains the parameters for deleting a review.
type DeleteReviewInput struct {
	ReviewID string // ID or prefix (required)
}

// DeleteReviewOutput contains the deleted review.
type DeleteReviewOutput struct {
	Review *domain.Review
}

// DeleteReview is the use case for deleting a review.
type DeleteReview struct {
	registry domain.RegistryRepository
	logger   domain.Logger
}

// NewDeleteReview creates a new DeleteReview use case.
func NewDeleteReview(registry domain.RegistryRepository, logger domain.Logger) *DeleteReview {
	return &DeleteReview{registry: registry, logger: logger}
}

// Execute removes the review.
func (uc *DeleteReview) Execute(_ context.Context, in DeleteReviewInput) (*DeleteReviewOutput, error) {
	reviews, err := uc.registry.LoadReviews()
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	review, err := domain.FindByID(reviews, in.ReviewID, func(r *domain.Review) string { return r.ID }, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}

	reviews = slices.DeleteFunc(reviews, func(r *domain.Review) bool { return r.ID == review.ID })
	if err := uc.registry.SaveReviews(reviews); err != nil {
		return nil, fmt.Errorf("save reviews: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(review.ClientID, "review", fmt.Sprintf("deleted %s", domain.ShortID(review.ID)))
	}
	return &DeleteReviewOutput{Review: review}, nil
}
