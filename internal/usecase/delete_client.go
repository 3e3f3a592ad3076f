package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/runoshun/client-desk/internal/domain"
)

// DeleteClientInput contains the parameters for deleting a client.
type DeleteClientInput struct {
	ClientID string // ID or prefix (required)
	Force    bool   // Also delete the client's tasks, ledger entries, registries and notifications
}

// DeleteClientOutput contains the result of deleting a client.
// Fields are ordered to minimize memory padding.
type DeleteClientOutput struct {
	Client           *domain.Client
	ActiveID         string // Selection after deletion ("" if no clients remain)
	RemovedTasks     int
	RemovedPayments  int
	RemovedAdvances  int
	RemovedFeedback  int
	RemovedReviews   int
	RemovedAddresses int
}

// DeleteClient is the use case for deleting a client.
type DeleteClient struct {
	clients       domain.ClientRepository
	tasks         domain.TaskRepository
	ledger        domain.LedgerRepository
	registry      domain.RegistryRepository
	notifications domain.NotificationRepository
	logger        domain.Logger
}

// NewDeleteClient creates a new DeleteClient use case.
func NewDeleteClient(
	clients domain.ClientRepository,
	tasks domain.TaskRepository,
	ledger domain.LedgerRepository,
	registry domain.RegistryRepository,
	notifications domain.NotificationRepository,
	logger domain.Logger,
) *DeleteClient {
	return &DeleteClient{
		clients:       clients,
		tasks:         tasks,
		ledger:        ledger,
		registry:      registry,
		notifications: notifications,
		logger:        logger,
	}
}

// clientRecords holds every collection that references a client.
type clientRecords struct {
	tasks         []*domain.Task
	payments      []*domain.Payment
	advances      []*domain.Advance
	feedback      []*domain.Feedback
	reviews       []*domain.Review
	addresses     []*domain.Address
	notifications []*domain.Notification
}

// Execute deletes the client. Without Force it refuses while records remain.
// If the deleted client was selected, the first remaining client is selected.
func (uc *DeleteClient) Execute(_ context.Context, in DeleteClientInput) (*DeleteClientOutput, error) {
	if in.ClientID == "" {
		return nil, domain.ErrClientNotFound
	}

	clients, err := uc.clients.LoadClients()
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	client, err := domain.FindByID(clients, in.ClientID, func(c *domain.Client) string { return c.ID }, domain.ErrClientNotFound)
	if err != nil {
		return nil, err
	}

	recs, err := uc.loadRecords()
	if err != nil {
		return nil, err
	}

	out := &DeleteClientOutput{Client: client}
	owned := func(id string) bool { return id == client.ID }
	var remaining clientRecords
	remaining.tasks = slices.DeleteFunc(recs.tasks, func(t *domain.Task) bool { return owned(t.ClientID) })
	remaining.payments = slices.DeleteFunc(recs.payments, func(p *domain.Payment) bool { return owned(p.ClientID) })
	remaining.advances = slices.DeleteFunc(recs.advances, func(a *domain.Advance) bool { return owned(a.ClientID) })
	remaining.feedback = slices.DeleteFunc(recs.feedback, func(f *domain.Feedback) bool { return owned(f.ClientID) })
	remaining.reviews = slices.DeleteFunc(recs.reviews, func(r *domain.Review) bool { return owned(r.ClientID) })
	remaining.addresses = slices.DeleteFunc(recs.addresses, func(a *domain.Address) bool { return owned(a.ClientID) })
	remaining.notifications = slices.DeleteFunc(recs.notifications, func(n *domain.Notification) bool { return owned(n.ClientID) })

	out.RemovedTasks = recs.taskCount - len(remaining.tasks)
	out.RemovedPayments = recs.paymentCount - len(remaining.payments)
	out.RemovedAdvances = recs.advanceCount - len(remaining.advances)
	out.RemovedFeedback = recs.feedbackCount - len(remaining.feedback)
	out.RemovedReviews = recs.reviewCount - len(remaining.reviews)
	out.RemovedAddresses = recs.addressCount - len(remaining.addresses)

	if !in.Force && out.recordCount() > 0 {
		return nil, fmt.Errorf("%w: %d tasks, %d payments, %d advances, %d feedback, %d reviews, %d addresses",
			domain.ErrClientHasRecords, out.RemovedTasks, out.RemovedPayments, out.RemovedAdvances,
			out.RemovedFeedback, out.RemovedReviews, out.RemovedAddresses)
	}

	if in.Force {
		if err := uc.saveRecords(remaining); err != nil {
			return nil, err
		}
	} else if len(remaining.notifications) != recs.notificationCount {
		if err := uc.notifications.SaveNotifications(remaining.notifications); err != nil {
			return nil, fmt.Errorf("save notifications: %w", err)
		}
	}

	clients = slices.DeleteFunc(clients, func(c *domain.Client) bool { return owned(c.ID) })
	if err := uc.clients.SaveClients(clients); err != nil {
		return nil, fmt.Errorf("save clients: %w", err)
	}

	settings, err := uc.clients.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if active, err := domain.ResolveActiveClient(clients, "", settings.ActiveClientID); err == nil {
		out.ActiveID = active.ID
	}
	if out.ActiveID != settings.ActiveClientID {
		if err := uc.clients.SaveSettings(domain.Settings{ActiveClientID: out.ActiveID}); err != nil {
			return nil, fmt.Errorf("save settings: %w", err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("", "client", fmt.Sprintf("deleted %s %q (%d tasks removed)", domain.ShortID(client.ID), client.Name, out.RemovedTasks))
	}

	return out, nil
}

// recordCount is the number of records that block a non-forced delete.
// Notifications never block.
func (o *DeleteClientOutput) recordCount() int {
	return o.RemovedTasks + o.RemovedPayments + o.RemovedAdvances + o.RemovedFeedback + o.RemovedReviews + o.RemovedAddresses
}

type loadedRecords struct {
	clientRecords
	taskCount         int
	paymentCount      int
	advanceCount      int
	feedbackCount     int
	reviewCount       int
	addressCount      int
	notificationCount int
}

func (uc *DeleteClient) loadRecords() (*loadedRecords, error) {
	var r loadedRecords
	var err error
	if r.tasks, err = uc.tasks.LoadTasks(); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if r.payments, err = uc.ledger.LoadPayments(); err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	if r.advances, err = uc.ledger.LoadAdvances(); err != nil {
		return nil, fmt.Errorf("load advances: %w", err)
	}
	if r.feedback, err = uc.ledger.LoadFeedback(); err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}
	if r.reviews, err = uc.registry.LoadReviews(); err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	if r.addresses, err = uc.registry.LoadAddresses(); err != nil {
		return nil, fmt.Errorf("load addresses: %w", err)
	}
	if r.notifications, err = uc.notifications.LoadNotifications(); err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	r.taskCount = len(r.tasks)
	r.paymentCount = len(r.payments)
	r.advanceCount = len(r.advances)
	r.feedbackCount = len(r.feedback)
	r.reviewCount = len(r.reviews)
	r.addressCount = len(r.addresses)
	r.notificationCount = len(r.notifications)
	return &r, nil
}

func (uc *DeleteClient) saveRecords(r clientRecords) error {
	if err := uc.tasks.SaveTasks(r.tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	if err := uc.ledger.SavePayments(r.payments); err != nil {
		return fmt.Errorf("save payments: %w", err)
	}
	if err := uc.ledger.SaveAdvances(r.advances); err != nil {
		return fmt.Errorf("save advances: %w", err)
	}
	if err := uc.ledger.SaveFeedback(r.feedback); err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}
	if err := uc.registry.SaveReviews(r.reviews); err != nil {
		return fmt.Errorf("save reviews: %w", err)
	}
	if err := uc.registry.SaveAddresses(r.addresses); err != nil {
		return fmt.Errorf("save addresses: %w", err)
	}
	if err := uc.notifications.SaveNotifications(r.notifications); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}
	return nil
}
