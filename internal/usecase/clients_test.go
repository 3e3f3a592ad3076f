package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitStore_Execute(t *testing.T) {
	f := newFixture()
	f.store.Initialized = false
	uc := usecase.NewInitStore(f.store)

	_, err := uc.Execute(context.Background(), usecase.InitStoreInput{})
	require.NoError(t, err)
	assert.True(t, f.store.Initialized)

	_, err = uc.Execute(context.Background(), usecase.InitStoreInput{})
	assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)
}

func TestNewClient_Execute(t *testing.T) {
	t.Run("creates and selects client", func(t *testing.T) {
		f := newFixture()
		f.store.AddClient("c0", "Existing")
		uc := usecase.NewNewClient(f.store, f.ids, f.clock, f.logger)

		out, err := uc.Execute(context.Background(), usecase.NewClientInput{
			Name:  "  Acme Corp ",
			Email: "ops@acme.test",
		})

		require.NoError(t, err)
		assert.Equal(t, "id-1", out.Client.ID)
		assert.Equal(t, "Acme Corp", out.Client.Name)
		assert.Equal(t, testNow, out.Client.Created)
		require.Len(t, f.store.Clients, 2)
		assert.Equal(t, "id-1", f.store.Settings.ActiveClientID)
		assert.True(t, f.logger.HasLevel("INFO"))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		f := newFixture()
		uc := usecase.NewNewClient(f.store, f.ids, f.clock, f.logger)

		_, err := uc.Execute(context.Background(), usecase.NewClientInput{Name: "   "})

		assert.ErrorIs(t, err, domain.ErrEmptyName)
		assert.Empty(t, f.store.Clients)
	})

	t.Run("wraps save error", func(t *testing.T) {
		f := newFixture()
		f.store.SaveErr = errors.New("disk full")
		uc := usecase.NewNewClient(f.store, f.ids, f.clock, f.logger)

		_, err := uc.Execute(context.Background(), usecase.NewClientInput{Name: "Acme"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "save clients")
	})
}

func TestListClients_Execute(t *testing.T) {
	f := newFixture()
	f.store.AddClient("c1", "Acme")
	f.store.AddClient("c2", "Globex")
	uc := usecase.NewListClients(f.store)

	out, err := uc.Execute(context.Background(), usecase.ListClientsInput{})
	require.NoError(t, err)
	assert.Len(t, out.Clients, 2)
	assert.Equal(t, "c1", out.ActiveID) // No selection falls back to the first client

	f.store.Settings.ActiveClientID = "c2"
	out, err = uc.Execute(context.Background(), usecase.ListClientsInput{})
	require.NoError(t, err)
	assert.Equal(t, "c2", out.ActiveID)
}

func TestShowClient_Execute(t *testing.T) {
	f := newFixture()
	f.store.AddClient("acme-1", "Acme")
	f.store.AddClient("globex-1", "Globex")
	uc := usecase.NewShowClient(f.store)

	out, err := uc.Execute(context.Background(), usecase.ShowClientInput{ClientID: "glo"})
	require.NoError(t, err)
	assert.Equal(t, "Globex", out.Client.Name)

	_, err = uc.Execute(context.Background(), usecase.ShowClientInput{ClientID: "zzz"})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestEditClient_Execute(t *testing.T) {
	f := newFixture()
	f.store.AddClient("c1", "Acme")
	uc := usecase.NewEditClient(f.store, f.logger)

	out, err := uc.Execute(context.Background(), usecase.EditClientInput{
		ClientID: "c1",
		Patch:    domain.ClientPatch{Name: ptr("Acme Inc"), Note: ptr("net 30")},
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", out.Client.Name)
	assert.Equal(t, "Acme Inc", f.store.Clients[0].Name)
	assert.Equal(t, "net 30", f.store.Clients[0].Note)

	_, err = uc.Execute(context.Background(), usecase.EditClientInput{ClientID: "c1"})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, err = uc.Execute(context.Background(), usecase.EditClientInput{
		ClientID: "c1",
		Patch:    domain.ClientPatch{Name: ptr("")},
	})
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.Equal(t, "Acme Inc", f.store.Clients[0].Name)
}

func TestUseClient_Execute(t *testing.T) {
	f := newFixture()
	f.store.AddClient("c1", "Acme")
	f.store.AddClient("c2", "Globex")
	uc := usecase.NewUseClient(f.store)

	out, err := uc.Execute(context.Background(), usecase.UseClientInput{ClientID: "c2"})
	require.NoError(t, err)
	assert.Equal(t, "c2", out.Client.ID)
	assert.Equal(t, "c2", f.store.Settings.ActiveClientID)

	_, err = uc.Execute(context.Background(), usecase.UseClientInput{ClientID: "c9"})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	_, err = uc.Execute(context.Background(), usecase.UseClientInput{})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestDeleteClient_Execute(t *testing.T) {
	newStore := func() *fixture {
		f := newFixture()
		f.store.AddClient("c1", "Acme")
		f.store.AddClient("c2", "Globex")
		f.store.Settings.ActiveClientID = "c1"
		f.store.AddTask("t1", "c1")
		f.store.AddTask("t2", "c2")
		f.store.Payments = []*domain.Payment{{ID: "p1", ClientID: "c1", Amount: 10, Status: domain.PaymentPaid}}
		f.store.Notifications = []*domain.Notification{{ID: "n1", ClientID: "c1"}, {ID: "n2", ClientID: "c2"}}
		return f
	}

	t.Run("refuses while records remain", func(t *testing.T) {
		f := newStore()
		uc := usecase.NewDeleteClient(f.store, f.store, f.store, f.store, f.store, f.logger)

		_, err := uc.Execute(context.Background(), usecase.DeleteClientInput{ClientID: "c1"})

		require.ErrorIs(t, err, domain.ErrClientHasRecords)
		assert.Len(t, f.store.Clients, 2)
		assert.Len(t, f.store.Tasks, 2)
	})

	t.Run("force removes records and moves selection", func(t *testing.T) {
		f := newStore()
		uc := usecase.NewDeleteClient(f.store, f.store, f.store, f.store, f.store, f.logger)

		out, err := uc.Execute(context.Background(), usecase.DeleteClientInput{ClientID: "c1", Force: true})

		require.NoError(t, err)
		assert.Equal(t, 1, out.RemovedTasks)
		assert.Equal(t, 1, out.RemovedPayments)
		assert.Equal(t, "c2", out.ActiveID)
		assert.Equal(t, "c2", f.store.Settings.ActiveClientID)
		require.Len(t, f.store.Clients, 1)
		require.Len(t, f.store.Tasks, 1)
		assert.Equal(t, "t2", f.store.Tasks[0].ID)
		assert.Empty(t, f.store.Payments)
		require.Len(t, f.store.Notifications, 1)
		assert.Equal(t, "n2", f.store.Notifications[0].ID)
	})

	t.Run("deletes client without records", func(t *testing.T) {
		f := newFixture()
		f.store.AddClient("c1", "Acme")
		uc := usecase.NewDeleteClient(f.store, f.store, f.store, f.store, f.store, f.logger)

		out, err := uc.Execute(context.Background(), usecase.DeleteClientInput{ClientID: "c1"})

		require.NoError(t, err)
		assert.Empty(t, out.ActiveID)
		assert.Empty(t, f.store.Clients)
	})

	t.Run("force removes reviews and addresses", func(t *testing.T) {
		f := newStore()
		f.store.Reviews = []*domain.Review{{ID: "r1", ClientID: "c1"}, {ID: "r2", ClientID: "c2"}}
		f.store.Addresses = []*domain.Address{{ID: "a1", ClientID: "c1"}}
		uc := usecase.NewDeleteClient(f.store, f.store, f.store, f.store, f.store, f.logger)

		out, err := uc.Execute(context.Background(), usecase.DeleteClientInput{ClientID: "c1", Force: true})

		require.NoError(t, err)
		assert.Equal(t, 1, out.RemovedReviews)
		assert.Equal(t, 1, out.RemovedAddresses)
		require.Len(t, f.store.Reviews, 1)
		assert.Equal(t, "r2", f.store.Reviews[0].ID)
		assert.Empty(t, f.store.Addresses)
	})

	t.Run("registry entries block a plain delete", func(t *testing.T) {
		f := newFixture()
		f.store.AddClient("c1", "Acme")
		f.store.Addresses = []*domain.Address{{ID: "a1", ClientID: "c1"}}
		uc := usecase.NewDeleteClient(f.store, f.store, f.store, f.store, f.store, f.logger)

		_, err := uc.Execute(context.Background(), usecase.DeleteClientInput{ClientID: "c1"})

		require.ErrorIs(t, err, domain.ErrClientHasRecords)
		assert.Len(t, f.store.Clients, 1)
		assert.Len(t, f.store.Addresses, 1)
	})

	t.Run("plain delete drops the client's notifications", func(t *testing.T) {
		f := newFixture()
		f.store.AddClient("c1", "Acme")
		f.store.AddClient("c2", "Globex")
		f.store.Notifications = []*domain.Notification{
			{ID: "n1", ClientID: "c1"},
			{ID: "n2", ClientID: "c2"},
			{ID: "n3", ClientID: "c1"},
		}
		uc := usecase.NewDeleteClient(f.store, f.store, f.store, f.store, f.store, f.logger)

		_, err := uc.Execute(context.Background(), usecase.DeleteClientInput{ClientID: "c1"})

		require.NoError(t, err)
		require.Len(t, f.store.Clients, 1)
		require.Len(t, f.store.Notifications, 1)
		assert.Equal(t, "n2", f.store.Notifications[0].ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newStore()
		uc := usecase.NewDeleteClient(f.store, f.store, f.store, f.store, f.store, f.logger)

		_, err := uc.Execute(context.Background(), usecase.DeleteClientInput{ClientID: "nope"})

		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})
}
