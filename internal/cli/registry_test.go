package cli

import (
	"encoding/json"
	"testing"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReview_AddListStatusRm(t *testing.T) {
	store := ledgerStore()
	c := newTestContainer(t, store, nil)

	out, _, err := execute(c, "review", "add", "--kind", "google", "-m", "Quick turnaround",
		"--reviewer", "Dana", "--gmail", "dana@gmail.com", "--link", "https://maps.example/acme")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered google review id-1 (Pending)")
	require.Len(t, store.Reviews, 1)
	assert.Equal(t, 5, store.Reviews[0].Stars)
	assert.Equal(t, "dana@gmail.com", store.Reviews[0].GmailUsed)

	_, _, err = execute(c, "review", "add", "-k", "trustpilot", "-m", "Reliable", "--status", "live")
	require.NoError(t, err)

	out, _, err = execute(c, "review", "list")
	require.NoError(t, err)
	assert.Regexp(t, `id-2\s+2026-03-10\s+trustpilot\s+-\s+Live`, out)
	assert.Regexp(t, `id-1\s+2026-03-10\s+google\s+5\s+Pending\s+Dana`, out)

	out, _, err = execute(c, "review", "list", "--kind", "google", "-o", "json")
	require.NoError(t, err)
	var listed []domain.Review
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "id-1", listed[0].ID)

	out, _, err = execute(c, "review", "status", "id-1", "invoice", "approved", "--live-link", "https://g.example/r/1")
	require.NoError(t, err)
	assert.Contains(t, out, "Review id-1: Pending -> Invoice Approved")
	assert.Equal(t, "https://g.example/r/1", store.Reviews[1].LiveLink)

	out, _, err = execute(c, "review", "rm", "id-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted review id-2")
	require.Len(t, store.Reviews, 1)
}

func TestReviewAdd_Invalid(t *testing.T) {
	store := ledgerStore()
	c := newTestContainer(t, store, nil)

	_, _, err := execute(c, "review", "add", "--kind", "yelp", "-m", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidReviewKind)

	_, _, err = execute(c, "review", "add", "--kind", "google", "-m", "x", "--stars", "9")
	assert.ErrorIs(t, err, domain.ErrInvalidStars)

	_, _, err = execute(c, "review", "add", "--kind", "google")
	assert.Error(t, err, "--content is required")
	assert.Empty(t, store.Reviews)
}

func TestReviewList_Empty(t *testing.T) {
	c := newTestContainer(t, ledgerStore(), nil)

	out, _, err := execute(c, "review", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No reviews.")
}

func TestAddress_AddListRm(t *testing.T) {
	store := ledgerStore()
	c := newTestContainer(t, store, nil)

	out, _, err := execute(c, "address", "add", "12 Harbour Rd,", "Portsmouth", "--phone", "555-0100", "--invoice", "INV-3")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded address id-1")
	require.Len(t, store.Addresses, 1)
	assert.Equal(t, "12 Harbour Rd, Portsmouth", store.Addresses[0].FullAddress)

	out, _, err = execute(c, "address", "list")
	require.NoError(t, err)
	assert.Regexp(t, `id-1\s+12 Harbour Rd, Portsmouth\s+555-0100\s+INV-3`, out)

	_, _, err = execute(c, "address", "rm", "id-1")
	require.NoError(t, err)
	assert.Empty(t, store.Addresses)

	out, _, err = execute(c, "address", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No addresses.")
}

func TestClientRm_ForceCascadesRegistries(t *testing.T) {
	store := ledgerStore()
	store.Reviews = []*domain.Review{{ID: "r1", ClientID: "client-1"}}
	store.Addresses = []*domain.Address{{ID: "a1", ClientID: "client-1"}}
	c := newTestContainer(t, store, nil)

	_, _, err := execute(c, "client", "rm", "client-1")
	require.ErrorIs(t, err, domain.ErrClientHasRecords)

	out, _, err := execute(c, "client", "rm", "client-1", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "1 reviews, 1 addresses")
	assert.Empty(t, store.Reviews)
	assert.Empty(t, store.Addresses)
}
