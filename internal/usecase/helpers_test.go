package usecase_test

import (
	"testing"
	"time"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

// fixture bundles the doubles most use cases need.
type fixture struct {
	store    *testutil.MockStore
	clock    *testutil.MockClock
	ids      *testutil.MockIDGenerator
	notifier *testutil.MockNotifier
	logger   *testutil.MockLogger
}

func newFixture() *fixture {
	return &fixture{
		store:    testutil.NewMockStore(),
		clock:    &testutil.MockClock{NowTime: testNow},
		ids:      &testutil.MockIDGenerator{},
		notifier: &testutil.MockNotifier{},
		logger:   &testutil.MockLogger{},
	}
}

func mustDate(t *testing.T, s string) *domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func ptr[T any](v T) *T {
	return &v
}
