package services

import (
	"context"
	"testing"
	"time"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisitorFixture(t *testing.T) (*VisitorService, *repositories.MemoryReservationStore) {
	t.Helper()
	store := repositories.NewMemoryReservationStore()
	store.SeedVisitor(&models.Visitor{
		VisitorID:    "V001",
		VisitorName:  "Li Wei",
		IDCardNumber: "110101199001011234",
		EntryMethod:  models.EntryOnSitePurchase,
	})
	store.SeedTrafficControl(&models.TrafficControl{
		AreaID:           "A001",
		DailyCapacity:    10,
		WarningThreshold: 8,
		CurrentStatus:    models.TrafficNormal,
	})
	return NewVisitorService(store), store
}

func TestRegisterEntryAndExit(t *testing.T) {
	svc, store := newVisitorFixture(t)

	visitor, err := svc.RegisterEntry(context.Background(), "V001", "A001")
	require.NoError(t, err)
	assert.NotNil(t, visitor.EntryTime)
	assert.Nil(t, visitor.ExitTime)

	control, err := store.GetTrafficControl(context.Background(), "A001")
	require.NoError(t, err)
	assert.Equal(t, 1, control.CurrentVisitorCount)

	visitor, err = svc.RegisterExit(context.Background(), "V001", "A001")
	require.NoError(t, err)
	assert.NotNil(t, visitor.ExitTime)

	control, err = store.GetTrafficControl(context.Background(), "A001")
	require.NoError(t, err)
	assert.Equal(t, 0, control.CurrentVisitorCount)
}

func TestDoubleEntryRejected(t *testing.T) {
	svc, _ := newVisitorFixture(t)

	_, err := svc.RegisterEntry(context.Background(), "V001", "A001")
	require.NoError(t, err)

	_, err = svc.RegisterEntry(context.Background(), "V001", "A001")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestExitWithoutEntryRejected(t *testing.T) {
	svc, _ := newVisitorFixture(t)

	_, err := svc.RegisterExit(context.Background(), "V001", "A001")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReentryAfterExit(t *testing.T) {
	svc, _ := newVisitorFixture(t)

	_, err := svc.RegisterEntry(context.Background(), "V001", "A001")
	require.NoError(t, err)
	_, err = svc.RegisterExit(context.Background(), "V001", "A001")
	require.NoError(t, err)

	// a fresh entry clears the previous exit stamp
	visitor, err := svc.RegisterEntry(context.Background(), "V001", "A001")
	require.NoError(t, err)
	assert.Nil(t, visitor.ExitTime)
}

func TestTrafficStatusRecomputed(t *testing.T) {
	svc, store := newVisitorFixture(t)

	store.SeedTrafficControl(&models.TrafficControl{
		AreaID:              "A001",
		DailyCapacity:       10,
		WarningThreshold:    8,
		CurrentVisitorCount: 7,
		CurrentStatus:       models.TrafficNormal,
	})

	_, err := svc.RegisterEntry(context.Background(), "V001", "A001")
	require.NoError(t, err)

	control, err := store.GetTrafficControl(context.Background(), "A001")
	require.NoError(t, err)
	assert.Equal(t, 8, control.CurrentVisitorCount)
	assert.Equal(t, models.TrafficWarning, control.CurrentStatus)

	store.SeedTrafficControl(&models.TrafficControl{
		AreaID:              "A002",
		DailyCapacity:       10,
		WarningThreshold:    8,
		CurrentVisitorCount: 9,
		CurrentStatus:       models.TrafficWarning,
	})
	store.SeedVisitor(&models.Visitor{
		VisitorID:    "V002",
		VisitorName:  "Zhang Min",
		IDCardNumber: "110101199202024321",
		EntryMethod:  models.EntryOnSitePurchase,
	})

	_, err = svc.RegisterEntry(context.Background(), "V002", "A002")
	require.NoError(t, err)

	control, err = store.GetTrafficControl(context.Background(), "A002")
	require.NoError(t, err)
	assert.Equal(t, models.TrafficRestricted, control.CurrentStatus)
}

func TestExitNeverGoesNegative(t *testing.T) {
	svc, store := newVisitorFixture(t)

	entered := time.Now().Add(-time.Hour)
	store.SeedVisitor(&models.Visitor{
		VisitorID:    "V003",
		VisitorName:  "Chen Hao",
		IDCardNumber: "110101199303035678",
		EntryMethod:  models.EntryOnSitePurchase,
		EntryTime:    &entered,
	})

	// the area count is already zero; exit clamps instead of underflowing
	_, err := svc.RegisterExit(context.Background(), "V003", "A001")
	require.NoError(t, err)

	control, err := store.GetTrafficControl(context.Background(), "A001")
	require.NoError(t, err)
	assert.Equal(t, 0, control.CurrentVisitorCount)
}

func TestTrafficOverview(t *testing.T) {
	svc, store := newVisitorFixture(t)
	store.SeedTrafficControl(&models.TrafficControl{
		AreaID:              "A002",
		DailyCapacity:       100,
		WarningThreshold:    80,
		CurrentVisitorCount: 25,
		CurrentStatus:       models.TrafficNormal,
	})

	entries, err := svc.TrafficOverview(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entry, err := svc.AreaTraffic(context.Background(), "A002")
	require.NoError(t, err)
	assert.Equal(t, models.TrafficNormal, entry.CurrentStatus)
	assert.InDelta(t, 25.0, entry.UtilizationRate, 0.001)

	_, err = svc.AreaTraffic(context.Background(), "A999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
