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

func newEnforcementFixture(t *testing.T) (*EnforcementService, *repositories.MemoryEnforcementStore) {
	t.Helper()
	store := repositories.NewMemoryEnforcementStore()
	store.SeedEnforcer(&models.LawEnforcer{
		EnforcerID:           "E001",
		EnforcerName:         "Ranger Wu",
		Department:           "Patrol",
		EnforcementAuthority: "park-wide",
	})
	return NewEnforcementService(store), store
}

func seedOpenCase(store *repositories.MemoryEnforcementStore, id string, status models.CaseStatus) {
	store.SeedCase(&models.IllegalBehavior{
		RecordID:       id,
		BehaviorType:   "illegal-camping",
		OccurrenceTime: time.Now().Add(-2 * time.Hour),
		AreaID:         "A001",
		EvidencePath:   "/evidence/" + id + ".jpg",
		HandlingStatus: status,
	})
}

func TestHandleCase(t *testing.T) {
	svc, store := newEnforcementFixture(t)
	seedOpenCase(store, "C001", models.CaseUnhandled)

	record, err := svc.HandleCase(context.Background(), "C001", &HandleCaseInput{
		EnforcerID:     "E001",
		HandlingResult: "warning issued",
		PenaltyBasis:   "regulation 12",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CaseClosed, record.HandlingStatus)
	require.NotNil(t, record.EnforcerID)
	assert.Equal(t, "E001", *record.EnforcerID)
	assert.Equal(t, "warning issued", record.HandlingResult)
}

func TestHandleClosedCaseRejected(t *testing.T) {
	svc, store := newEnforcementFixture(t)
	seedOpenCase(store, "C001", models.CaseClosed)

	_, err := svc.HandleCase(context.Background(), "C001", &HandleCaseInput{
		EnforcerID:     "E001",
		HandlingResult: "second attempt",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyHandled)

	// the record is untouched
	record, err := store.GetCase(context.Background(), "C001")
	require.NoError(t, err)
	assert.Empty(t, record.HandlingResult)
	assert.Nil(t, record.EnforcerID)
}

func TestHandleCaseUnknownEnforcer(t *testing.T) {
	svc, store := newEnforcementFixture(t)
	seedOpenCase(store, "C001", models.CaseUnhandled)

	_, err := svc.HandleCase(context.Background(), "C001", &HandleCaseInput{
		EnforcerID:     "E999",
		HandlingResult: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateDispatchMovesCaseInProgress(t *testing.T) {
	svc, store := newEnforcementFixture(t)
	seedOpenCase(store, "C001", models.CaseUnhandled)

	dispatch, err := svc.CreateDispatch(context.Background(), &CreateDispatchInput{
		RecordID:   "C001",
		EnforcerID: "E001",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DispatchPending, dispatch.DispatchStatus)
	assert.NotEmpty(t, dispatch.DispatchID)
	assert.False(t, dispatch.DispatchTime.IsZero())

	record, err := store.GetCase(context.Background(), "C001")
	require.NoError(t, err)
	assert.Equal(t, models.CaseInProgress, record.HandlingStatus)
}

func TestCreateDispatchClosedCaseRejected(t *testing.T) {
	svc, store := newEnforcementFixture(t)
	seedOpenCase(store, "C001", models.CaseClosed)

	_, err := svc.CreateDispatch(context.Background(), &CreateDispatchInput{
		RecordID:   "C001",
		EnforcerID: "E001",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyHandled)
}

func TestDispatchLifecycle(t *testing.T) {
	svc, store := newEnforcementFixture(t)
	seedOpenCase(store, "C001", models.CaseUnhandled)

	dispatch, err := svc.CreateDispatch(context.Background(), &CreateDispatchInput{
		RecordID:   "C001",
		EnforcerID: "E001",
	})
	require.NoError(t, err)

	responded, err := svc.RespondDispatch(context.Background(), dispatch.DispatchID, nil)
	require.NoError(t, err)
	assert.Equal(t, models.DispatchAssigned, responded.DispatchStatus)
	require.NotNil(t, responded.ResponseTime)
	assert.False(t, responded.ResponseTime.Before(responded.DispatchTime))

	completed, err := svc.CompleteDispatch(context.Background(), dispatch.DispatchID, nil)
	require.NoError(t, err)
	assert.Equal(t, models.DispatchCompleted, completed.DispatchStatus)
	require.NotNil(t, completed.CompletionTime)
	assert.False(t, completed.CompletionTime.Before(*completed.ResponseTime))
}

func TestRespondBeforeDispatchTimeRejected(t *testing.T) {
	svc, store := newEnforcementFixture(t)
	store.SeedDispatch(&models.EnforcementDispatch{
		DispatchID:     "D001",
		RecordID:       "C001",
		EnforcerID:     "E001",
		DispatchTime:   time.Now(),
		DispatchStatus: models.DispatchPending,
	})

	early := time.Now().Add(-time.Hour)
	_, err := svc.RespondDispatch(context.Background(), "D001", &early)
	assert.ErrorIs(t, err, domain.ErrInvalidOrder)

	// still pending after the rejection
	dispatch, err := store.GetDispatch(context.Background(), "D001")
	require.NoError(t, err)
	assert.Equal(t, models.DispatchPending, dispatch.DispatchStatus)
	assert.Nil(t, dispatch.ResponseTime)
}

func TestCompleteBeforeResponseTimeRejected(t *testing.T) {
	svc, store := newEnforcementFixture(t)
	responseTime := time.Now()
	store.SeedDispatch(&models.EnforcementDispatch{
		DispatchID:     "D001",
		RecordID:       "C001",
		EnforcerID:     "E001",
		DispatchTime:   responseTime.Add(-time.Hour),
		ResponseTime:   &responseTime,
		DispatchStatus: models.DispatchAssigned,
	})

	early := responseTime.Add(-30 * time.Minute)
	_, err := svc.CompleteDispatch(context.Background(), "D001", &early)
	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
}

func TestCompletePendingDispatchRejected(t *testing.T) {
	svc, store := newEnforcementFixture(t)
	store.SeedDispatch(&models.EnforcementDispatch{
		DispatchID:     "D001",
		RecordID:       "C001",
		EnforcerID:     "E001",
		DispatchTime:   time.Now(),
		DispatchStatus: models.DispatchPending,
	})

	// no skipping the assigned step
	_, err := svc.CompleteDispatch(context.Background(), "D001", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCompletedDispatchIsTerminal(t *testing.T) {
	svc, store := newEnforcementFixture(t)
	now := time.Now()
	store.SeedDispatch(&models.EnforcementDispatch{
		DispatchID:     "D001",
		RecordID:       "C001",
		EnforcerID:     "E001",
		DispatchTime:   now.Add(-2 * time.Hour),
		ResponseTime:   &now,
		CompletionTime: &now,
		DispatchStatus: models.DispatchCompleted,
	})

	_, err := svc.RespondDispatch(context.Background(), "D001", nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)

	_, err = svc.CompleteDispatch(context.Background(), "D001", nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
}
