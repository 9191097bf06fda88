package services

import (
	"context"
	"errors"
	"log"
	"time"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/domain"

	"github.com/google/uuid"
)

// EnforcementService drives the case handling and dispatch workflows
type EnforcementService struct {
	store repositories.EnforcementStore
}

// NewEnforcementService creates a new enforcement service
func NewEnforcementService(store repositories.EnforcementStore) *EnforcementService {
	return &EnforcementService{store: store}
}

// HandleCaseInput represents case handling input
type HandleCaseInput struct {
	EnforcerID     string `json:"enforcer_id" validate:"required"`
	HandlingResult string `json:"handling_result" validate:"required"`
	PenaltyBasis   string `json:"penalty_basis"`
}

// CreateDispatchInput represents dispatch creation input
type CreateDispatchInput struct {
	RecordID   string `json:"record_id" validate:"required"`
	EnforcerID string `json:"enforcer_id" validate:"required"`
}

// HandleCase closes an open case with its outcome. Closed is terminal, so
// handling a closed case is rejected without touching the record.
func (s *EnforcementService) HandleCase(ctx context.Context, recordID string, input *HandleCaseInput) (*models.IllegalBehavior, error) {
	record, err := s.store.GetCase(ctx, recordID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if record.HandlingStatus == models.CaseClosed {
		return nil, domain.ErrAlreadyHandled
	}

	if _, err := s.store.GetEnforcer(ctx, input.EnforcerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	enforcerID := input.EnforcerID
	record.HandlingStatus = models.CaseClosed
	record.EnforcerID = &enforcerID
	record.HandlingResult = input.HandlingResult
	record.PenaltyBasis = input.PenaltyBasis
	if err := s.store.UpdateCase(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("✅ Case closed: %s by %s", record.RecordID, enforcerID)
	return record, nil
}

// CreateDispatch opens a pending dispatch against a case. Dispatching an
// unhandled case moves it to in-progress.
func (s *EnforcementService) CreateDispatch(ctx context.Context, input *CreateDispatchInput) (*models.EnforcementDispatch, error) {
	record, err := s.store.GetCase(ctx, input.RecordID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if record.HandlingStatus == models.CaseClosed {
		return nil, domain.ErrAlreadyHandled
	}
	if _, err := s.store.GetEnforcer(ctx, input.EnforcerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	dispatch := &models.EnforcementDispatch{
		DispatchID:     "D" + uuid.New().String()[:12],
		RecordID:       input.RecordID,
		EnforcerID:     input.EnforcerID,
		DispatchTime:   time.Now(),
		DispatchStatus: models.DispatchPending,
	}
	if err := s.store.CreateDispatch(ctx, dispatch); err != nil {
		return nil, err
	}

	if record.HandlingStatus == models.CaseUnhandled {
		record.HandlingStatus = models.CaseInProgress
		if err := s.store.UpdateCase(ctx, record); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ Dispatch created: %s for case %s", dispatch.DispatchID, record.RecordID)
	return dispatch, nil
}

// RespondDispatch marks a pending dispatch as assigned. The response time
// defaults to now and must not precede the dispatch time.
func (s *EnforcementService) RespondDispatch(ctx context.Context, dispatchID string, responseTime *time.Time) (*models.EnforcementDispatch, error) {
	dispatch, err := s.store.GetDispatch(ctx, dispatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if dispatch.DispatchStatus == models.DispatchCompleted {
		return nil, domain.ErrAlreadyCompleted
	}
	if !dispatch.DispatchStatus.CanTransitionTo(models.DispatchAssigned) {
		return nil, domain.ErrInvalidTransition
	}

	at := time.Now()
	if responseTime != nil {
		at = *responseTime
	}
	if at.Before(dispatch.DispatchTime) {
		return nil, domain.ErrInvalidOrder
	}

	dispatch.ResponseTime = &at
	dispatch.DispatchStatus = models.DispatchAssigned
	if err := s.store.UpdateDispatch(ctx, dispatch); err != nil {
		return nil, err
	}
	return dispatch, nil
}

// CompleteDispatch finishes an assigned dispatch. The completion time
// defaults to now and must not precede the response time.
func (s *EnforcementService) CompleteDispatch(ctx context.Context, dispatchID string, completionTime *time.Time) (*models.EnforcementDispatch, error) {
	dispatch, err := s.store.GetDispatch(ctx, dispatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if dispatch.DispatchStatus == models.DispatchCompleted {
		return nil, domain.ErrAlreadyCompleted
	}
	if !dispatch.DispatchStatus.CanTransitionTo(models.DispatchCompleted) {
		return nil, domain.ErrInvalidTransition
	}

	at := time.Now()
	if completionTime != nil {
		at = *completionTime
	}
	if dispatch.ResponseTime != nil && at.Before(*dispatch.ResponseTime) {
		return nil, domain.ErrInvalidOrder
	}

	dispatch.CompletionTime = &at
	dispatch.DispatchStatus = models.DispatchCompleted
	if err := s.store.UpdateDispatch(ctx, dispatch); err != nil {
		return nil, err
	}

	log.Printf("✅ Dispatch completed: %s", dispatch.DispatchID)
	return dispatch, nil
}
