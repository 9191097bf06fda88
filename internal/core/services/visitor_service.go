package services

import (
	"context"
	"errors"
	"log"
	"time"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/domain"
)

// VisitorService handles park entry, exit and area traffic
type VisitorService struct {
	store repositories.ReservationStore
}

// NewVisitorService creates a new visitor service
func NewVisitorService(store repositories.ReservationStore) *VisitorService {
	return &VisitorService{store: store}
}

// TrafficStatusEntry is one area's load in the traffic overview
type TrafficStatusEntry struct {
	AreaID              string               `json:"area_id"`
	DailyCapacity       int                  `json:"daily_capacity"`
	CurrentVisitorCount int                  `json:"current_visitor_count"`
	WarningThreshold    int                  `json:"warning_threshold"`
	CurrentStatus       models.TrafficStatus `json:"current_status"`
	UtilizationRate     float64              `json:"utilization_rate"`
}

// RegisterEntry stamps a visitor's entry and raises the area's visitor
// count. Entering twice without an exit is rejected.
func (s *VisitorService) RegisterEntry(ctx context.Context, visitorID, areaID string) (*models.Visitor, error) {
	visitor, err := s.store.GetVisitor(ctx, visitorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if visitor.EntryTime != nil && visitor.ExitTime == nil {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	visitor.EntryTime = &now
	visitor.ExitTime = nil
	if err := s.store.UpdateVisitor(ctx, visitor); err != nil {
		return nil, err
	}

	if err := s.adjustTraffic(ctx, areaID, 1); err != nil {
		return nil, err
	}

	log.Printf("✅ Visitor entered: %s (area %s)", visitor.VisitorID, areaID)
	return visitor, nil
}

// RegisterExit stamps a visitor's exit and lowers the area's visitor count.
// Exiting without a prior entry is rejected.
func (s *VisitorService) RegisterExit(ctx context.Context, visitorID, areaID string) (*models.Visitor, error) {
	visitor, err := s.store.GetVisitor(ctx, visitorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if visitor.EntryTime == nil || visitor.ExitTime != nil {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	visitor.ExitTime = &now
	if err := s.store.UpdateVisitor(ctx, visitor); err != nil {
		return nil, err
	}

	if err := s.adjustTraffic(ctx, areaID, -1); err != nil {
		return nil, err
	}
	return visitor, nil
}

// adjustTraffic shifts an area's current count and recomputes its status.
// The count never goes below zero.
func (s *VisitorService) adjustTraffic(ctx context.Context, areaID string, delta int) error {
	control, err := s.store.GetTrafficControl(ctx, areaID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	control.CurrentVisitorCount += delta
	if control.CurrentVisitorCount < 0 {
		control.CurrentVisitorCount = 0
	}
	control.CurrentStatus = control.DerivedStatus()
	return s.store.SaveTrafficControl(ctx, control)
}

// AreaTraffic returns one area's current traffic state
func (s *VisitorService) AreaTraffic(ctx context.Context, areaID string) (*TrafficStatusEntry, error) {
	control, err := s.store.GetTrafficControl(ctx, areaID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return trafficEntry(control), nil
}

// TrafficOverview returns every area's current traffic state
func (s *VisitorService) TrafficOverview(ctx context.Context) ([]*TrafficStatusEntry, error) {
	controls, err := s.store.ListTrafficControls(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]*TrafficStatusEntry, 0, len(controls))
	for _, control := range controls {
		entries = append(entries, trafficEntry(control))
	}
	return entries, nil
}

func trafficEntry(control *models.TrafficControl) *TrafficStatusEntry {
	return &TrafficStatusEntry{
		AreaID:              control.AreaID,
		DailyCapacity:       control.DailyCapacity,
		CurrentVisitorCount: control.CurrentVisitorCount,
		WarningThreshold:    control.WarningThreshold,
		CurrentStatus:       control.DerivedStatus(),
		UtilizationRate:     control.UtilizationRate(),
	}
}
