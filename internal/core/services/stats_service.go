package services

import (
	"context"
	"time"

	"natpark-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// StatsService aggregates cross-module figures for the dashboard and the
// per-module statistics endpoints. It queries the database directly since
// every figure is a read-only aggregate.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new stats service
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// DashboardStats is the landing page summary
type DashboardStats struct {
	TotalSpecies        int64 `json:"total_species"`
	VisitorsInside      int64 `json:"visitors_inside"`
	OpenCases           int64 `json:"open_cases"`
	OngoingProjects     int64 `json:"ongoing_projects"`
	FaultDevices        int64 `json:"fault_devices"`
	TodayReservations   int64 `json:"today_reservations"`
	RestrictedAreas     int64 `json:"restricted_areas"`
	ActiveSurveillances int64 `json:"active_surveillances"`
}

// StatusCount is one status bucket of a grouped count
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Dashboard collects the landing page summary
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	db := s.db.WithContext(ctx)
	stats := &DashboardStats{}

	if err := db.Model(&models.Species{}).Count(&stats.TotalSpecies).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Visitor{}).
		Where("entry_time IS NOT NULL AND exit_time IS NULL").
		Count(&stats.VisitorsInside).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.IllegalBehavior{}).
		Where("handling_status <> ?", models.CaseClosed).
		Count(&stats.OpenCases).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.ResearchProject{}).
		Where("project_status = ?", models.ProjectOngoing).
		Count(&stats.OngoingProjects).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.MonitoringDevice{}).
		Where("operation_status <> ?", models.DeviceNormal).
		Count(&stats.FaultDevices).Error; err != nil {
		return nil, err
	}
	today := time.Now().Format("2006-01-02")
	if err := db.Model(&models.Reservation{}).
		Where("reservation_date = ? AND reservation_status = ?", today, models.ReservationConfirmed).
		Count(&stats.TodayReservations).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.TrafficControl{}).
		Where("current_status = ?", models.TrafficRestricted).
		Count(&stats.RestrictedAreas).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.SurveillancePoint{}).
		Where("device_status = ?", models.SurveillanceNormal).
		Count(&stats.ActiveSurveillances).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// BiodiversityStats summarizes species protection and recent sightings
type BiodiversityStats struct {
	SpeciesByProtection []StatusCount `json:"species_by_protection"`
	RecentRecords       int64         `json:"recent_records"`
	PendingRecords      int64         `json:"pending_records"`
}

// Biodiversity collects biodiversity statistics
func (s *StatsService) Biodiversity(ctx context.Context) (*BiodiversityStats, error) {
	db := s.db.WithContext(ctx)
	stats := &BiodiversityStats{}

	err := db.Model(&models.Species{}).
		Select("protection_level AS status, COUNT(*) AS count").
		Group("protection_level").
		Scan(&stats.SpeciesByProtection).Error
	if err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -30)
	if err := db.Model(&models.MonitoringRecord{}).
		Where("monitoring_time >= ?", since).
		Count(&stats.RecentRecords).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.MonitoringRecord{}).
		Where("data_status = ?", models.RecordPending).
		Count(&stats.PendingRecords).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// VisitorStats summarizes reservations and park load
type VisitorStats struct {
	ReservationsByStatus []StatusCount `json:"reservations_by_status"`
	VisitorsInside       int64         `json:"visitors_inside"`
	TodayEntries         int64         `json:"today_entries"`
}

// Visitors collects visitor statistics
func (s *StatsService) Visitors(ctx context.Context) (*VisitorStats, error) {
	db := s.db.WithContext(ctx)
	stats := &VisitorStats{}

	err := db.Model(&models.Reservation{}).
		Select("reservation_status AS status, COUNT(*) AS count").
		Group("reservation_status").
		Scan(&stats.ReservationsByStatus).Error
	if err != nil {
		return nil, err
	}
	if err := db.Model(&models.Visitor{}).
		Where("entry_time IS NOT NULL AND exit_time IS NULL").
		Count(&stats.VisitorsInside).Error; err != nil {
		return nil, err
	}
	midnight := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&models.Visitor{}).
		Where("entry_time >= ?", midnight).
		Count(&stats.TodayEntries).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// EnforcementStats summarizes cases and dispatch responsiveness
type EnforcementStats struct {
	CasesByStatus      []StatusCount `json:"cases_by_status"`
	PendingDispatches  int64         `json:"pending_dispatches"`
	AvgResponseSeconds float64       `json:"avg_response_seconds"`
}

// Enforcement collects enforcement statistics. The average response time is
// computed in Go because the interval arithmetic differs across MySQL modes.
func (s *StatsService) Enforcement(ctx context.Context) (*EnforcementStats, error) {
	db := s.db.WithContext(ctx)
	stats := &EnforcementStats{}

	err := db.Model(&models.IllegalBehavior{}).
		Select("handling_status AS status, COUNT(*) AS count").
		Group("handling_status").
		Scan(&stats.CasesByStatus).Error
	if err != nil {
		return nil, err
	}
	if err := db.Model(&models.EnforcementDispatch{}).
		Where("dispatch_status = ?", models.DispatchPending).
		Count(&stats.PendingDispatches).Error; err != nil {
		return nil, err
	}

	var dispatches []models.EnforcementDispatch
	if err := db.Where("response_time IS NOT NULL").Find(&dispatches).Error; err != nil {
		return nil, err
	}
	if len(dispatches) > 0 {
		var total float64
		for _, d := range dispatches {
			total += d.ResponseTime.Sub(d.DispatchTime).Seconds()
		}
		stats.AvgResponseSeconds = total / float64(len(dispatches))
	}
	return stats, nil
}

// ResearchStats summarizes projects and outputs
type ResearchStats struct {
	ProjectsByStatus   []StatusCount `json:"projects_by_status"`
	AchievementsByType []StatusCount `json:"achievements_by_type"`
	Collections        int64         `json:"collections"`
}

// Research collects research statistics
func (s *StatsService) Research(ctx context.Context) (*ResearchStats, error) {
	db := s.db.WithContext(ctx)
	stats := &ResearchStats{}

	err := db.Model(&models.ResearchProject{}).
		Select("project_status AS status, COUNT(*) AS count").
		Group("project_status").
		Scan(&stats.ProjectsByStatus).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&models.ResearchAchievement{}).
		Select("achievement_type AS status, COUNT(*) AS count").
		Group("achievement_type").
		Scan(&stats.AchievementsByType).Error
	if err != nil {
		return nil, err
	}
	if err := db.Model(&models.ResearchDataCollection{}).Count(&stats.Collections).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
