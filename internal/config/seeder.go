package config

import (
	"log"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/core/domain"
	"natpark-backend/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding for development environments.
// Every seed is idempotent; rows that already exist are left alone.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedUsers(); err != nil {
		return err
	}
	if err := s.seedAreas(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedUsers creates one account per role for development and testing.
// The password of each account is its username followed by 123.
func (s *Seeder) seedUsers() error {
	seeds := []struct {
		ID       string
		Username string
		RealName string
		Role     domain.Role
	}{
		{"U00000001", "admin", "System Administrator", domain.RoleSystemAdmin},
		{"U00000002", "monitor", "Field Monitor", domain.RoleMonitor},
		{"U00000003", "analyst", "Data Analyst", domain.RoleAnalyst},
		{"U00000004", "visitor_mgr", "Visitor Manager", domain.RoleVisitorManager},
		{"U00000005", "officer", "Enforcement Officer", domain.RoleEnforcementOfficer},
		{"U00000006", "researcher", "Research Lead", domain.RoleResearcher},
		{"U00000007", "technician", "Device Technician", domain.RoleTechnician},
		{"U00000008", "park_mgr", "Park Manager", domain.RoleParkManager},
	}

	for _, seed := range seeds {
		var count int64
		if err := s.db.Model(&models.User{}).Where("username = ?", seed.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		user := &models.User{
			UserID:        seed.ID,
			Username:      seed.Username,
			PasswordHash:  password.Hash(seed.Username + "123"),
			RealName:      seed.RealName,
			RoleType:      string(seed.Role),
			AccountStatus: models.AccountActive,
		}
		if err := s.db.Create(user).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded user: %s (%s)", user.Username, user.RoleType)
	}
	return nil
}

// seedAreas creates the three functional zones plus their traffic rows
func (s *Seeder) seedAreas() error {
	areas := []models.FunctionalArea{
		{AreaID: "A001", AreaName: "Core Conservation Zone", AreaType: models.AreaCore, AreaSize: 1250.50},
		{AreaID: "A002", AreaName: "Buffer Zone", AreaType: models.AreaBuffer, AreaSize: 830.25},
		{AreaID: "A003", AreaName: "Experimental Zone", AreaType: models.AreaExperimental, AreaSize: 412.75},
	}
	controls := []models.TrafficControl{
		{AreaID: "A001", DailyCapacity: 200, WarningThreshold: 160, CurrentStatus: models.TrafficNormal},
		{AreaID: "A002", DailyCapacity: 1000, WarningThreshold: 800, CurrentStatus: models.TrafficNormal},
		{AreaID: "A003", DailyCapacity: 500, WarningThreshold: 400, CurrentStatus: models.TrafficNormal},
	}

	for _, area := range areas {
		var count int64
		if err := s.db.Model(&models.FunctionalArea{}).Where("area_id = ?", area.AreaID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.db.Create(&area).Error; err != nil {
			return err
		}
	}
	for _, control := range controls {
		var count int64
		if err := s.db.Model(&models.TrafficControl{}).Where("area_id = ?", control.AreaID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.db.Create(&control).Error; err != nil {
			return err
		}
	}
	return nil
}
