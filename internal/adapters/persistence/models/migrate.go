package models

import "gorm.io/gorm"

// AutoMigrate creates or updates every table. Ordered so foreign key targets
// exist before their referrers.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&FunctionalArea{},
		&User{},
		&UserSession{},
		&Species{},
		&Habitat{},
		&HabitatSpecies{},
		&MonitoringDevice{},
		&MonitoringRecord{},
		&MonitoringIndicator{},
		&EnvironmentalData{},
		&Visitor{},
		&Reservation{},
		&VisitorTrajectory{},
		&TrafficControl{},
		&LawEnforcer{},
		&SurveillancePoint{},
		&IllegalBehavior{},
		&EnforcementDispatch{},
		&ResearchProject{},
		&ResearchDataCollection{},
		&ResearchAchievement{},
	)
}
