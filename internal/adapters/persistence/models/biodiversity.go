package models

import "time"

// ProtectionLevel classifies a species' legal protection.
type ProtectionLevel string

const (
	ProtectionNational1 ProtectionLevel = "national-1"
	ProtectionNational2 ProtectionLevel = "national-2"
	ProtectionNone      ProtectionLevel = "none"
)

// Species represents the species table.
type Species struct {
	SpeciesID          string          `gorm:"column:species_id;primaryKey;size:20" json:"species_id"`
	CommonName         string          `gorm:"size:100;index;not null" json:"common_name"`
	LatinName          string          `gorm:"size:100;not null" json:"latin_name"`
	Kingdom            string          `gorm:"size:50;not null" json:"kingdom"`
	Phylum             string          `gorm:"size:50;not null" json:"phylum"`
	Class              string          `gorm:"column:class;size:50;not null" json:"class"`
	OrderName          string          `gorm:"size:50;not null" json:"order_name"`
	Family             string          `gorm:"size:50;not null" json:"family"`
	Genus              string          `gorm:"size:50;not null" json:"genus"`
	SpeciesName        string          `gorm:"size:50;not null" json:"species_name"`
	ProtectionLevel    ProtectionLevel `gorm:"size:20;index;not null" json:"protection_level"`
	HabitatDescription string          `gorm:"type:text" json:"habitat_description,omitempty"`
	DistributionRange  string          `gorm:"type:text" json:"distribution_range,omitempty"`
}

func (Species) TableName() string {
	return "species"
}

// EcologyType classifies a habitat.
type EcologyType string

const (
	EcologyForest    EcologyType = "forest"
	EcologyWetland   EcologyType = "wetland"
	EcologyGrassland EcologyType = "grassland"
	EcologyOther     EcologyType = "other"
)

// Habitat represents the habitat table.
type Habitat struct {
	HabitatID           string      `gorm:"column:habitat_id;primaryKey;size:20" json:"habitat_id"`
	AreaName            string      `gorm:"size:100;not null" json:"area_name"`
	EcologyType         EcologyType `gorm:"size:20;index;not null" json:"ecology_type"`
	AreaSize            float64     `gorm:"type:decimal(10,2);not null" json:"area_size"`
	CoreProtectionRange string      `gorm:"type:text" json:"core_protection_range,omitempty"`
	SuitabilityScore    *float64    `gorm:"type:decimal(3,1)" json:"suitability_score,omitempty"`
}

func (Habitat) TableName() string {
	return "habitat"
}

// HabitatSpecies links habitats and species.
type HabitatSpecies struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	HabitatID      string `gorm:"size:20;uniqueIndex:idx_habitat_species;not null" json:"habitat_id"`
	SpeciesID      string `gorm:"size:20;uniqueIndex:idx_habitat_species;not null" json:"species_id"`
	IsMajorSpecies bool   `gorm:"not null;default:false" json:"is_major_species"`

	Habitat Habitat `gorm:"foreignKey:HabitatID" json:"-"`
	Species Species `gorm:"foreignKey:SpeciesID" json:"-"`
}

func (HabitatSpecies) TableName() string {
	return "habitat_species"
}

// DeviceStatus is the operational state of a monitoring device.
type DeviceStatus string

const (
	DeviceNormal  DeviceStatus = "normal"
	DeviceFault   DeviceStatus = "fault"
	DeviceOffline DeviceStatus = "offline"
)

// Valid reports whether s is a known device status.
func (s DeviceStatus) Valid() bool {
	switch s {
	case DeviceNormal, DeviceFault, DeviceOffline:
		return true
	}
	return false
}

// MonitoringDevice represents the monitoring_device table.
type MonitoringDevice struct {
	DeviceID              string       `gorm:"column:device_id;primaryKey;size:20" json:"device_id"`
	DeviceType            string       `gorm:"size:50;index;not null" json:"device_type"`
	DeploymentAreaID      string       `gorm:"size:20;index;not null" json:"deployment_area_id"`
	InstallationDate      time.Time    `gorm:"type:date;not null" json:"installation_date"`
	CalibrationCycleDays  int          `gorm:"not null" json:"calibration_cycle_days"`
	OperationStatus       DeviceStatus `gorm:"size:10;index;not null" json:"operation_status"`
	CommunicationProtocol string       `gorm:"size:50;not null" json:"communication_protocol"`
	LastCalibrationDate   *time.Time   `gorm:"type:date" json:"last_calibration_date,omitempty"`

	DeploymentArea FunctionalArea `gorm:"foreignKey:DeploymentAreaID" json:"-"`
}

func (MonitoringDevice) TableName() string {
	return "monitoring_device"
}

// MonitoringMethod is how a sighting was recorded.
type MonitoringMethod string

const (
	MethodInfraredCamera MonitoringMethod = "infrared-camera"
	MethodPatrol         MonitoringMethod = "patrol"
	MethodDrone          MonitoringMethod = "drone"
)

// RecordStatus marks whether a monitoring record has been verified.
type RecordStatus string

const (
	RecordValid   RecordStatus = "valid"
	RecordPending RecordStatus = "pending"
)

// MonitoringRecord represents the monitoring_record table.
type MonitoringRecord struct {
	RecordID            string           `gorm:"column:record_id;primaryKey;size:30" json:"record_id"`
	SpeciesID           string           `gorm:"size:20;index;not null" json:"species_id"`
	DeviceID            string           `gorm:"size:20;index;not null" json:"device_id"`
	MonitoringTime      time.Time        `gorm:"index;not null" json:"monitoring_time"`
	LocationLongitude   float64          `gorm:"type:decimal(10,6);not null" json:"location_longitude"`
	LocationLatitude    float64          `gorm:"type:decimal(10,6);not null" json:"location_latitude"`
	MonitoringMethod    MonitoringMethod `gorm:"size:20;not null" json:"monitoring_method"`
	ImagePath           string           `gorm:"size:255" json:"image_path,omitempty"`
	Quantity            *int             `json:"quantity,omitempty"`
	BehaviorDescription string           `gorm:"type:text" json:"behavior_description,omitempty"`
	RecorderID          string           `gorm:"size:20;index;not null" json:"recorder_id"`
	DataStatus          RecordStatus     `gorm:"size:10;index;not null;default:'pending'" json:"data_status"`

	Species  Species          `gorm:"foreignKey:SpeciesID" json:"-"`
	Device   MonitoringDevice `gorm:"foreignKey:DeviceID" json:"-"`
	Recorder User             `gorm:"foreignKey:RecorderID" json:"-"`
}

func (MonitoringRecord) TableName() string {
	return "monitoring_record"
}
