package models

import "time"

// MonitoringFrequency is how often an indicator is sampled.
type MonitoringFrequency string

const (
	FrequencyHourly MonitoringFrequency = "hourly"
	FrequencyDaily  MonitoringFrequency = "daily"
	FrequencyWeekly MonitoringFrequency = "weekly"
)

// MonitoringIndicator represents the monitoring_indicator table.
type MonitoringIndicator struct {
	IndicatorID         string              `gorm:"column:indicator_id;primaryKey;size:20" json:"indicator_id"`
	IndicatorName       string              `gorm:"size:50;index;not null" json:"indicator_name"`
	Unit                string              `gorm:"size:20;not null" json:"unit"`
	ThresholdUpper      *float64            `gorm:"type:decimal(10,2)" json:"threshold_upper,omitempty"`
	ThresholdLower      *float64            `gorm:"type:decimal(10,2)" json:"threshold_lower,omitempty"`
	MonitoringFrequency MonitoringFrequency `gorm:"size:10;not null" json:"monitoring_frequency"`
}

func (MonitoringIndicator) TableName() string {
	return "monitoring_indicator"
}

// DataQuality grades an environmental sample.
type DataQuality string

const (
	QualityExcellent DataQuality = "excellent"
	QualityGood      DataQuality = "good"
	QualityFair      DataQuality = "fair"
	QualityPoor      DataQuality = "poor"
)

// EnvironmentalData represents the environmental_data table.
type EnvironmentalData struct {
	DataID          string      `gorm:"column:data_id;primaryKey;size:30" json:"data_id"`
	IndicatorID     string      `gorm:"size:20;index;not null" json:"indicator_id"`
	DeviceID        string      `gorm:"size:20;index;not null" json:"device_id"`
	CollectionTime  time.Time   `gorm:"index;not null" json:"collection_time"`
	MonitoringValue float64     `gorm:"type:decimal(10,2);not null" json:"monitoring_value"`
	AreaID          string      `gorm:"size:20;index;not null" json:"area_id"`
	DataQuality     DataQuality `gorm:"size:10;index;not null" json:"data_quality"`

	Indicator MonitoringIndicator `gorm:"foreignKey:IndicatorID" json:"-"`
	Device    MonitoringDevice    `gorm:"foreignKey:DeviceID" json:"-"`
	Area      FunctionalArea      `gorm:"foreignKey:AreaID" json:"-"`
}

func (EnvironmentalData) TableName() string {
	return "environmental_data"
}
