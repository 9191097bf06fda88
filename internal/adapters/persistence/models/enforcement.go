package models

import "time"

// LawEnforcer represents the law_enforcer table.
type LawEnforcer struct {
	EnforcerID           string `gorm:"column:enforcer_id;primaryKey;size:20" json:"enforcer_id"`
	EnforcerName         string `gorm:"size:50;not null" json:"enforcer_name"`
	Department           string `gorm:"size:50;index;not null" json:"department"`
	EnforcementAuthority string `gorm:"size:50;not null" json:"enforcement_authority"`
	ContactPhone         string `gorm:"size:20" json:"contact_phone"`
	EquipmentID          string `gorm:"size:20" json:"equipment_id,omitempty"`
}

func (LawEnforcer) TableName() string {
	return "law_enforcer"
}

// SurveillanceStatus is the operational state of a camera point.
type SurveillanceStatus string

const (
	SurveillanceNormal SurveillanceStatus = "normal"
	SurveillanceFault  SurveillanceStatus = "fault"
)

// SurveillancePoint represents the surveillance_point table.
type SurveillancePoint struct {
	MonitorID         string             `gorm:"column:monitor_id;primaryKey;size:20" json:"monitor_id"`
	AreaID            string             `gorm:"size:20;index;not null" json:"area_id"`
	LocationLongitude float64            `gorm:"type:decimal(10,6);not null" json:"location_longitude"`
	LocationLatitude  float64            `gorm:"type:decimal(10,6);not null" json:"location_latitude"`
	MonitoringRange   string             `gorm:"type:text" json:"monitoring_range,omitempty"`
	DeviceStatus      SurveillanceStatus `gorm:"size:10;index;not null" json:"device_status"`
	StoragePeriodDays int                `gorm:"not null;default:90" json:"storage_period_days"`

	Area FunctionalArea `gorm:"foreignKey:AreaID" json:"-"`
}

func (SurveillancePoint) TableName() string {
	return "surveillance_point"
}

// CaseStatus is the handling state of an illegal-behavior case.
type CaseStatus string

const (
	CaseUnhandled  CaseStatus = "unhandled"
	CaseInProgress CaseStatus = "in-progress"
	CaseClosed     CaseStatus = "closed"
)

// IllegalBehavior represents the illegal_behavior table. A case is created
// unhandled and only the handle operation closes it; closed is terminal.
type IllegalBehavior struct {
	RecordID       string     `gorm:"column:record_id;primaryKey;size:30" json:"record_id"`
	BehaviorType   string     `gorm:"size:50;not null" json:"behavior_type"`
	OccurrenceTime time.Time  `gorm:"index;not null" json:"occurrence_time"`
	AreaID         string     `gorm:"size:20;index;not null" json:"area_id"`
	EvidencePath   string     `gorm:"size:255;not null" json:"evidence_path"`
	HandlingStatus CaseStatus `gorm:"size:12;index;not null;default:'unhandled'" json:"handling_status"`
	EnforcerID     *string    `gorm:"size:20;index" json:"enforcer_id,omitempty"`
	HandlingResult string     `gorm:"type:text" json:"handling_result,omitempty"`
	PenaltyBasis   string     `gorm:"type:text" json:"penalty_basis,omitempty"`

	Area     FunctionalArea `gorm:"foreignKey:AreaID" json:"-"`
	Enforcer *LawEnforcer   `gorm:"foreignKey:EnforcerID" json:"-"`
}

func (IllegalBehavior) TableName() string {
	return "illegal_behavior"
}

// DispatchStatus is the state of an enforcement dispatch. Transitions are
// linear: pending-response -> assigned -> completed, no skip, no rollback.
type DispatchStatus string

const (
	DispatchPending   DispatchStatus = "pending-response"
	DispatchAssigned  DispatchStatus = "assigned"
	DispatchCompleted DispatchStatus = "completed"
)

// CanTransitionTo reports whether the linear dispatch lifecycle permits
// moving from s to next.
func (s DispatchStatus) CanTransitionTo(next DispatchStatus) bool {
	switch s {
	case DispatchPending:
		return next == DispatchAssigned
	case DispatchAssigned:
		return next == DispatchCompleted
	case DispatchCompleted:
		return false
	}
	return false
}

// EnforcementDispatch represents the enforcement_dispatch table.
// Invariant: response time >= dispatch time, completion time >= response time.
type EnforcementDispatch struct {
	DispatchID     string         `gorm:"column:dispatch_id;primaryKey;size:30" json:"dispatch_id"`
	RecordID       string         `gorm:"size:30;index;not null" json:"record_id"`
	EnforcerID     string         `gorm:"size:20;index;not null" json:"enforcer_id"`
	DispatchTime   time.Time      `gorm:"index;not null" json:"dispatch_time"`
	ResponseTime   *time.Time     `json:"response_time,omitempty"`
	CompletionTime *time.Time     `json:"completion_time,omitempty"`
	DispatchStatus DispatchStatus `gorm:"size:20;index;not null;default:'pending-response'" json:"dispatch_status"`

	Record   IllegalBehavior `gorm:"foreignKey:RecordID" json:"-"`
	Enforcer LawEnforcer     `gorm:"foreignKey:EnforcerID" json:"-"`
}

func (EnforcementDispatch) TableName() string {
	return "enforcement_dispatch"
}
