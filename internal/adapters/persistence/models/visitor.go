package models

import "time"

// EntryMethod is how a visitor entered the park.
type EntryMethod string

const (
	EntryOnlineReservation EntryMethod = "online-reservation"
	EntryOnSitePurchase    EntryMethod = "onsite-purchase"
)

// Visitor represents the visitor table.
type Visitor struct {
	VisitorID    string      `gorm:"column:visitor_id;primaryKey;size:20" json:"visitor_id"`
	VisitorName  string      `gorm:"size:50;not null" json:"visitor_name"`
	IDCardNumber string      `gorm:"uniqueIndex;size:18;not null" json:"id_card_number"`
	ContactPhone string      `gorm:"size:20" json:"contact_phone"`
	EntryTime    *time.Time  `gorm:"index" json:"entry_time,omitempty"`
	ExitTime     *time.Time  `json:"exit_time,omitempty"`
	EntryMethod  EntryMethod `gorm:"size:20;not null" json:"entry_method"`
}

func (Visitor) TableName() string {
	return "visitor"
}

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// PaymentStatus marks whether a reservation was paid.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

// Reservation represents the reservation table.
type Reservation struct {
	ReservationID     string            `gorm:"column:reservation_id;primaryKey;size:30" json:"reservation_id"`
	VisitorID         string            `gorm:"size:20;index;not null" json:"visitor_id"`
	ReservationDate   time.Time         `gorm:"type:date;index;not null" json:"reservation_date"`
	EntryTimeSlot     string            `gorm:"size:20" json:"entry_time_slot"`
	PartySize         int               `gorm:"not null" json:"party_size"`
	ReservationStatus ReservationStatus `gorm:"size:10;index;not null;default:'confirmed'" json:"reservation_status"`
	TicketAmount      float64           `gorm:"type:decimal(10,2);not null" json:"ticket_amount"`
	PaymentStatus     PaymentStatus     `gorm:"size:10;not null" json:"payment_status"`

	Visitor Visitor `gorm:"foreignKey:VisitorID" json:"-"`
}

func (Reservation) TableName() string {
	return "reservation"
}

// VisitorTrajectory represents the visitor_trajectory table.
type VisitorTrajectory struct {
	TrajectoryID      string    `gorm:"column:trajectory_id;primaryKey;size:30" json:"trajectory_id"`
	VisitorID         string    `gorm:"size:20;index;not null" json:"visitor_id"`
	TrackingTime      time.Time `gorm:"index;not null" json:"tracking_time"`
	LocationLongitude float64   `gorm:"type:decimal(10,6);not null" json:"location_longitude"`
	LocationLatitude  float64   `gorm:"type:decimal(10,6);not null" json:"location_latitude"`
	AreaID            string    `gorm:"size:20;index;not null" json:"area_id"`
	OutOfRoute        bool      `gorm:"not null;default:false" json:"out_of_route"`

	Visitor Visitor        `gorm:"foreignKey:VisitorID" json:"-"`
	Area    FunctionalArea `gorm:"foreignKey:AreaID" json:"-"`
}

func (VisitorTrajectory) TableName() string {
	return "visitor_trajectory"
}

// TrafficStatus is the advisory load state of an area.
type TrafficStatus string

const (
	TrafficNormal     TrafficStatus = "normal"
	TrafficWarning    TrafficStatus = "warning"
	TrafficRestricted TrafficStatus = "restricted"
)

// TrafficControl represents the traffic_control table, one row per
// functional area.
type TrafficControl struct {
	AreaID              string        `gorm:"column:area_id;primaryKey;size:20" json:"area_id"`
	DailyCapacity       int           `gorm:"not null" json:"daily_capacity"`
	CurrentVisitorCount int           `gorm:"not null;default:0" json:"current_visitor_count"`
	WarningThreshold    int           `gorm:"not null" json:"warning_threshold"`
	CurrentStatus       TrafficStatus `gorm:"size:10;index;not null;default:'normal'" json:"current_status"`

	Area FunctionalArea `gorm:"foreignKey:AreaID" json:"-"`
}

func (TrafficControl) TableName() string {
	return "traffic_control"
}

// DerivedStatus recomputes the advisory status from the current count. The
// stored status is a cache of this value; readers should trust the
// computation, not the column.
func (t *TrafficControl) DerivedStatus() TrafficStatus {
	switch {
	case t.DailyCapacity > 0 && t.CurrentVisitorCount >= t.DailyCapacity:
		return TrafficRestricted
	case t.CurrentVisitorCount >= t.WarningThreshold:
		return TrafficWarning
	default:
		return TrafficNormal
	}
}

// UtilizationRate returns current count over capacity as a percentage.
func (t *TrafficControl) UtilizationRate() float64 {
	if t.DailyCapacity <= 0 {
		return 0
	}
	return float64(t.CurrentVisitorCount) / float64(t.DailyCapacity) * 100
}
