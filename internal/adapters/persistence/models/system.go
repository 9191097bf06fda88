package models

import "time"

// AccountStatus is the lifecycle state of a user account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountLocked   AccountStatus = "locked"
	AccountDisabled AccountStatus = "disabled"
)

// User represents the system_user table.
type User struct {
	UserID              string        `gorm:"column:user_id;primaryKey;size:20" json:"user_id"`
	Username            string        `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash        string        `gorm:"size:128;not null" json:"-"`
	RealName            string        `gorm:"size:50;not null" json:"real_name"`
	ContactPhone        string        `gorm:"size:20" json:"contact_phone"`
	RoleType            string        `gorm:"size:30;index;not null" json:"role_type"`
	AccountStatus       AccountStatus `gorm:"size:10;index;not null;default:'active'" json:"account_status"`
	CreateTime          time.Time     `gorm:"autoCreateTime" json:"create_time"`
	LastLoginTime       *time.Time    `json:"last_login_time"`
	FailedLoginCount    int           `gorm:"not null;default:0" json:"failed_login_count"`
	LastFailedLoginTime *time.Time    `json:"last_failed_login_time"`
}

func (User) TableName() string {
	return "system_user"
}

// UserResponse is the public identity: everything except the credential.
type UserResponse struct {
	UserID        string        `json:"user_id"`
	Username      string        `json:"username"`
	RealName      string        `json:"real_name"`
	ContactPhone  string        `json:"contact_phone"`
	RoleType      string        `json:"role_type"`
	AccountStatus AccountStatus `json:"account_status"`
	LastLoginTime *time.Time    `json:"last_login_time,omitempty"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		UserID:        u.UserID,
		Username:      u.Username,
		RealName:      u.RealName,
		ContactPhone:  u.ContactPhone,
		RoleType:      u.RoleType,
		AccountStatus: u.AccountStatus,
		LastLoginTime: u.LastLoginTime,
	}
}

// SessionStatus is the lifecycle state of an audit session row.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionExpired   SessionStatus = "expired"
	SessionLoggedOut SessionStatus = "logged-out"
)

// UserSession represents the user_session table. Sessions exist for audit
// only; token validation never consults them.
type UserSession struct {
	SessionID        string        `gorm:"column:session_id;primaryKey;size:64" json:"session_id"`
	UserID           string        `gorm:"size:20;index;not null" json:"user_id"`
	LoginTime        time.Time     `gorm:"autoCreateTime" json:"login_time"`
	LastActivityTime time.Time     `gorm:"autoUpdateTime;index" json:"last_activity_time"`
	IPAddress        string        `gorm:"size:50" json:"ip_address"`
	SessionStatus    SessionStatus `gorm:"size:10;index;not null;default:'active'" json:"session_status"`
	User             User          `gorm:"foreignKey:UserID" json:"-"`
}

func (UserSession) TableName() string {
	return "user_session"
}

// AreaType classifies a functional area.
type AreaType string

const (
	AreaCore         AreaType = "core"
	AreaBuffer       AreaType = "buffer"
	AreaExperimental AreaType = "experimental"
)

// FunctionalArea represents the functional_area table.
type FunctionalArea struct {
	AreaID              string   `gorm:"column:area_id;primaryKey;size:20" json:"area_id"`
	AreaName            string   `gorm:"size:100;not null" json:"area_name"`
	AreaType            AreaType `gorm:"size:20;index;not null" json:"area_type"`
	AreaSize            float64  `gorm:"type:decimal(10,2);not null" json:"area_size"`
	BoundaryDescription string   `gorm:"type:text" json:"boundary_description,omitempty"`
}

func (FunctionalArea) TableName() string {
	return "functional_area"
}
