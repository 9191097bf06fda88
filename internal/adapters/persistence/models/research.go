package models

import "time"

// ProjectStatus is the lifecycle state of a research project.
type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectClosed    ProjectStatus = "closed"
	ProjectSuspended ProjectStatus = "suspended"
)

// ResearchProject represents the research_project table.
type ResearchProject struct {
	ProjectID     string        `gorm:"column:project_id;primaryKey;size:20" json:"project_id"`
	ProjectName   string        `gorm:"size:100;not null" json:"project_name"`
	PrincipalID   string        `gorm:"size:20;index;not null" json:"principal_id"`
	ApplicantUnit string        `gorm:"size:100;not null" json:"applicant_unit"`
	StartDate     time.Time     `gorm:"type:date;not null" json:"start_date"`
	EndDate       *time.Time    `gorm:"type:date" json:"end_date,omitempty"`
	ProjectStatus ProjectStatus `gorm:"size:10;index;not null;default:'ongoing'" json:"project_status"`
	ResearchField string        `gorm:"size:50;index;not null" json:"research_field"`

	Principal User `gorm:"foreignKey:PrincipalID" json:"-"`
}

func (ResearchProject) TableName() string {
	return "research_project"
}

// DataSource is where a research sample came from.
type DataSource string

const (
	SourceFieldCollection DataSource = "field"
	SourceSystemQuery     DataSource = "system"
)

// ResearchDataCollection represents the research_data_collection table.
type ResearchDataCollection struct {
	CollectionID      string     `gorm:"column:collection_id;primaryKey;size:30" json:"collection_id"`
	ProjectID         string     `gorm:"size:20;index;not null" json:"project_id"`
	CollectorID       string     `gorm:"size:20;index;not null" json:"collector_id"`
	CollectionTime    time.Time  `gorm:"index;not null" json:"collection_time"`
	AreaID            string     `gorm:"size:20;index;not null" json:"area_id"`
	CollectionContent string     `gorm:"type:text;not null" json:"collection_content"`
	SampleNumber      string     `gorm:"size:30" json:"sample_number,omitempty"`
	MonitoringDataID  string     `gorm:"size:30" json:"monitoring_data_id,omitempty"`
	SurveyRecord      string     `gorm:"type:text" json:"survey_record,omitempty"`
	DataSource        DataSource `gorm:"size:20;not null" json:"data_source"`

	Project   ResearchProject `gorm:"foreignKey:ProjectID" json:"-"`
	Collector User            `gorm:"foreignKey:CollectorID" json:"-"`
	Area      FunctionalArea  `gorm:"foreignKey:AreaID" json:"-"`
}

func (ResearchDataCollection) TableName() string {
	return "research_data_collection"
}

// AchievementType classifies a research output.
type AchievementType string

const (
	AchievementPaper  AchievementType = "paper"
	AchievementReport AchievementType = "report"
	AchievementPatent AchievementType = "patent"
	AchievementOther  AchievementType = "other"
)

// SharePermission controls who may read an achievement.
type SharePermission string

const (
	SharePublic       SharePermission = "public"
	ShareInternal     SharePermission = "internal"
	ShareConfidential SharePermission = "confidential"
)

// ResearchAchievement represents the research_achievement table.
type ResearchAchievement struct {
	AchievementID   string          `gorm:"column:achievement_id;primaryKey;size:30" json:"achievement_id"`
	ProjectID       string          `gorm:"size:20;index;not null" json:"project_id"`
	AchievementType AchievementType `gorm:"size:20;index;not null" json:"achievement_type"`
	AchievementName string          `gorm:"size:200;not null" json:"achievement_name"`
	PublishDate     time.Time       `gorm:"type:date;not null" json:"publish_date"`
	SharePermission SharePermission `gorm:"size:15;index;not null" json:"share_permission"`
	FilePath        string          `gorm:"size:255" json:"file_path,omitempty"`

	Project ResearchProject `gorm:"foreignKey:ProjectID" json:"-"`
}

func (ResearchAchievement) TableName() string {
	return "research_achievement"
}
