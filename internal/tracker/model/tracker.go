// Package model provides domain models for the issue tracker read side.
package model

import "time"

// StatusClosed is the issue status excluded from KPI aggregation.
const StatusClosed = "Closed"

// Project represents an issue-tracker project.
// Matches the projects table schema. Read-only from this service's perspective.
type Project struct {
	ProjectID  int64     `gorm:"primaryKey;column:project_id" json:"project_id"`
	ProjectKey string    `gorm:"column:project_key;type:varchar(255);not null" json:"project_key"`
	CategoryID *int64    `gorm:"column:category_id" json:"category_id,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Project) TableName() string {
	return "projects"
}

// ProjectCategory groups projects for selector resolution.
type ProjectCategory struct {
	CategoryID int64  `gorm:"primaryKey;column:category_id" json:"category_id"`
	Name       string `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

// TableName specifies the table name for GORM.
func (ProjectCategory) TableName() string {
	return "project_categories"
}

// Issue represents an issue-tracker issue.
// Severity holds the raw custom-field value (e.g. "3 - Major"); it is
// resolved into a SeverityClassification exactly once per query.
type Issue struct {
	IssueID        int64      `gorm:"primaryKey;column:issue_id" json:"issue_id"`
	ProjectID      int64      `gorm:"column:project_id;not null" json:"project_id"`
	Status         string     `gorm:"column:status;type:varchar(50);not null" json:"status"`
	Severity       *string    `gorm:"column:severity;type:varchar(50)" json:"severity,omitempty"`
	Created        time.Time  `gorm:"column:created;type:timestamptz;not null" json:"created"`
	ResolutionDate *time.Time `gorm:"column:resolution_date;type:timestamptz" json:"resolution_date,omitempty"`
}

// TableName specifies the table name for GORM.
func (Issue) TableName() string {
	return "issues"
}

// OpenAt reports whether the issue counts as open as of the cutoff instant.
// An issue is open at T iff it was created before T and either is not closed
// or was resolved after T.
func (i Issue) OpenAt(cutoff time.Time) bool {
	if !i.Created.Before(cutoff) {
		return false
	}
	if i.Status != StatusClosed {
		return true
	}
	return i.ResolutionDate != nil && i.ResolutionDate.After(cutoff)
}
