package model

import "time"

// Feedback is a single reviewer comment tied to a section of the document
// under review. Timestamps are managed explicitly by the repository layer
// (created_date is set once, last_updated_date is touched on every write)
// rather than through gorm's auto-update hooks.
type Feedback struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Category        string    `gorm:"size:100;not null" json:"category"` // e.g. "Completeness", "Clarity"
	Description     string    `gorm:"size:1000;not null" json:"description"`
	ResolvedStatus  string    `gorm:"size:5;not null" json:"resolved_status"` // conventionally "Yes" or "No"
	PriorityLevel   string    `gorm:"size:50" json:"priority_level"`
	RelatedSection  string    `gorm:"size:50" json:"related_section"` // e.g. "Abstract", "Appendix A"
	AssignedTo      string    `gorm:"size:50" json:"assigned_to"`
	CreatedDate     time.Time `gorm:"not null" json:"created_date"`
	LastUpdatedDate time.Time `gorm:"not null" json:"last_updated_date"`
}

func (Feedback) TableName() string {
	return "feedback"
}
