package models

import "time"

// Lead is a prospective client. InterestedIn is a property ID and may point
// at a property that no longer exists.
type Lead struct {
	ID           string     `gorm:"type:varchar(32);primaryKey" db:"id" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" db:"name" json:"name"`
	Email        string     `gorm:"type:varchar(255)" db:"email" json:"email"`
	Phone        string     `gorm:"type:varchar(32)" db:"phone" json:"phone"`
	Status       LeadStatus `gorm:"type:varchar(20);not null;index" db:"status" json:"status"`
	InterestedIn string     `gorm:"type:varchar(32);index" db:"interested_in" json:"interestedIn"`
	Source       string     `gorm:"type:varchar(100)" db:"source" json:"source"`
	CreatedAt    time.Time  `gorm:"type:datetime;not null" db:"created_at" json:"createdAt"`
	// Seq is the insertion order; lists come back in this order
	Seq int `gorm:"not null;default:0;index" db:"seq" json:"-"`
}

// LeadStatus tracks where a lead is in the pipeline
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusQualified LeadStatus = "Qualified"
	LeadStatusClosed    LeadStatus = "Closed"
	LeadStatusLost      LeadStatus = "Lost"
)

// TableName specifies the table name
func (Lead) TableName() string {
	return "leads"
}
