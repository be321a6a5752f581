package models

import "time"

// Submission is one stored contact-form entry. Rows are insert-only: nothing
// in the service updates or deletes a submission after creation.
type Submission struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Shop      *string   `gorm:"type:varchar(255)" json:"shop"`
	CreatedAt time.Time `json:"createdAt"`
}
