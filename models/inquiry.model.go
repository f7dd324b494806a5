package models

import "time"

// Inquiry lifecycle states, used only when the remote table has a status column
const (
	InquiryNew       = "new"
	InquiryContacted = "contacted"
	InquiryConverted = "converted"
	InquiryClosed    = "closed"
)

// IsValidInquiryStatus reports whether s is one of the inquiry lifecycle states
func IsValidInquiryStatus(s string) bool {
	switch s {
	case InquiryNew, InquiryContacted, InquiryConverted, InquiryClosed:
		return true
	}
	return false
}

// Inquiry is a prospective student's contact submission. The inquiries table
// is provisioned outside this application and its optional columns vary per
// environment, so the table is not migrated here and optional fields are
// pointers: a nil field means the column was absent or empty.
type Inquiry struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone,omitempty"`
	CourseInterest *string    `json:"course_interest,omitempty"`
	Message        *string    `json:"message,omitempty"`
	Source         *string    `json:"source,omitempty"`
	Status         *string    `json:"status,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// TableName keeps GORM pointed at the externally managed table
func (Inquiry) TableName() string {
	return "inquiries"
}
