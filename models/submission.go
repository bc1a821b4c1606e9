package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission statuses. The lifecycle is new -> pending -> contacted, but
// an admin edit may set any of the three (soft lifecycle, no forbidden
// backward transitions).
const (
	StatusNew       = "new"
	StatusPending   = "pending"
	StatusContacted = "contacted"
)

// ValidStatus reports whether s is one of the known submission statuses.
func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusPending || s == StatusContacted
}

// Submission represents a contact form lead
type Submission struct {
	ID        string    `gorm:"primaryKey;column:submission_id" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null;index" json:"email"`
	Phone     string    `gorm:"column:phone;not null" json:"phone"`
	Company   string    `gorm:"column:company" json:"company,omitempty"`
	Subject   string    `gorm:"column:subject;not null" json:"subject"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Status    string    `gorm:"column:status;default:'new'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for Submission
func (Submission) TableName() string {
	return "contact_submissions"
}

// BeforeCreate hook
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	if s.Status == "" {
		s.Status = StatusNew
	}
	return nil
}

// SubmissionFields is the validated field set a create starts from.
// Identifier, createdAt and status are assigned by the store.
type SubmissionFields struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Subject string
	Message string
}

// SubmissionUpdate is a partial update for an admin edit. Only these
// fields are mutable; identifier and createdAt never change.
type SubmissionUpdate struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Message *string `json:"message,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// Apply copies the set fields onto s.
func (u SubmissionUpdate) Apply(s *Submission) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.Company != nil {
		s.Company = *u.Company
	}
	if u.Subject != nil {
		s.Subject = *u.Subject
	}
	if u.Message != nil {
		s.Message = *u.Message
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
}

// Columns returns the update as a column map for gorm.
func (u SubmissionUpdate) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Phone != nil {
		cols["phone"] = *u.Phone
	}
	if u.Company != nil {
		cols["company"] = *u.Company
	}
	if u.Subject != nil {
		cols["subject"] = *u.Subject
	}
	if u.Message != nil {
		cols["message"] = *u.Message
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}
