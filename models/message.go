package models

import (
	"net/mail"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
)

// Message is one inbound contact-form inquiry. Rows are append-only: created
// through the contact endpoint, never read back, updated or deleted.
type Message struct {
	ID        int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at;not null"`
}

// NewMessage is the contact-form submission body. id and createdAt are
// server-assigned at insert time and never accepted from input.
type NewMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate reports the first failing field, or nil when the input is acceptable.
func (m NewMessage) Validate() *errs.ApiErr {
	if m.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if m.Email == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return errs.NewInvalidFieldError("email", "must be a valid email address")
	}
	if m.Message == "" {
		return errs.NewMissingRequiredFieldError("message")
	}
	return nil
}

// Model converts the validated input into a persistable Message. CreatedAt is
// left zero; the repository assigns it at insert time.
func (m NewMessage) Model() Message {
	return Message{
		Name:    m.Name,
		Email:   m.Email,
		Message: m.Message,
	}
}
