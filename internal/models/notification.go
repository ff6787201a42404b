package models

import "time"

type ToastVariant string

const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

// Toast is a short user-visible confirmation, drained by the client.
type Toast struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Variant     ToastVariant `json:"variant"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type EmailNotificationRequest struct {
	To          string   `json:"to"      validate:"required,email"`
	Subject     string   `json:"subject" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	HTMLContent string   `json:"htmlContent,omitempty"`
	CC          []string `json:"cc,omitempty"  validate:"omitempty,dive,email"`
	BCC         []string `json:"bcc,omitempty" validate:"omitempty,dive,email"`
}
