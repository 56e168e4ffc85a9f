package domain

import "time"

// FeedbackComment is a note a user sent about the app itself. It is not
// part of their shelf and is never read back into a session.
type FeedbackComment struct {
	ID           string    `json:"id" mapstructure:"id"`
	UserID       string    `json:"user_id" mapstructure:"user_id"`
	FeedbackType string    `json:"feedback_type" mapstructure:"feedback_type"`
	Title        string    `json:"title" mapstructure:"title"`
	Message      string    `json:"message" mapstructure:"message"`
	Email        string    `json:"email" mapstructure:"email"`
	CreatedAt    time.Time `json:"created_at" mapstructure:"created_at"`
}
