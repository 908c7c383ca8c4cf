package models

import (
	"fmt"
	"time"
)

type Feedback struct {
	Id           string
	ChurchId     string
	VisitorName  string
	VisitorEmail string
	Message      string
	Rating       int
	Status       FeedbackStatus
	CreatedAt    time.Time
}

type FeedbackStatus string

const (
	FeedbackNew      FeedbackStatus = "new"
	FeedbackReviewed FeedbackStatus = "reviewed"
	FeedbackArchived FeedbackStatus = "archived"
)

type CreateFeedbackAttributes struct {
	ChurchId     string
	VisitorName  string
	VisitorEmail string
	Message      string
	Rating       int
}

func (a CreateFeedbackAttributes) Validate() error {
	if a.Message == "" {
		return fmt.Errorf("feedback message is required: %w", BadParameterError)
	}
	if a.Rating < 1 || a.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", BadParameterError)
	}
	return nil
}
