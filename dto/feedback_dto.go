package dto

import (
	"time"

	"github.com/keej24/visita-bohol-system-sub001/models"
)

type APIFeedback struct {
	Id           string    `json:"id"`
	ChurchId     string    `json:"church_id"`
	VisitorName  string    `json:"visitor_name,omitempty"`
	VisitorEmail string    `json:"visitor_email,omitempty"`
	Message      string    `json:"message"`
	Rating       int       `json:"rating"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func AdaptFeedbackDto(feedback models.Feedback) APIFeedback {
	return APIFeedback{
		Id:           feedback.Id,
		ChurchId:     feedback.ChurchId,
		VisitorName:  feedback.VisitorName,
		VisitorEmail: feedback.VisitorEmail,
		Message:      feedback.Message,
		Rating:       feedback.Rating,
		Status:       string(feedback.Status),
		CreatedAt:    feedback.CreatedAt,
	}
}

type CreateFeedbackBody struct {
	VisitorName  string `json:"visitor_name"`
	VisitorEmail string `json:"visitor_email"`
	Message      string `json:"message" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
}

type UpdateFeedbackStatusBody struct {
	Status string `json:"status" binding:"required,oneof=new reviewed archived"`
}
