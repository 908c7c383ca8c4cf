package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/keej24/visita-bohol-system-sub001/models"
)

type APIAnnouncement struct {
	Id          string    `json:"id"`
	DioceseId   string    `json:"diocese_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	IsPublished bool      `json:"is_published"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AdaptAnnouncementDto(announcement models.Announcement) APIAnnouncement {
	return APIAnnouncement{
		Id:          announcement.Id,
		DioceseId:   announcement.DioceseId,
		Title:       announcement.Title,
		Body:        announcement.Body,
		IsPublished: announcement.IsPublished,
		CreatedBy:   announcement.CreatedBy,
		CreatedAt:   announcement.CreatedAt,
		UpdatedAt:   announcement.UpdatedAt,
	}
}

type CreateAnnouncementBody struct {
	DioceseId string `json:"diocese_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
}

type UpdateAnnouncementBody struct {
	Title       null.String `json:"title"`
	Body        null.String `json:"body"`
	IsPublished null.Bool   `json:"is_published"`
}

func AdaptUpdateAnnouncementAttributes(id string, body UpdateAnnouncementBody) models.UpdateAnnouncementAttributes {
	return models.UpdateAnnouncementAttributes{
		Id:          id,
		Title:       body.Title.Ptr(),
		Body:        body.Body.Ptr(),
		IsPublished: body.IsPublished.Ptr(),
	}
}
