package models

import "time"

type Announcement struct {
	Id          string
	DioceseId   string
	Title       string
	Body        string
	IsPublished bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateAnnouncementAttributes struct {
	DioceseId string
	Title     string
	Body      string
	CreatedBy string
}

type UpdateAnnouncementAttributes struct {
	Id          string
	Title       *string
	Body        *string
	IsPublished *bool
}

type AnnouncementFilters struct {
	DioceseId     string
	PublishedOnly bool
}
