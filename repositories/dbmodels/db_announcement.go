package dbmodels

import (
	"time"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

type DBAnnouncement struct {
	Id          string    `db:"id"`
	DioceseId   string    `db:"diocese_id"`
	Title       string    `db:"title"`
	Body        string    `db:"body"`
	IsPublished bool      `db:"is_published"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const TABLE_ANNOUNCEMENTS = "announcements"

var SelectAnnouncementColumns = utils.ColumnList[DBAnnouncement]()

func AdaptAnnouncement(db DBAnnouncement) (models.Announcement, error) {
	return models.Announcement{
		Id:          db.Id,
		DioceseId:   db.DioceseId,
		Title:       db.Title,
		Body:        db.Body,
		IsPublished: db.IsPublished,
		CreatedBy:   db.CreatedBy,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
