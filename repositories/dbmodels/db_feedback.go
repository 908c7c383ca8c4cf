package dbmodels

import (
	"time"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

type DBFeedback struct {
	Id           string    `db:"id"`
	ChurchId     string    `db:"church_id"`
	VisitorName  string    `db:"visitor_name"`
	VisitorEmail string    `db:"visitor_email"`
	Message      string    `db:"message"`
	Rating       int       `db:"rating"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

const TABLE_FEEDBACK = "feedback"

var SelectFeedbackColumns = utils.ColumnList[DBFeedback]()

func AdaptFeedback(db DBFeedback) (models.Feedback, error) {
	return models.Feedback{
		Id:           db.Id,
		ChurchId:     db.ChurchId,
		VisitorName:  db.VisitorName,
		VisitorEmail: db.VisitorEmail,
		Message:      db.Message,
		Rating:       db.Rating,
		Status:       models.FeedbackStatus(db.Status),
		CreatedAt:    db.CreatedAt,
	}, nil
}
